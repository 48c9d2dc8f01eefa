package dividers

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// maxPreviewDim limits rasterized preview width and height so that a
// definition with huge viewBox does not exhaust memory.
var maxPreviewDim = 4096

// Rasterize draws style for placement over white background. When width
// is 0 the viewBox width is used, height keeps aspect ratio.
func (s *Style) Rasterize(p Placement, fill string, width int) (image.Image, error) {
	src, err := s.Render(p, fill)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(src), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("unable to read divider %q svg: %w", s.Name, err)
	}

	intrW := int(math.Ceil(icon.ViewBox.W))
	intrH := int(math.Ceil(icon.ViewBox.H))
	if intrW <= 0 || intrH <= 0 {
		return nil, fmt.Errorf("divider %q svg has empty viewBox", s.Name)
	}

	w, h := intrW, intrH
	if width > 0 {
		w = width
		h = int(math.Round(float64(w) * float64(intrH) / float64(intrW)))
	}
	w = max(w, 1)
	h = max(h, 1)

	if w > maxPreviewDim || h > maxPreviewDim {
		k := min(float64(maxPreviewDim)/float64(w), float64(maxPreviewDim)/float64(h))
		w = max(int(math.Round(float64(w)*k)), 1)
		h = max(int(math.Round(float64(h)*k)), 1)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

// SavePreview renders both placements of the style stacked into a single
// image file. Format is selected by file extension.
func (s *Style) SavePreview(file, fill string, width int) error {
	top, err := s.Rasterize(Top, fill, width)
	if err != nil {
		return err
	}
	bottom, err := s.Rasterize(Bottom, fill, width)
	if err != nil {
		return err
	}

	const gap = 16
	tb, bb := top.Bounds(), bottom.Bounds()
	canvas := imaging.New(max(tb.Dx(), bb.Dx()), tb.Dy()+gap+bb.Dy(), color.RGBA{200, 200, 200, 255})
	canvas = imaging.Paste(canvas, top, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, bottom, image.Pt(0, tb.Dy()+gap))

	if err := imaging.Save(canvas, filepath.Clean(file)); err != nil {
		return fmt.Errorf("unable to save divider %q preview: %w", s.Name, err)
	}
	return nil
}
