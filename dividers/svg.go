package dividers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const svgNS = "http://www.w3.org/2000/svg"

// Render returns SVG markup of the style for placement filled with color.
// When only the opposite edge is defined the shape is mirrored vertically.
func (s *Style) Render(p Placement, color string) (string, error) {
	src, flip := s.Source(p)
	if src == "" {
		return "", fmt.Errorf("divider %q has no svg for %s", s.Name, p)
	}

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	if err := doc.ReadFromString(src); err != nil {
		return "", fmt.Errorf("unable to read divider %q svg: %w", s.Name, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return "", fmt.Errorf("divider %q svg has no svg root", s.Name)
	}

	if root.SelectAttr("xmlns") == nil {
		root.CreateAttr("xmlns", svgNS)
	}
	if color != "" {
		root.CreateAttr("fill", color)
	}

	if flip {
		height := viewBoxHeight(root.SelectAttrValue("viewBox", ""))
		children := root.ChildElements()
		g := etree.NewElement("g")
		g.CreateAttr("transform", "matrix(1 0 0 -1 0 "+strconv.FormatFloat(height, 'f', -1, 64)+")")
		for _, child := range children {
			root.RemoveChild(child)
			g.AddChild(child)
		}
		root.AddChild(g)
	}

	doc.Indent(etree.NoIndent)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("unable to write divider %q svg: %w", s.Name, err)
	}
	return out, nil
}

func viewBoxHeight(vb string) float64 {
	fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 4 {
		return 0
	}
	h, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0
	}
	return h
}

var uriEscaper = strings.NewReplacer(
	`"`, `'`,
	"%", "%25",
	"#", "%23",
	"<", "%3C",
	">", "%3E",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// DataURI wraps SVG markup into a CSS url() value.
func DataURI(svg string) string {
	return `url("data:image/svg+xml,` + uriEscaper.Replace(strings.TrimSpace(svg)) + `")`
}
