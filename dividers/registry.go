// Package dividers keeps the set of section divider shapes and prepares
// their SVG for use as a CSS background image.
package dividers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/srwiley/oksvg"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:embed styles/*.json
var embedded embed.FS

var (
	// ErrUnknownStyle is returned when a style name is not in the registry.
	ErrUnknownStyle = errors.New("unknown divider style")
	// ErrRegistry is returned when divider definitions cannot be loaded.
	// Callers should treat it as fatal configuration error.
	ErrRegistry = errors.New("divider registry unavailable")
)

// Placement is the edge of a section a divider is attached to.
type Placement string

const (
	Top    Placement = "top"
	Bottom Placement = "bottom"
)

// Opposite returns the other edge.
func (p Placement) Opposite() Placement {
	if p == Top {
		return Bottom
	}
	return Top
}

// IsValid reports if placement is known.
func (p Placement) IsValid() bool {
	return p == Top || p == Bottom
}

// Style is one divider shape.
type Style struct {
	Name       string               `json:"name"`
	Repeatable bool                 `json:"repeatable"`
	SVG        map[Placement]string `json:"svg"`
}

// Source returns SVG text for placement and reports whether it has to be
// flipped vertically because only the opposite edge is defined.
func (s *Style) Source(p Placement) (string, bool) {
	if src, ok := s.SVG[p]; ok && src != "" {
		return src, false
	}
	if src, ok := s.SVG[p.Opposite()]; ok && src != "" {
		return src, true
	}
	return "", false
}

// Registry is immutable after loading and safe for concurrent use.
type Registry struct {
	styles map[string]*Style
	names  []string
}

// Default loads the built-in divider set.
func Default(log *zap.Logger) (*Registry, error) {
	sub, err := fs.Sub(embedded, "styles")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistry, err)
	}
	return Load(sub, log)
}

// LoadDir loads divider definitions from directory on disk. Definitions
// found there replace built-in ones with the same name.
func LoadDir(dir string, log *zap.Logger) (*Registry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistry, err)
	}
	reg, err := Default(log)
	if err != nil {
		return nil, err
	}
	extra, err := Load(os.DirFS(dir), log)
	if err != nil {
		return nil, err
	}
	for name, st := range extra.styles {
		reg.styles[name] = st
	}
	reg.sortNames()
	return reg, nil
}

// Load reads every *.json file in fsys root. All broken files are reported
// together.
func Load(fsys fs.FS, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("dividers")

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistry, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no divider definitions found", ErrRegistry)
	}

	reg := &Registry{styles: make(map[string]*Style, len(files))}
	var errs error
	for _, name := range files {
		st, err := readStyle(fsys, name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		reg.styles[st.Name] = st
		log.Debug("Divider loaded", zap.String("name", st.Name), zap.Bool("repeatable", st.Repeatable))
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistry, errs)
	}
	reg.sortNames()
	log.Debug("Divider registry ready", zap.Int("styles", len(reg.names)))
	return reg, nil
}

func readStyle(fsys fs.FS, name string) (*Style, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var st Style
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unable to decode: %w", err)
	}
	if st.Name == "" {
		st.Name = strings.TrimSuffix(path.Base(name), ".json")
	}
	if len(st.SVG) == 0 {
		return nil, errors.New("no svg defined")
	}
	for p, src := range st.SVG {
		if !p.IsValid() {
			return nil, fmt.Errorf("unknown placement %q", p)
		}
		if _, err := oksvg.ReadIconStream(bytes.NewReader([]byte(src)), oksvg.IgnoreErrorMode); err != nil {
			return nil, fmt.Errorf("bad %s svg: %w", p, err)
		}
	}
	return &st, nil
}

func (r *Registry) sortNames() {
	r.names = r.names[:0]
	for name := range r.styles {
		r.names = append(r.names, name)
	}
	slices.SortFunc(r.names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
}

// Style returns named style definition.
func (r *Registry) Style(name string) (*Style, error) {
	if r == nil {
		return nil, ErrRegistry
	}
	st, ok := r.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return st, nil
}

// Names returns style names in natural order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Len returns number of styles.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.styles)
}
