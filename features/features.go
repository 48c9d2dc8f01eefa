// Package features contains declaration functions, one per style feature.
//
// Every function has decl.Func signature, receives the effective value for
// one breakpoint and state and returns declarations in a fixed order. An
// empty value produces no declarations. Unknown enum values silently skip
// the branch they select.
package features

import (
	"strings"
)

// Sides is a generic four sides value (margin, padding, offsets).
type Sides struct {
	Top    string `json:"top,omitempty" yaml:"top,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom string `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
}

// Each calls fn for every side in top, right, bottom, left order.
func (s Sides) Each(fn func(side, value string)) {
	fn("top", s.Top)
	fn("right", s.Right)
	fn("bottom", s.Bottom)
	fn("left", s.Left)
}

// XY is a two axis value.
type XY struct {
	X string `json:"x,omitempty" yaml:"x,omitempty"`
	Y string `json:"y,omitempty" yaml:"y,omitempty"`
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func isOn(v string) bool {
	return v == "on" || v == "true" || v == "yes"
}
