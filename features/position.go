package features

import (
	"strings"

	"stylegen/decl"
)

// PositionOrigin holds origin per positioning mode as "vertical horizontal",
// for example "top left" or "center right".
type PositionOrigin struct {
	Relative string `json:"relative,omitempty" yaml:"relative,omitempty"`
	Absolute string `json:"absolute,omitempty" yaml:"absolute,omitempty"`
	Fixed    string `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// PositionOffset holds offsets along both axes.
type PositionOffset struct {
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical,omitempty"`
}

// PositionValue is the position attribute. Mode is one of default, relative,
// absolute and fixed.
type PositionValue struct {
	Mode   string         `json:"mode,omitempty" yaml:"mode,omitempty"`
	Origin PositionOrigin `json:"origin,omitzero" yaml:"origin,omitempty"`
	Offset PositionOffset `json:"offset,omitzero" yaml:"offset,omitempty"`
}

const defaultPositionOrigin = "top left"

// origin returns vertical and horizontal origin for the mode.
func (v PositionValue) origin() (string, string) {
	var o string
	switch v.Mode {
	case "relative":
		o = v.Origin.Relative
	case "absolute":
		o = v.Origin.Absolute
	case "fixed":
		o = v.Origin.Fixed
	}
	if o == "" {
		o = defaultPositionOrigin
	}
	vertical, horizontal, _ := strings.Cut(strings.TrimSpace(o), " ")
	if horizontal = strings.TrimSpace(horizontal); horizontal == "" {
		horizontal = "left"
	}
	return vertical, horizontal
}

type axis struct {
	near, far string // "top"/"bottom" or "left"/"right"
	translate string
}

var (
	verticalAxis   = axis{near: "top", far: "bottom", translate: "translateY(-50%)"}
	horizontalAxis = axis{near: "left", far: "right", translate: "translateX(-50%)"}
)

// Position prints positioning. Declarations are forced important for
// absolute mode and for anything more specific than desktop value so they
// can override the base declaration.
func Position(args decl.Args[PositionValue]) (*decl.Declarations, error) {
	d := args.New()
	v := args.Value
	switch v.Mode {
	case "relative", "absolute", "fixed":
	default:
		return d, nil
	}

	force := v.Mode == "absolute" || !args.IsBase()
	vertical, horizontal := v.origin()

	d.AddWith("position", v.Mode, force)

	var translate []string
	place := func(a axis, origin, offset string) {
		if offset == "" {
			offset = "0px"
		}
		switch origin {
		case "center":
			if v.Mode != "relative" {
				d.AddWith(a.near, "50%", force)
				d.AddWith(a.far, "auto", force)
			}
			translate = append(translate, a.translate)
		case a.far:
			d.AddWith(a.far, offset, force)
			d.AddWith(a.near, "auto", force)
		default:
			d.AddWith(a.near, offset, force)
			d.AddWith(a.far, "auto", force)
		}
	}
	place(verticalAxis, vertical, v.Offset.Vertical)
	place(horizontalAxis, horizontal, v.Offset.Horizontal)

	if len(translate) > 0 {
		d.AddWith("transform", strings.Join(translate, " "), force)
	}
	return d, nil
}
