package features

import (
	"stylegen/attr"
	"stylegen/decl"
)

const (
	fallbackBorderColor = "#333"
	fallbackBorderStyle = "solid"
)

// BorderSide is one group of border styles.
type BorderSide struct {
	Width string `json:"width,omitempty" yaml:"width,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// BorderStyles holds the "all sides" group and per side groups.
type BorderStyles struct {
	All    BorderSide `json:"all,omitzero" yaml:"all,omitempty"`
	Top    BorderSide `json:"top,omitzero" yaml:"top,omitempty"`
	Right  BorderSide `json:"right,omitzero" yaml:"right,omitempty"`
	Bottom BorderSide `json:"bottom,omitzero" yaml:"bottom,omitempty"`
	Left   BorderSide `json:"left,omitzero" yaml:"left,omitempty"`
}

// BorderRadius holds corner radii.
type BorderRadius struct {
	TopLeft     string `json:"topLeft,omitempty" yaml:"topLeft,omitempty"`
	TopRight    string `json:"topRight,omitempty" yaml:"topRight,omitempty"`
	BottomRight string `json:"bottomRight,omitempty" yaml:"bottomRight,omitempty"`
	BottomLeft  string `json:"bottomLeft,omitempty" yaml:"bottomLeft,omitempty"`
}

// BorderValue is the border attribute.
type BorderValue struct {
	Radius BorderRadius `json:"radius,omitzero" yaml:"radius,omitempty"`
	Styles BorderStyles `json:"styles,omitzero" yaml:"styles,omitempty"`
}

// borderSides is emission order, "all" goes first so that side longhands
// override it in the cascade.
var borderSides = []string{"all", "top", "right", "bottom", "left"}

func (s BorderStyles) side(name string) BorderSide {
	switch name {
	case "top":
		return s.Top
	case "right":
		return s.Right
	case "bottom":
		return s.Bottom
	case "left":
		return s.Left
	default:
		return s.All
	}
}

// FillFromGroup completes fields of side groups which are present from the
// "all" group of the same value.
func (v BorderValue) FillFromGroup() BorderValue {
	all := v.Styles.All
	fillSide := func(s *BorderSide) {
		if attr.IsEmpty(*s) {
			return
		}
		if s.Width == "" {
			s.Width = all.Width
		}
		if s.Color == "" {
			s.Color = all.Color
		}
		if s.Style == "" {
			s.Style = all.Style
		}
	}
	fillSide(&v.Styles.Top)
	fillSide(&v.Styles.Right)
	fillSide(&v.Styles.Bottom)
	fillSide(&v.Styles.Left)
	return v
}

// MergeGroups overlays v on top of the resolved ancestor value. A field of
// the "all" group set by v takes the same field of every side from v, so
// ancestor side values do not shadow it.
func (v BorderValue) MergeGroups(ancestor BorderValue) (BorderValue, error) {
	out, err := attr.Merge(ancestor, v)
	if err != nil {
		return ancestor, err
	}
	all := v.Styles.All
	for _, side := range []struct{ own, dst *BorderSide }{
		{&v.Styles.Top, &out.Styles.Top},
		{&v.Styles.Right, &out.Styles.Right},
		{&v.Styles.Bottom, &out.Styles.Bottom},
		{&v.Styles.Left, &out.Styles.Left},
	} {
		if all.Width != "" {
			side.dst.Width = side.own.Width
		}
		if all.Color != "" {
			side.dst.Color = side.own.Color
		}
		if all.Style != "" {
			side.dst.Style = side.own.Style
		}
	}
	return out, nil
}

// Border prints radius and border styles. A side with width but without
// color or style gets "#333" and "solid" fallbacks, unless those were
// printed already either by this statement or by static CSS (args.Default).
func Border(args decl.Args[BorderValue]) (*decl.Declarations, error) {
	d := args.New()
	v := args.Value
	if attr.IsEmpty(v) {
		return d, nil
	}

	r := v.Radius
	d.Add("border-top-left-radius", r.TopLeft)
	d.Add("border-top-right-radius", r.TopRight)
	d.Add("border-bottom-right-radius", r.BottomRight)
	d.Add("border-bottom-left-radius", r.BottomLeft)

	all := v.Styles.All
	def := args.Default.Styles
	var colorFallback, styleFallback bool

	for _, name := range borderSides {
		s := v.Styles.side(name)
		prop := "border"
		if name != "all" {
			prop += "-" + name
		}

		if s.Width != "" && (name == "all" || s.Width != all.Width) {
			d.Add(prop+"-width", s.Width)
		}

		switch {
		case s.Color != "" && (name == "all" || s.Color != all.Color):
			d.Add(prop+"-color", s.Color)
		case s.Width != "" && s.Color == "" && all.Color == "" && !colorFallback &&
			def.side(name).Color == "" && def.All.Color == "":
			d.Add(prop+"-color", fallbackBorderColor)
			colorFallback = name == "all"
		}

		switch {
		case s.Style != "" && (name == "all" || s.Style != all.Style):
			d.Add(prop+"-style", s.Style)
		case s.Width != "" && s.Style == "" && all.Style == "" && !styleFallback &&
			def.side(name).Style == "" && def.All.Style == "":
			d.Add(prop+"-style", fallbackBorderStyle)
			styleFallback = name == "all"
		}
	}
	return d, nil
}
