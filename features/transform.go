package features

import (
	"stylegen/css"
	"stylegen/decl"
)

// Rotate holds rotation per axis.
type Rotate struct {
	X string `json:"x,omitempty" yaml:"x,omitempty"`
	Y string `json:"y,omitempty" yaml:"y,omitempty"`
	Z string `json:"z,omitempty" yaml:"z,omitempty"`
}

// TransformValue is the transform attribute. Scale is given in percent.
type TransformValue struct {
	Translate XY     `json:"translate,omitzero" yaml:"translate,omitempty"`
	Rotate    Rotate `json:"rotate,omitzero" yaml:"rotate,omitempty"`
	Scale     XY     `json:"scale,omitzero" yaml:"scale,omitempty"`
	Skew      XY     `json:"skew,omitzero" yaml:"skew,omitempty"`
	Origin    XY     `json:"origin,omitzero" yaml:"origin,omitempty"`
}

// CSSValue returns transform function list.
func (v TransformValue) CSSValue() string {
	fn := func(name, arg string) string {
		if arg == "" {
			return ""
		}
		return name + "(" + arg + ")"
	}
	return joinNonEmpty(
		fn("translateX", v.Translate.X),
		fn("translateY", v.Translate.Y),
		fn("rotateX", v.Rotate.X),
		fn("rotateY", v.Rotate.Y),
		fn("rotateZ", v.Rotate.Z),
		fn("scaleX", scaleRatio(v.Scale.X)),
		fn("scaleY", scaleRatio(v.Scale.Y)),
		fn("skewX", v.Skew.X),
		fn("skewY", v.Skew.Y),
	)
}

// scaleRatio converts "120%" to "1.2". Other values are kept.
func scaleRatio(v string) string {
	n, ok := css.ParseNumber(v)
	if !ok || n.Unit != "%" {
		return v
	}
	return css.FormatFloat(n.Value / 100)
}

// Transform prints transform and transform-origin.
func Transform(args decl.Args[TransformValue]) (*decl.Declarations, error) {
	d := args.New()
	v := args.Value
	d.Add("transform", v.CSSValue())
	if v.Origin != (XY{}) {
		x, y := v.Origin.X, v.Origin.Y
		if x == "" {
			x = "50%"
		}
		if y == "" {
			y = "50%"
		}
		d.Add("transform-origin", x+" "+y)
	}
	return d, nil
}
