package features

import (
	"stylegen/decl"
)

// ZIndex prints z-index.
func ZIndex(args decl.Args[string]) (*decl.Declarations, error) {
	return args.New().Add("z-index", args.Value), nil
}

// SizingValue is the sizing attribute.
type SizingValue struct {
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	MaxWidth  string `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
	MinHeight string `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
	Height    string `json:"height,omitempty" yaml:"height,omitempty"`
	MaxHeight string `json:"maxHeight,omitempty" yaml:"maxHeight,omitempty"`
	// Alignment of a block narrower than its container: left, center, right.
	Alignment string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
}

// Sizing prints dimensions and block alignment through auto margins.
func Sizing(args decl.Args[SizingValue]) (*decl.Declarations, error) {
	d := args.New()
	v := args.Value
	d.Add("width", v.Width)
	d.Add("max-width", v.MaxWidth)
	d.Add("min-height", v.MinHeight)
	d.Add("height", v.Height)
	d.Add("max-height", v.MaxHeight)

	switch v.Alignment {
	case "left":
		d.Add("margin-left", "0")
		d.Add("margin-right", "auto")
	case "center":
		d.Add("margin-left", "auto")
		d.Add("margin-right", "auto")
	case "right":
		d.Add("margin-left", "auto")
		d.Add("margin-right", "0")
	}
	return d, nil
}

// OverflowValue is the overflow attribute.
type OverflowValue XY

// Overflow prints overflow per axis.
func Overflow(args decl.Args[OverflowValue]) (*decl.Declarations, error) {
	return args.New().Add("overflow-x", args.Value.X).Add("overflow-y", args.Value.Y), nil
}
