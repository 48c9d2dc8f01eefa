package features

import (
	"stylegen/decl"
)

// SpacingValue is the spacing attribute.
type SpacingValue struct {
	Margin  Sides `json:"margin,omitzero" yaml:"margin,omitempty"`
	Padding Sides `json:"padding,omitzero" yaml:"padding,omitempty"`
}

// Spacing prints margin and padding longhands. "0" is a value and gets
// printed, only empty strings are skipped.
func Spacing(args decl.Args[SpacingValue]) (*decl.Declarations, error) {
	d := args.New()
	args.Value.Margin.Each(func(side, v string) {
		d.Add("margin-"+side, v)
	})
	args.Value.Padding.Each(func(side, v string) {
		d.Add("padding-"+side, v)
	})
	return d, nil
}
