package features

import (
	"stylegen/attr"
	"stylegen/decl"
)

// Icon identifies a glyph in an icon font.
type Icon struct {
	Unicode string `json:"unicode,omitempty" yaml:"unicode,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Weight  string `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ButtonIconValue is the button icon attribute.
type ButtonIconValue struct {
	Enable    string `json:"enable,omitempty" yaml:"enable,omitempty"`
	Icon      Icon   `json:"icon,omitzero" yaml:"icon,omitempty"`
	Color     string `json:"color,omitempty" yaml:"color,omitempty"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
	Placement string `json:"placement,omitempty" yaml:"placement,omitempty"`
	OnHover   string `json:"onHover,omitempty" yaml:"onHover,omitempty"`
}

// IconFonts maps icon type to font family.
type IconFonts map[string]string

// Family returns font family for icon type, falls back to "divi" entry.
func (f IconFonts) Family(iconType string) string {
	if family, ok := f[iconType]; ok {
		return family
	}
	return f["divi"]
}

const (
	buttonIconLineHeight = "1.7em"
	buttonIconWeight     = "400"
)

// ButtonIcon returns declaration function for button icons. Font family,
// font weight and line height are always important since theme styles for
// buttons are very specific, font size is important whenever it is set.
func ButtonIcon(fonts IconFonts) decl.Func[ButtonIconValue] {
	return func(args decl.Args[ButtonIconValue]) (*decl.Declarations, error) {
		d := args.New()
		v := args.Value
		if attr.IsEmpty(v) {
			return d, nil
		}
		if v.Enable == "off" {
			return d.Add("display", "none"), nil
		}

		weight := v.Icon.Weight
		if weight == "" {
			weight = buttonIconWeight
		}

		d.Add("color", v.Color)
		d.AddImportant("font-family", fonts.Family(v.Icon.Type))
		d.AddImportant("font-weight", weight)
		d.AddImportant("font-size", v.Size)
		d.AddImportant("line-height", buttonIconLineHeight)
		if v.Icon.Unicode != "" {
			d.Add("content", "attr(data-icon)")
		}

		switch v.Placement {
		case "left":
			d.Add("right", "auto")
			d.Add("left", "0.15em")
		case "right":
			d.Add("left", "auto")
			d.Add("margin-left", "0.3em")
		}

		switch {
		case !isOn(v.OnHover):
			d.Add("opacity", "1")
		case args.State == attr.Hover:
			d.Add("opacity", "1")
		default:
			d.Add("opacity", "0")
		}
		return d, nil
	}
}
