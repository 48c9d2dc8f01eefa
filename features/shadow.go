package features

import (
	"stylegen/attr"
	"stylegen/css"
	"stylegen/decl"
)

// BoxShadowValue is the box shadow attribute. Style selects a preset, the
// rest of the fields override the preset.
type BoxShadowValue struct {
	Style      string `json:"style,omitempty" yaml:"style,omitempty"`
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Blur       string `json:"blur,omitempty" yaml:"blur,omitempty"`
	Spread     string `json:"spread,omitempty" yaml:"spread,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
	Position   string `json:"position,omitempty" yaml:"position,omitempty"`
}

const defaultBoxShadowColor = "rgba(0,0,0,0.3)"

var boxShadowPresets = map[string]BoxShadowValue{
	"preset1": {Horizontal: "0px", Vertical: "2px", Blur: "18px", Spread: "0px"},
	"preset2": {Horizontal: "6px", Vertical: "6px", Blur: "18px", Spread: "0px"},
	"preset3": {Horizontal: "0px", Vertical: "12px", Blur: "18px", Spread: "-6px"},
	"preset4": {Horizontal: "10px", Vertical: "10px", Blur: "0px", Spread: "0px"},
	"preset5": {Horizontal: "0px", Vertical: "6px", Blur: "0px", Spread: "10px"},
	"preset6": {Horizontal: "0px", Vertical: "0px", Blur: "18px", Spread: "0px", Position: "inner"},
	"preset7": {Horizontal: "10px", Vertical: "10px", Blur: "0px", Spread: "0px", Position: "inner"},
}

// CSSValue returns composite box-shadow value, empty for no shadow or an
// unknown preset.
func (v BoxShadowValue) CSSValue() string {
	preset, ok := boxShadowPresets[v.Style]
	if !ok {
		return ""
	}
	merged, err := attr.Merge(preset, v)
	if err != nil {
		return ""
	}
	spread := merged.Spread
	if css.IsZero(spread) {
		spread = ""
	}
	inset := ""
	if merged.Position == "inner" {
		inset = "inset"
	}
	return joinNonEmpty(inset, merged.Horizontal, merged.Vertical, merged.Blur, spread, merged.Color)
}

// BoxShadow prints box-shadow.
func BoxShadow(args decl.Args[BoxShadowValue]) (*decl.Declarations, error) {
	d := args.New()
	if args.Value.Style == "" || args.Value.Style == "none" {
		return d, nil
	}
	return d.Add("box-shadow", args.Value.CSSValue()), nil
}

// TextShadowValue is the text shadow attribute.
type TextShadowValue struct {
	Style      string `json:"style,omitempty" yaml:"style,omitempty"`
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Blur       string `json:"blur,omitempty" yaml:"blur,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
}

const defaultTextShadowColor = "rgba(0,0,0,0.4)"

var textShadowPresets = map[string]TextShadowValue{
	"preset1": {Horizontal: "0em", Vertical: "0.1em", Blur: "0.1em"},
	"preset2": {Horizontal: "0.08em", Vertical: "0.08em", Blur: "0.08em"},
	"preset3": {Horizontal: "0em", Vertical: "0em", Blur: "0.3em"},
	"preset4": {Horizontal: "0em", Vertical: "0.08em", Blur: "0em"},
	"preset5": {Horizontal: "0.08em", Vertical: "0.08em", Blur: "0em"},
}

// presets carry their own name and default color
func init() {
	for name, p := range boxShadowPresets {
		p.Style, p.Color = name, defaultBoxShadowColor
		boxShadowPresets[name] = p
	}
	for name, p := range textShadowPresets {
		p.Style, p.Color = name, defaultTextShadowColor
		textShadowPresets[name] = p
	}
}

// CSSValue returns composite text-shadow value.
func (v TextShadowValue) CSSValue() string {
	preset, ok := textShadowPresets[v.Style]
	if !ok {
		return ""
	}
	merged, err := attr.Merge(preset, v)
	if err != nil {
		return ""
	}
	return joinNonEmpty(merged.Horizontal, merged.Vertical, merged.Blur, merged.Color)
}

// TextShadow prints text-shadow.
func TextShadow(args decl.Args[TextShadowValue]) (*decl.Declarations, error) {
	d := args.New()
	if args.Value.Style == "" || args.Value.Style == "none" {
		return d, nil
	}
	return d.Add("text-shadow", args.Value.CSSValue()), nil
}
