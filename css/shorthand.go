package css

import (
	"slices"
)

var sides = []string{"top", "right", "bottom", "left"}

// ShorthandMap maps shorthand properties to the longhands they expand to.
// It is used to redirect parts of a shorthand to other selectors, never to
// synthesize shorthands.
var ShorthandMap = buildShorthandMap()

func buildShorthandMap() map[string][]string {
	m := map[string][]string{
		"border-radius": {
			"border-top-left-radius", "border-top-right-radius",
			"border-bottom-right-radius", "border-bottom-left-radius",
		},
		"margin":    prefixed("margin", sides, ""),
		"padding":   prefixed("padding", sides, ""),
		"inset":     slices.Clone(sides),
		"overflow":  {"overflow-x", "overflow-y"},
		"gap":       {"row-gap", "column-gap"},
		"flex-flow": {"flex-direction", "flex-wrap"},
		"background": {
			"background-color", "background-image", "background-repeat",
			"background-position", "background-size", "background-attachment",
		},
		"font":          {"font-style", "font-weight", "font-size", "line-height", "font-family"},
		"grid-template": {"grid-template-columns", "grid-template-rows"},
	}

	var all []string
	for _, part := range []string{"width", "style", "color"} {
		m["border-"+part] = prefixed("border", sides, "-"+part)
	}
	for _, side := range sides {
		m["border-"+side] = []string{"border-" + side + "-width", "border-" + side + "-style", "border-" + side + "-color"}
		all = append(all, m["border-"+side]...)
	}
	m["border"] = all
	return m
}

func prefixed(prefix string, parts []string, suffix string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, prefix+"-"+p+suffix)
	}
	return out
}

// Longhands returns the longhands of a shorthand, or nil for non-shorthands.
func Longhands(property string) []string {
	return slices.Clone(ShorthandMap[property])
}

// Expand returns property followed by every shorthand covered by it and all
// its longhands. For "border" this includes "border-width", "border-top" and
// "border-top-width". A property that is not a shorthand expands to itself.
func Expand(property string) []string {
	longhands := ShorthandMap[property]
	out := []string{property}
	if len(longhands) == 0 {
		return out
	}

	var nested []string
	for name, lh := range ShorthandMap {
		if name == property || len(lh) > len(longhands) {
			continue
		}
		if !slices.ContainsFunc(lh, func(p string) bool { return !slices.Contains(longhands, p) }) {
			nested = append(nested, name)
		}
	}
	slices.Sort(nested)
	out = append(out, nested...)
	for _, p := range longhands {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
