package features

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"stylegen/attr"
	"stylegen/css"
	"stylegen/decl"
	"stylegen/dividers"
)

// DividerSide is the divider attached to one edge of a section.
type DividerSide struct {
	Style       string `json:"style,omitempty" yaml:"style,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	Height      string `json:"height,omitempty" yaml:"height,omitempty"`
	Repeat      string `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	Arrangement string `json:"arrangement,omitempty" yaml:"arrangement,omitempty"`
	Flip        string `json:"flip,omitempty" yaml:"flip,omitempty"`
}

// DividerValue is the dividers attribute.
type DividerValue struct {
	Top    DividerSide `json:"top,omitzero" yaml:"top,omitempty"`
	Bottom DividerSide `json:"bottom,omitzero" yaml:"bottom,omitempty"`
}

// Side returns divider settings for placement.
func (v DividerValue) Side(p dividers.Placement) DividerSide {
	if p == dividers.Bottom {
		return v.Bottom
	}
	return v.Top
}

const (
	defaultDividerHeight = "100px"
	defaultDividerColor  = "#000000"
)

// DividerParams carries context of a divider declaration function.
type DividerParams struct {
	Registry  *dividers.Registry
	Placement dividers.Placement
	// Fullwidth section dividers are always stacked above content.
	Fullwidth bool
	// Background is the section background color, SiblingBackground is
	// background color of the neighbouring section on the divider edge.
	Background        string
	SiblingBackground string
}

// Divider returns declaration function for the divider shape placed on
// params.Placement edge. Unknown style names print nothing, missing
// registry is an error.
func Divider(params DividerParams) decl.Func[DividerValue] {
	return func(args decl.Args[DividerValue]) (*decl.Declarations, error) {
		d := args.New()
		zIndex := "1"
		if params.Fullwidth {
			zIndex = "10"
		}

		// only explicit "none" hides divider, inherited one just prints nothing
		if exact, ok := args.Tree.Resolve(args.Breakpoint, args.State, attr.Exact); ok {
			if side := exact.Side(params.Placement); side.Style == "none" {
				if side.Arrangement == "above" {
					zIndex = "10"
				}
				return d.Add("display", "none").Add("z-index", zIndex), nil
			}
		}

		side := args.Value.Side(params.Placement)
		if side.Style == "" || side.Style == "none" {
			return d, nil
		}
		if params.Registry == nil {
			return nil, fmt.Errorf("divider %q: %w", side.Style, dividers.ErrRegistry)
		}
		style, err := params.Registry.Style(side.Style)
		if errors.Is(err, dividers.ErrUnknownStyle) {
			return d, nil
		}
		if err != nil {
			return nil, err
		}

		// svg is url-encoded afterwards, color tokens have to be resolved now
		color := dividerColor(side, params)
		if args.Vars != nil {
			color = args.Vars.Resolve(color)
		}
		svg, err := style.Render(params.Placement, color)
		if err != nil {
			return nil, err
		}

		height := side.Height
		if height == "" {
			height = defaultDividerHeight
		}
		if side.Arrangement == "above" {
			zIndex = "10"
		}

		// static CSS of a wider breakpoint or the base state may hide it
		if hiddenByAncestor(args, params.Placement) {
			d.Add("display", "block")
		}
		d.Add("background-image", dividers.DataURI(svg))
		d.Add("background-size", dividerSize(style.Repeatable, side.Repeat, height))
		d.Add("background-position", "center "+string(params.Placement))
		if style.Repeatable {
			d.Add("background-repeat", "repeat-x")
		} else {
			d.Add("background-repeat", "no-repeat")
		}
		d.Add("height", height)
		d.Add("transform", dividerFlip(side.Flip))
		d.Add("z-index", zIndex)
		return d, nil
	}
}

// hiddenByAncestor reports whether a slot whose rules also match this one
// holds an explicit "none" for the placement.
func hiddenByAncestor(args decl.Args[DividerValue], p dividers.Placement) bool {
	slots := []struct {
		bp attr.Breakpoint
		st attr.State
	}{
		{args.Breakpoint, attr.Value},
		{attr.Desktop, args.State},
		{attr.Desktop, attr.Value},
	}
	for _, s := range slots {
		if s.bp == args.Breakpoint && s.st == args.State {
			continue
		}
		if v, ok := args.Tree.Get(s.bp, s.st); ok && v.Side(p).Style == "none" {
			return true
		}
	}
	return false
}

// dividerColor picks explicit color, then sibling background when it is
// different from our own, then black, so that divider never blends in.
func dividerColor(side DividerSide, params DividerParams) string {
	if side.Color != "" {
		return side.Color
	}
	if sib := params.SiblingBackground; sib != "" && !strings.EqualFold(sib, params.Background) {
		return sib
	}
	return defaultDividerColor
}

// dividerSize computes background-size. Repeatable shapes are tiled across
// section width "Nx" times, bad repeat values fall back to "auto".
func dividerSize(repeatable bool, repeat, height string) string {
	if !repeatable {
		return "100% " + height
	}
	if repeat == "" {
		repeat = "1x"
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(repeat), "x"), 64)
	if err != nil || n <= 0 {
		return "auto " + height
	}
	return css.FormatFloat(math.Round(100/n*1e4)/1e4) + "% " + height
}

func dividerFlip(flip string) string {
	var h, v bool
	for f := range strings.SplitSeq(flip, ",") {
		switch strings.TrimSpace(f) {
		case "horizontal":
			h = true
		case "vertical":
			v = true
		}
	}
	switch {
	case h && v:
		return "scale(-1, -1)"
	case h:
		return "scaleX(-1)"
	case v:
		return "scaleY(-1)"
	}
	return ""
}
