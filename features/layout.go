package features

import (
	"strings"

	"stylegen/decl"
)

// LayoutValue is the layout attribute covering flex and grid containers.
type LayoutValue struct {
	Display string `json:"display,omitempty" yaml:"display,omitempty"`

	FlexDirection  string `json:"flexDirection,omitempty" yaml:"flexDirection,omitempty"`
	FlexWrap       string `json:"flexWrap,omitempty" yaml:"flexWrap,omitempty"`
	JustifyContent string `json:"justifyContent,omitempty" yaml:"justifyContent,omitempty"`
	AlignItems     string `json:"alignItems,omitempty" yaml:"alignItems,omitempty"`
	AlignContent   string `json:"alignContent,omitempty" yaml:"alignContent,omitempty"`
	ColumnGap      string `json:"columnGap,omitempty" yaml:"columnGap,omitempty"`
	RowGap         string `json:"rowGap,omitempty" yaml:"rowGap,omitempty"`

	// Column width strategy: equal, equalMinimum, equalFixed, auto, manual.
	GridColumnWidths    string `json:"gridColumnWidths,omitempty" yaml:"gridColumnWidths,omitempty"`
	GridColumnCount     string `json:"gridColumnCount,omitempty" yaml:"gridColumnCount,omitempty"`
	GridColumnMinWidth  string `json:"gridColumnMinWidth,omitempty" yaml:"gridColumnMinWidth,omitempty"`
	GridColumnWidth     string `json:"gridColumnWidth,omitempty" yaml:"gridColumnWidth,omitempty"`
	GridTemplateColumns string `json:"gridTemplateColumns,omitempty" yaml:"gridTemplateColumns,omitempty"`

	// Row height strategy: auto, equal, minimum, fixed, manual.
	GridRowHeights   string `json:"gridRowHeights,omitempty" yaml:"gridRowHeights,omitempty"`
	GridRowMinHeight string `json:"gridRowMinHeight,omitempty" yaml:"gridRowMinHeight,omitempty"`
	GridRowHeight    string `json:"gridRowHeight,omitempty" yaml:"gridRowHeight,omitempty"`
	GridTemplateRows string `json:"gridTemplateRows,omitempty" yaml:"gridTemplateRows,omitempty"`

	GridAutoFlow string `json:"gridAutoFlow,omitempty" yaml:"gridAutoFlow,omitempty"`
}

// Layout prints flex or grid container properties. Display is taken from
// desktop value only, layout mode does not change between breakpoints.
func Layout(args decl.Args[LayoutValue]) (*decl.Declarations, error) {
	d := args.New()
	v := args.Value

	display := args.Desktop.Display
	switch display {
	case "flex":
		if args.IsBase() {
			d.Add("display", display)
		}
		flexDeclarations(d, v)
	case "grid":
		if args.IsBase() {
			d.Add("display", display)
		}
		gridDeclarations(d, v)
	case "block":
		if args.IsBase() {
			d.Add("display", display)
		}
	}
	return d, nil
}

func flexDeclarations(d *decl.Declarations, v LayoutValue) {
	d.Add("flex-direction", v.FlexDirection)
	d.Add("justify-content", v.JustifyContent)
	d.Add("align-items", v.AlignItems)
	d.Add("flex-wrap", v.FlexWrap)
	if v.FlexWrap != "" && v.FlexWrap != "nowrap" {
		d.Add("align-content", v.AlignContent)
	}
	d.Add("column-gap", v.ColumnGap)
	d.Add("row-gap", v.RowGap)
}

func gridDeclarations(d *decl.Declarations, v LayoutValue) {
	count := strings.TrimSpace(v.GridColumnCount)
	switch v.GridColumnWidths {
	case "equal":
		if count != "" {
			d.Add("--column-count", count)
			d.Add("grid-template-columns", "repeat("+count+", 1fr)")
		}
	case "equalMinimum":
		if count != "" && v.GridColumnMinWidth != "" {
			d.Add("--column-count", count)
			d.Add("--column-min-width", v.GridColumnMinWidth)
			d.Add("grid-template-columns", "repeat("+count+", minmax("+v.GridColumnMinWidth+", 1fr))")
		}
	case "equalFixed":
		if count != "" && v.GridColumnWidth != "" {
			d.Add("--column-count", count)
			d.Add("--column-width", v.GridColumnWidth)
			d.Add("grid-template-columns", "repeat("+count+", "+v.GridColumnWidth+")")
		}
	case "auto":
		if count != "" {
			d.Add("--column-count", count)
			d.Add("grid-template-columns", "repeat("+count+", auto)")
		}
	case "manual":
		d.Add("grid-template-columns", v.GridTemplateColumns)
	}

	switch v.GridRowHeights {
	case "auto":
		d.Add("grid-auto-rows", "auto")
	case "equal":
		d.Add("grid-auto-rows", "1fr")
	case "minimum":
		if v.GridRowMinHeight != "" {
			d.Add("--row-min-height", v.GridRowMinHeight)
			d.Add("grid-auto-rows", "minmax("+v.GridRowMinHeight+", auto)")
		}
	case "fixed":
		if v.GridRowHeight != "" {
			d.Add("--row-height", v.GridRowHeight)
			d.Add("grid-auto-rows", v.GridRowHeight)
		}
	case "manual":
		d.Add("grid-template-rows", v.GridTemplateRows)
	}

	d.Add("grid-auto-flow", v.GridAutoFlow)
	d.Add("justify-content", v.JustifyContent)
	d.Add("align-items", gridKeyword(v.AlignItems))
	d.Add("align-content", gridKeyword(v.AlignContent))
	d.Add("column-gap", v.ColumnGap)
	d.Add("row-gap", v.RowGap)
}

// gridKeyword maps flex alignment keywords to their grid equivalents.
func gridKeyword(v string) string {
	switch v {
	case "flex-start":
		return "start"
	case "flex-end":
		return "end"
	default:
		return v
	}
}
