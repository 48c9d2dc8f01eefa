package statements

import (
	"encoding/json"
	"fmt"
	"strings"

	"stylegen/attr"
	"stylegen/css"
	"stylegen/decl"
)

// Format selects how compiled statements are rendered.
type Format int

const (
	// FormatCSS renders compact CSS text.
	FormatCSS Format = iota
	// FormatMap renders ordered structured entries as JSON.
	FormatMap
)

// ParseFormat converts configuration value to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "css", "string":
		return FormatCSS, nil
	case "map", "json":
		return FormatMap, nil
	}
	return FormatCSS, fmt.Errorf("unknown output format %q", s)
}

func (f Format) String() string {
	if f == FormatMap {
		return "map"
	}
	return "css"
}

// Statement is a selector with its declarations, optionally nested in an
// at-rule. Statements are not modified after compilation.
type Statement struct {
	Breakpoint   attr.Breakpoint
	State        attr.State
	Selector     string
	AtRules      string
	Declarations *decl.Declarations
}

// Item is the structured form of a statement.
type Item struct {
	Breakpoint   attr.Breakpoint `json:"breakpoint"`
	State        attr.State      `json:"state"`
	Selector     string          `json:"selector"`
	AtRules      string          `json:"atRules,omitempty"`
	Declarations []decl.Entry    `json:"declarations"`
}

// Result holds statements of one or more compiled attributes.
type Result struct {
	Statements []Statement
}

// Join concatenates results keeping order. nil results are skipped.
func Join(results ...*Result) *Result {
	out := &Result{}
	for _, r := range results {
		if r != nil {
			out.Statements = append(out.Statements, r.Statements...)
		}
	}
	return out
}

// IsEmpty reports whether there are no statements.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Statements) == 0
}

// Stylesheet converts statements into stylesheet model, consecutive
// statements with the same at-rule share one block.
func (r *Result) Stylesheet() *css.Stylesheet {
	sheet := &css.Stylesheet{}
	if r == nil {
		return sheet
	}
	for _, s := range r.Statements {
		items := s.Declarations.Items()
		rule := css.Rule{Selector: s.Selector, Declarations: make([]css.Declaration, 0, len(items))}
		for _, d := range items {
			rule.Declarations = append(rule.Declarations, css.Declaration{Property: d.Property, Value: d.Value, Important: d.Important})
		}
		sheet.AddRule(s.AtRules, rule)
	}
	return sheet
}

// String returns compact CSS.
func (r *Result) String() string {
	return r.Stylesheet().Compact()
}

// Style returns compact CSS wrapped into style element, empty when there is
// nothing to print.
func (r *Result) Style() string {
	if r.IsEmpty() {
		return ""
	}
	return "<style>" + r.String() + "</style>"
}

// Items returns structured statements.
func (r *Result) Items() []Item {
	if r == nil {
		return nil
	}
	out := make([]Item, 0, len(r.Statements))
	for _, s := range r.Statements {
		out = append(out, Item{
			Breakpoint:   s.Breakpoint,
			State:        s.State,
			Selector:     s.Selector,
			AtRules:      s.AtRules,
			Declarations: s.Declarations.Entries(),
		})
	}
	return out
}

// Render returns output in requested format. asStyle only applies to CSS.
func (r *Result) Render(format Format, asStyle bool) (string, error) {
	switch format {
	case FormatMap:
		data, err := json.MarshalIndent(r.Items(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("unable to marshal statements: %w", err)
		}
		return string(data), nil
	default:
		if asStyle {
			return r.Style(), nil
		}
		return r.String(), nil
	}
}
