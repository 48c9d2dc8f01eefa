// Package css models compiled stylesheets: rules with ordered declarations,
// optionally nested in @media blocks. It writes them in compact or readable
// form and parses CSS text back into the same model.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is one property/value pair of a rule. Order is significant,
// duplicates are allowed.
type Declaration struct {
	Property  string `json:"property"`
	Value     string `json:"value"`
	Important bool   `json:"important,omitempty"`
}

func (d Declaration) text() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important;"
	}
	return d.Property + ": " + d.Value + ";"
}

// Rule represents a selector and its declarations.
type Rule struct {
	Selector     string        `json:"selector"`
	Declarations []Declaration `json:"declarations"`
}

// Get returns the last value declared for a property, as the cascade would.
func (r Rule) Get(property string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// DeclarationsText returns "a: 1; b: 2;".
func (r Rule) DeclarationsText() string {
	parts := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		parts = append(parts, d.text())
	}
	return strings.Join(parts, " ")
}

// MediaBlock represents an at-rule block (usually @media) with nested rules.
// Query holds the complete prelude, e.g. "@media only screen and (max-width: 980px)".
type MediaBlock struct {
	Query string `json:"query"`
	Rules []Rule `json:"rules"`
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or MediaBlock is non-nil.
type StylesheetItem struct {
	Rule       *Rule       `json:"rule,omitempty"`
	MediaBlock *MediaBlock `json:"media,omitempty"`
}

// Stylesheet is an ordered list of rules and blocks.
type Stylesheet struct {
	Items    []StylesheetItem `json:"items"`
	Warnings []string         `json:"warnings,omitempty"`
}

// AddRule appends a rule, nesting it into a block when query is not empty.
// Consecutive rules with the same query share one block.
func (s *Stylesheet) AddRule(query string, rule Rule) {
	if query == "" {
		s.Items = append(s.Items, StylesheetItem{Rule: &rule})
		return
	}
	if n := len(s.Items); n > 0 {
		if mb := s.Items[n-1].MediaBlock; mb != nil && mb.Query == query {
			mb.Rules = append(mb.Rules, rule)
			return
		}
	}
	s.Items = append(s.Items, StylesheetItem{MediaBlock: &MediaBlock{Query: query, Rules: []Rule{rule}}})
}

// Rules returns all rules in source order, including those nested in blocks.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil:
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// Compact returns the stylesheet in the form used for inline output:
// "sel{a: 1;}@media ...{sel{b: 2;}}".
func (s *Stylesheet) Compact() string {
	var sb strings.Builder
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			writeCompactRule(&sb, item.Rule)
		case item.MediaBlock != nil:
			sb.WriteString(item.MediaBlock.Query)
			sb.WriteByte('{')
			for i := range item.MediaBlock.Rules {
				writeCompactRule(&sb, &item.MediaBlock.Rules[i])
			}
			sb.WriteByte('}')
		}
	}
	return sb.String()
}

func writeCompactRule(sb *strings.Builder, rule *Rule) {
	sb.WriteString(rule.Selector)
	sb.WriteByte('{')
	sb.WriteString(rule.DeclarationsText())
	sb.WriteByte('}')
}

// WriteTo writes the stylesheet to w in readable form, implementing io.WriterTo.
// Declaration order is kept as is.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var (
			n   int
			err error
		)
		switch {
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the readable CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s\n", indent, d.text())
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an at-rule block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
