package modstyle

import (
	"stylegen/attr"
	"stylegen/features"
	"stylegen/utils/debug"
)

// Resolved is an effective attribute value for one breakpoint and state.
type Resolved struct {
	Attr       string
	Breakpoint attr.Breakpoint
	State      attr.State
	Mode       attr.Mode
	// Explicit is false when the slot is absent and the value is inherited.
	Explicit bool
	Value    any
}

// Explain lists effective values of every decoration attribute for all
// breakpoint and state pairs present in the module.
func (s *Styler) Explain(m *Module) ([]Resolved, error) {
	vals, err := s.cache.Values()
	if err != nil {
		return nil, err
	}
	dec := &m.Decoration

	var out []Resolved
	out = appendResolved(out, "border", dec.Border, features.BorderValue{}, attr.GetAndInheritAll)
	out = appendResolved(out, "boxShadow", dec.BoxShadow, vals.BoxShadow, attr.GetAndInheritAll)
	out = appendResolved(out, "textShadow", dec.TextShadow, features.TextShadowValue{}, attr.GetAndInheritAll)
	out = appendResolved(out, "position", dec.Position, vals.Position, attr.GetAndInheritAll)
	out = appendResolved(out, "transform", dec.Transform, features.TransformValue{}, attr.GetAndInheritAll)
	out = appendResolved(out, "spacing", dec.Spacing, features.SpacingValue{}, attr.GetAndInherit)
	out = appendResolved(out, "sizing", dec.Sizing, features.SizingValue{}, attr.GetAndInherit)
	out = appendResolved(out, "overflow", dec.Overflow, features.OverflowValue{}, attr.GetAndInherit)
	out = appendResolved(out, "layout", dec.Layout, features.LayoutValue{}, attr.GetAndInheritAll)
	out = appendResolved(out, "zIndex", dec.ZIndex, "", attr.GetAndInherit)
	out = appendResolved(out, "dividers", dec.Dividers, vals.Dividers, attr.GetAndInheritAll)
	out = appendResolved(out, "buttonIcon", dec.ButtonIcon, vals.ButtonIcon, attr.GetAndInheritAll)
	return out, nil
}

// appendResolved walks every known breakpoint against states used anywhere
// in the tree, so inherited slots are shown too.
func appendResolved[T any](out []Resolved, name string, raw attr.Tree[T], def T, mode attr.Mode) []Resolved {
	if raw.IsEmpty() {
		return out
	}
	tree := raw
	if !attr.IsEmpty(def) {
		tree = raw.WithDefault(def)
	}
	seen := map[attr.State]bool{attr.Value: true}
	states := []attr.State{attr.Value}
	for _, bp := range tree.Breakpoints() {
		for _, st := range tree.States(bp) {
			if !seen[st] {
				seen[st] = true
				states = append(states, st)
			}
		}
	}
	attr.SortStates(states)

	for _, bp := range attr.Breakpoints {
		for _, st := range states {
			v, ok := tree.Resolve(bp, st, mode)
			if !ok {
				continue
			}
			out = append(out, Resolved{
				Attr:       name,
				Breakpoint: bp,
				State:      st,
				Mode:       mode,
				Explicit:   raw.Has(bp, st),
				Value:      v,
			})
		}
	}
	return out
}

// WriteExplanation formats resolved values as indented tree.
func WriteExplanation(tw *debug.TreeWriter, module string, rows []Resolved) {
	tw.Line(0, "%s", module)
	last := ""
	for _, r := range rows {
		if r.Attr != last {
			tw.Line(1, "%s (%s)", r.Attr, r.Mode)
			last = r.Attr
		}
		marker := "inherited"
		if r.Explicit {
			marker = "set"
		}
		tw.Value(2, r.Breakpoint.String()+"/"+string(r.State)+" ["+marker+"]", r.Value)
	}
}
