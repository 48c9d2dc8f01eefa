// Package attr holds responsive attribute values and resolves the effective
// value for a breakpoint and state.
//
// A tree has fixed depth: breakpoint, then state, then a feature value.
// Feature values are plain structs of strings and nested structs. Maps and
// pointers inside values are not supported by the merge modes since merging
// works on copies.
package attr

import (
	"maps"
	"reflect"
)

// Tree maps breakpoint and state to a feature value.
type Tree[T any] map[Breakpoint]map[State]T

// Of returns a tree holding v as desktop value.
func Of[T any](v T) Tree[T] {
	return Tree[T]{Desktop: {Value: v}}
}

// With stores v at the given slot and returns the tree. A nil tree is
// allocated, so always use the returned value.
func (t Tree[T]) With(bp Breakpoint, st State, v T) Tree[T] {
	if t == nil {
		t = Tree[T]{}
	}
	if t[bp] == nil {
		t[bp] = map[State]T{}
	}
	t[bp][st] = v
	return t
}

// Get returns the value stored at the exact slot.
func (t Tree[T]) Get(bp Breakpoint, st State) (T, bool) {
	v, ok := t[bp][st]
	return v, ok
}

// Has reports whether the exact slot holds a non-empty value.
func (t Tree[T]) Has(bp Breakpoint, st State) bool {
	v, ok := t[bp][st]
	return ok && !IsEmpty(v)
}

// IsEmpty reports whether no slot in the tree holds a non-empty value.
func (t Tree[T]) IsEmpty() bool {
	for _, states := range t {
		for _, v := range states {
			if !IsEmpty(v) {
				return false
			}
		}
	}
	return true
}

// Breakpoints returns known breakpoints present in the tree in cascade order.
func (t Tree[T]) Breakpoints() []Breakpoint {
	var out []Breakpoint
	for _, bp := range Breakpoints {
		if len(t[bp]) > 0 {
			out = append(out, bp)
		}
	}
	return out
}

// States returns the states present for bp, sorted with SortStates.
func (t Tree[T]) States(bp Breakpoint) []State {
	out := make([]State, 0, len(t[bp]))
	for st := range t[bp] {
		out = append(out, st)
	}
	SortStates(out)
	return out
}

// Clone returns a copy of the tree structure. Values are copied by
// assignment.
func (t Tree[T]) Clone() Tree[T] {
	if t == nil {
		return nil
	}
	out := make(Tree[T], len(t))
	for bp, states := range t {
		out[bp] = maps.Clone(states)
	}
	return out
}

// WithDefault returns a copy of t whose desktop value is def overlaid with
// whatever t holds there. After defaulting desktop.value always exists.
func (t Tree[T]) WithDefault(def T) Tree[T] {
	out := t.Clone()
	if out == nil {
		out = Tree[T]{}
	}
	base := def
	if v, ok := out.Get(Desktop, Value); ok {
		if merged, err := Merge(def, v); err == nil {
			base = merged
		} else if !IsEmpty(v) {
			base = v
		}
	}
	return out.With(Desktop, Value, base)
}

// IsEmpty reports whether v is the zero value of its type.
func IsEmpty[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
