package attr

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// ErrNotMergeable is returned by Merge for values that cannot be deep merged.
var ErrNotMergeable = errors.New("value is not mergeable")

// Mode selects how Resolve treats absent slots.
type Mode int

const (
	// Exact returns the slot as stored, without inheritance.
	Exact Mode = iota
	// GetAndInherit replaces an absent slot with the closest ancestor:
	// breakpoint.state, breakpoint.value, desktop.value.
	GetAndInherit
	// GetAndInheritAll deep merges the whole chain so that fields set on
	// a more specific slot override only themselves.
	GetAndInheritAll
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case GetAndInherit:
		return "getAndInherit"
	case GetAndInheritAll:
		return "getAndInheritAll"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// GroupFiller is implemented by values holding an "all sides" group next to
// side specific groups. FillFromGroup completes side fields that are present
// but incomplete from the group of the same value. Resolve applies it to the
// effective value only, so filled fields never take part in inheritance.
type GroupFiller[T any] interface {
	FillFromGroup() T
}

// GroupMerger replaces the deep merge of GetAndInheritAll for values with an
// "all sides" group. A group field set on a more specific slot must reset
// the same field of ancestor side groups, otherwise an ancestor side value
// shadows it.
type GroupMerger[T any] interface {
	MergeGroups(ancestor T) (T, error)
}

// Resolve returns the effective value for bp and st. The boolean is false
// when nothing along the chain holds a value.
func (t Tree[T]) Resolve(bp Breakpoint, st State, mode Mode) (T, bool) {
	switch mode {
	case Exact:
		v, ok := t.Get(bp, st)
		if !ok || IsEmpty(v) {
			var zero T
			return zero, false
		}
		return v, true
	case GetAndInheritAll:
		return t.resolveAll(bp, st)
	default:
		for _, slot := range chain(bp, st) {
			if v, ok := t.Get(slot.bp, slot.st); ok && !IsEmpty(v) {
				return fill(v), true
			}
		}
		var zero T
		return zero, false
	}
}

func (t Tree[T]) resolveAll(bp Breakpoint, st State) (T, bool) {
	var (
		acc   T
		found bool
	)
	slots := chain(bp, st)
	// walk from the root towards the requested slot
	for i := len(slots) - 1; i >= 0; i-- {
		v, ok := t.Get(slots[i].bp, slots[i].st)
		if !ok || IsEmpty(v) {
			continue
		}
		if !found {
			acc, found = v, true
			continue
		}
		merged, err := mergeSlot(acc, v)
		if err != nil {
			// scalar values simply replace their ancestor
			acc = v
			continue
		}
		acc = merged
	}
	if found {
		acc = fill(acc)
	}
	return acc, found
}

func mergeSlot[T any](ancestor, v T) (T, error) {
	if m, ok := any(v).(GroupMerger[T]); ok {
		return m.MergeGroups(ancestor)
	}
	return Merge(ancestor, v)
}

type slot struct {
	bp Breakpoint
	st State
}

// chain lists slots from the most specific one to the root, without
// duplicates.
func chain(bp Breakpoint, st State) []slot {
	out := []slot{{bp, st}}
	if !st.IsBase() {
		out = append(out, slot{bp, Value})
	}
	if !bp.IsBase() {
		out = append(out, slot{Desktop, Value})
	}
	return out
}

func fill[T any](v T) T {
	if f, ok := any(v).(GroupFiller[T]); ok {
		return f.FillFromGroup()
	}
	return v
}

// Merge deep merges over on top of base: every non-empty field of over
// replaces the same field of base, nested structs are merged field by field.
func Merge[T any](base, over T) (T, error) {
	out := base
	if err := mergo.Merge(&out, over, mergo.WithOverride); err != nil {
		return base, fmt.Errorf("%w: %w", ErrNotMergeable, err)
	}
	return out, nil
}
