// Package decl accumulates CSS declarations produced by declaration
// functions and defines the contract those functions implement.
package decl

import (
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// String returns "property: value;" with the importance flag applied.
func (d Declaration) String() string {
	var sb strings.Builder
	d.write(&sb)
	return sb.String()
}

func (d Declaration) write(sb *strings.Builder) {
	sb.WriteString(d.Property)
	sb.WriteString(": ")
	sb.WriteString(d.FullValue())
	sb.WriteByte(';')
}

// FullValue returns the value with " !important" appended when needed.
func (d Declaration) FullValue() string {
	if d.Important {
		return d.Value + " !important"
	}
	return d.Value
}

// Entry is an element of the structured (key/value) output.
type Entry struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Resolver substitutes dynamic tokens in declaration values.
type Resolver interface {
	Resolve(value string) string
}

// Declarations accumulates declarations in call order. Duplicate properties
// are kept: the later one wins in the cascade.
type Declarations struct {
	items     []Declaration
	important Important
	vars      Resolver
}

// New creates an accumulator applying the given importance policy. vars may
// be nil.
func New(important Important, vars Resolver) *Declarations {
	return &Declarations{important: important, vars: vars}
}

// Add appends a declaration, importance comes from the policy. Empty values
// are dropped.
func (d *Declarations) Add(property, value string) *Declarations {
	return d.add(property, value, d.important.For(property))
}

// AddImportant appends a declaration marked important regardless of policy.
func (d *Declarations) AddImportant(property, value string) *Declarations {
	return d.add(property, value, true)
}

// AddWith appends a declaration that is important when either the policy or
// force says so.
func (d *Declarations) AddWith(property, value string, force bool) *Declarations {
	return d.add(property, value, force || d.important.For(property))
}

func (d *Declarations) add(property, value string, important bool) *Declarations {
	if property == "" || value == "" {
		return d
	}
	if d.vars != nil {
		value = d.vars.Resolve(value)
	}
	d.items = append(d.items, Declaration{Property: property, Value: value, Important: important})
	return d
}

// Append copies all declarations of other, keeping their flags.
func (d *Declarations) Append(other *Declarations) *Declarations {
	if other != nil {
		d.items = append(d.items, other.items...)
	}
	return d
}

// Len returns the number of accumulated declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// IsEmpty reports whether nothing was accumulated.
func (d *Declarations) IsEmpty() bool {
	return d.Len() == 0
}

// Items returns a copy of the accumulated declarations.
func (d *Declarations) Items() []Declaration {
	if d == nil {
		return nil
	}
	out := make([]Declaration, len(d.items))
	copy(out, d.items)
	return out
}

// Split partitions declarations by key, keeping call order inside every
// partition. Keys are returned in first-seen order.
func (d *Declarations) Split(key func(Declaration) string) ([]string, map[string]*Declarations) {
	var (
		keys  []string
		parts = make(map[string]*Declarations)
	)
	if d == nil {
		return keys, parts
	}
	for _, item := range d.items {
		k := key(item)
		part, ok := parts[k]
		if !ok {
			part = &Declarations{important: d.important}
			parts[k] = part
			keys = append(keys, k)
		}
		part.items = append(part.items, item)
	}
	return keys, parts
}

// String serializes declarations as "a: 1; b: 2;".
func (d *Declarations) String() string {
	if d.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for i, item := range d.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		item.write(&sb)
	}
	return sb.String()
}

// Entries returns the ordered key/value form. Duplicates are preserved so
// the output can be turned back into the same CSS text.
func (d *Declarations) Entries() []Entry {
	if d.IsEmpty() {
		return nil
	}
	out := make([]Entry, 0, len(d.items))
	for _, item := range d.items {
		out = append(out, Entry{Property: item.Property, Value: item.FullValue()})
	}
	return out
}

// Map returns the effective value per property, later declarations win.
func (d *Declarations) Map() map[string]string {
	out := make(map[string]string, d.Len())
	for _, e := range d.Entries() {
		out[e.Property] = e.Value
	}
	return out
}
