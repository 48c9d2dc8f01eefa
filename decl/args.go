package decl

import (
	"stylegen/attr"
)

// Args is what a declaration function receives for one breakpoint/state.
type Args[T any] struct {
	// Value is the effective attribute value.
	Value T
	// Default is the value already printed into static CSS, zero when
	// nothing was printed. Used to suppress redundant fallbacks.
	Default T
	// Desktop is the effective desktop value after defaulting.
	Desktop T
	// Tree is the attribute tree as supplied, before defaulting. Exact
	// lookups in it tell explicitly set slots from inherited ones.
	Tree attr.Tree[T]

	Breakpoint attr.Breakpoint
	State      attr.State
	Important  Important
	Vars       Resolver
}

// New returns an accumulator bound to the policy and variable resolver.
func (a Args[T]) New() *Declarations {
	return New(a.Important, a.Vars)
}

// IsBase reports whether args target desktop value.
func (a Args[T]) IsBase() bool {
	return a.Breakpoint.IsBase() && a.State.IsBase()
}

// Func is a declaration function. It returns nil or empty declarations when
// there is nothing to print. An error means a required collaborator is
// missing and is not recoverable.
type Func[T any] func(args Args[T]) (*Declarations, error)
