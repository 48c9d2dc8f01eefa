package attr

import (
	"fmt"
	"slices"

	"github.com/maruel/natural"
)

// Breakpoint is a responsive view size. Desktop is the inheritance root.
type Breakpoint string

const (
	Desktop Breakpoint = "desktop"
	Tablet  Breakpoint = "tablet"
	Phone   Breakpoint = "phone"
)

// Breakpoints lists known breakpoints in cascade order.
var Breakpoints = []Breakpoint{Desktop, Tablet, Phone}

func (b Breakpoint) String() string {
	return string(b)
}

// IsBase reports whether b is the root of the breakpoint chain.
func (b Breakpoint) IsBase() bool {
	return b == Desktop
}

// IsValid reports whether b is one of the known breakpoints.
func (b Breakpoint) IsValid() bool {
	return slices.Contains(Breakpoints, b)
}

// ParseBreakpoint converts a name into a Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	b := Breakpoint(name)
	if !b.IsValid() {
		return "", fmt.Errorf("unknown breakpoint %q", name)
	}
	return b, nil
}

// State is an interaction or rendering state. Value is the root for every
// breakpoint, anything beyond the predefined states is a custom state.
type State string

const (
	Value  State = "value"
	Hover  State = "hover"
	Sticky State = "sticky"
)

var knownStates = []State{Value, Hover, Sticky}

func (s State) String() string {
	return string(s)
}

// IsBase reports whether s is the root of the state chain.
func (s State) IsBase() bool {
	return s == Value
}

// SortStates orders states in place: value, hover, sticky and then custom
// states in natural order.
func SortStates(states []State) {
	slices.SortStableFunc(states, func(a, b State) int {
		ia, ib := slices.Index(knownStates, a), slices.Index(knownStates, b)
		switch {
		case ia >= 0 && ib >= 0:
			return ia - ib
		case ia >= 0:
			return -1
		case ib >= 0:
			return 1
		case a == b:
			return 0
		case natural.Less(string(a), string(b)):
			return -1
		default:
			return 1
		}
	})
}
