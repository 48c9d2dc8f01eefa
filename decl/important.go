package decl

import (
	"maps"
)

// Important decides whether "!important" is appended to a property. It is
// either a single flag for every property or a per property table, where
// unlisted properties fall back to the global flag (false for tables built
// with ImportantFor).
type Important struct {
	all   bool
	props map[string]bool
}

// ImportantAll applies the same flag to every property.
func ImportantAll(on bool) Important {
	return Important{all: on}
}

// ImportantFor builds a per property policy.
func ImportantFor(props map[string]bool) Important {
	return Important{props: maps.Clone(props)}
}

// For reports whether property must be marked important.
func (i Important) For(property string) bool {
	if on, ok := i.props[property]; ok {
		return on
	}
	return i.all
}

// With returns a copy of the policy with property set to on. A global
// policy is converted to a table only when the flag differs.
func (i Important) With(property string, on bool) Important {
	if i.props == nil && i.all == on {
		return i
	}
	props := maps.Clone(i.props)
	if props == nil {
		props = make(map[string]bool)
	}
	props[property] = on
	return Important{all: i.all, props: props}
}
