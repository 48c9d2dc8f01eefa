// Package statements turns attribute trees into CSS statements: it walks
// breakpoints and states, builds selectors, resolves effective values, runs
// declaration functions and joins the results.
package statements

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"stylegen/attr"
	"stylegen/css"
	"stylegen/decl"
)

// Settings are selector and output conventions shared by all features.
type Settings struct {
	HoverSuffix  string
	StickyPrefix string
	// AtRules wrap statements of a breakpoint, for example
	// "@media only screen and (max-width: 980px)" for tablet.
	AtRules   map[attr.Breakpoint]string
	Important decl.Important
}

// DefaultSettings returns conventions used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		HoverSuffix:  ":hover",
		StickyPrefix: ".et_pb_sticky ",
		AtRules: map[attr.Breakpoint]string{
			attr.Tablet: "@media only screen and (max-width: 980px)",
			attr.Phone:  "@media only screen and (max-width: 767px)",
		},
	}
}

// Compiler runs declaration functions over attribute trees. It keeps no
// per call state and may be used concurrently.
type Compiler struct {
	log      *zap.Logger
	settings Settings
	vars     decl.Resolver
}

// New creates compiler. vars may be nil.
func New(settings Settings, vars decl.Resolver, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{
		log:      log.Named("compiler"),
		settings: settings,
		vars:     vars,
	}
}

// Settings returns compiler conventions.
func (c *Compiler) Settings() Settings {
	return c.settings
}

// Options describe compilation of one attribute.
type Options[T any] struct {
	// Name identifies the attribute in logs and errors.
	Name    string
	Tree    attr.Tree[T]
	Declare decl.Func[T]
	Mode    attr.Mode

	// Selector is the base selector, state selectors are derived from it.
	Selector string
	// Selectors, when set, lists exact selectors per breakpoint and state.
	// Only listed pairs are compiled.
	Selectors map[attr.Breakpoint]map[attr.State]string
	// SelectorFunc replaces derivation of state selectors.
	SelectorFunc SelectorFunc
	// SelectorTemplate is a text/template with sprig functions, executed
	// with .Selector, .Default, .Breakpoint, .State, .Hover and .Sticky.
	SelectorTemplate string

	// Defaults are layered beneath desktop value before resolution.
	Defaults T
	// Printed is the value already present in static CSS.
	Printed T

	// PropertySelectors redirect properties to other selectors. Keys may
	// be shorthands, which redirect all their longhands. Longhand keys win
	// over shorthand ones.
	PropertySelectors attr.Tree[map[string]string]

	// Important overrides compiler policy when not nil.
	Important *decl.Important
	// AtRules overrides compiler at-rules when not nil.
	AtRules map[attr.Breakpoint]string
}

// NewOptions returns options with inheriting resolution.
func NewOptions[T any](name, selector string, tree attr.Tree[T], declare decl.Func[T]) Options[T] {
	return Options[T]{
		Name:     name,
		Tree:     tree,
		Declare:  declare,
		Mode:     attr.GetAndInherit,
		Selector: selector,
	}
}

// ErrNoDeclarationFunc is returned for options without declaration function.
var ErrNoDeclarationFunc = errors.New("declaration function is not set")

type pair struct {
	bp attr.Breakpoint
	st attr.State
}

// Compile produces statements for every breakpoint and state present in
// the tree, or listed in opts.Selectors. Order is fixed: breakpoints in
// cascade order, states value, hover, sticky, then custom ones.
func Compile[T any](c *Compiler, opts Options[T]) (*Result, error) {
	if opts.Declare == nil {
		return nil, fmt.Errorf("%s: %w", opts.Name, ErrNoDeclarationFunc)
	}

	var tmpl *selectorTemplate
	if opts.SelectorTemplate != "" {
		var err error
		if tmpl, err = parseSelectorTemplate(opts.Name, opts.SelectorTemplate); err != nil {
			return nil, err
		}
	}

	tree := opts.Tree
	if !attr.IsEmpty(opts.Defaults) {
		tree = tree.WithDefault(opts.Defaults)
	}
	desktop, _ := tree.Resolve(attr.Desktop, attr.Value, opts.Mode)

	important := c.settings.Important
	if opts.Important != nil {
		important = *opts.Important
	}
	atRules := c.settings.AtRules
	if opts.AtRules != nil {
		atRules = opts.AtRules
	}

	res := &Result{}
	for _, p := range opts.pairs() {
		selector, err := opts.selector(c.settings, tmpl, p)
		if err != nil {
			return nil, fmt.Errorf("%s %s/%s: %w", opts.Name, p.bp, p.st, err)
		}
		if selector == "" {
			c.log.Debug("No selector, skipping", zap.String("attr", opts.Name), zap.Stringer("breakpoint", p.bp), zap.Stringer("state", p.st))
			continue
		}

		value, ok := tree.Resolve(p.bp, p.st, opts.Mode)
		if !ok {
			continue
		}

		d, err := opts.Declare(decl.Args[T]{
			Value:      value,
			Default:    opts.Printed,
			Desktop:    desktop,
			Tree:       opts.Tree,
			Breakpoint: p.bp,
			State:      p.st,
			Important:  important,
			Vars:       c.vars,
		})
		if err != nil {
			return nil, fmt.Errorf("%s %s/%s: %w", opts.Name, p.bp, p.st, err)
		}
		if d.IsEmpty() {
			continue
		}

		stmt := Statement{Breakpoint: p.bp, State: p.st, Selector: selector, AtRules: atRules[p.bp]}
		res.Statements = append(res.Statements, opts.unpack(stmt, d)...)
	}

	c.log.Debug("Attribute compiled", zap.String("attr", opts.Name), zap.Int("statements", len(res.Statements)))
	return res, nil
}

func (opts *Options[T]) pairs() []pair {
	var out []pair
	if opts.Selectors != nil {
		for _, bp := range orderedBreakpoints(opts.Selectors) {
			states := slices.Collect(maps.Keys(opts.Selectors[bp]))
			attr.SortStates(states)
			for _, st := range states {
				out = append(out, pair{bp, st})
			}
		}
		return out
	}
	for _, bp := range opts.Tree.Breakpoints() {
		for _, st := range opts.Tree.States(bp) {
			out = append(out, pair{bp, st})
		}
	}
	return out
}

func orderedBreakpoints[V any](m map[attr.Breakpoint]V) []attr.Breakpoint {
	var out []attr.Breakpoint
	for _, bp := range attr.Breakpoints {
		if _, ok := m[bp]; ok {
			out = append(out, bp)
		}
	}
	return out
}

func (opts *Options[T]) selector(settings Settings, tmpl *selectorTemplate, p pair) (string, error) {
	switch {
	case opts.Selectors != nil:
		return opts.Selectors[p.bp][p.st], nil
	case opts.SelectorFunc != nil:
		return opts.SelectorFunc(p.bp, p.st), nil
	case tmpl != nil:
		return tmpl.expand(&selectorValues{
			Selector:   opts.Selector,
			Default:    settings.StateSelector(opts.Selector, p.st),
			Breakpoint: p.bp.String(),
			State:      string(p.st),
			Hover:      p.st == attr.Hover,
			Sticky:     p.st == attr.Sticky,
		})
	default:
		return settings.StateSelector(opts.Selector, p.st), nil
	}
}

// unpack splits declarations between the statement selector and property
// selectors valid for the statement breakpoint and state.
func (opts *Options[T]) unpack(stmt Statement, d *decl.Declarations) []Statement {
	overrides, ok := opts.PropertySelectors.Resolve(stmt.Breakpoint, stmt.State, attr.GetAndInherit)
	if !ok || len(overrides) == 0 {
		stmt.Declarations = d
		return []Statement{stmt}
	}

	lookup := make(map[string]string)
	// shorthands first so that explicit longhand keys override them
	keys := slices.Collect(maps.Keys(overrides))
	slices.SortFunc(keys, func(a, b string) int {
		if n := len(css.Expand(b)) - len(css.Expand(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	for _, key := range keys {
		for _, prop := range css.Expand(key) {
			lookup[prop] = overrides[key]
		}
	}

	selectors, parts := d.Split(func(item decl.Declaration) string {
		if sel, ok := lookup[item.Property]; ok && sel != "" {
			return sel
		}
		return stmt.Selector
	})
	out := make([]Statement, 0, len(selectors))
	for _, sel := range selectors {
		s := stmt
		s.Selector = sel
		s.Declarations = parts[sel]
		out = append(out, s)
	}
	return out
}
