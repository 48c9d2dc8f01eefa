package modstyle

import (
	"fmt"

	"go.uber.org/zap"

	"stylegen/attr"
	"stylegen/decl"
	"stylegen/defaults"
	"stylegen/dividers"
	"stylegen/features"
	"stylegen/statements"
)

// Styler compiles module decorations. It is safe for concurrent use as long
// as the compiler and cache are.
type Styler struct {
	log      *zap.Logger
	compiler *statements.Compiler
	cache    *defaults.Cache
	template string
}

// Option configures Styler.
type Option func(*Styler)

// WithSelectorTemplate applies selector template to all module attributes.
func WithSelectorTemplate(tmpl string) Option {
	return func(s *Styler) {
		s.template = tmpl
	}
}

// NewStyler creates styler on top of compiler and defaults cache.
func NewStyler(compiler *statements.Compiler, cache *defaults.Cache, log *zap.Logger, opts ...Option) *Styler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Styler{log: log, compiler: compiler, cache: cache}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page compiles all modules in order.
func (s *Styler) Page(page *Page) (*statements.Result, error) {
	results := make([]*statements.Result, 0, len(page.Modules))
	for i := range page.Modules {
		res, err := s.Module(&page.Modules[i])
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return statements.Join(results...), nil
}

// Module compiles every decoration attribute of the module.
func (s *Styler) Module(m *Module) (*statements.Result, error) {
	vals, err := s.cache.Values()
	if err != nil {
		return nil, err
	}
	sel := m.OrderClass()
	dec := &m.Decoration
	res := &statements.Result{}

	steps := []func() (*statements.Result, error){
		func() (*statements.Result, error) {
			return compile(s, m, "border", sel, dec.Border, features.Border, attr.GetAndInheritAll, func(o *statements.Options[features.BorderValue]) {
				o.Printed = m.Printed.Border
			})
		},
		func() (*statements.Result, error) {
			return compile(s, m, "boxShadow", sel, dec.BoxShadow, features.BoxShadow, attr.GetAndInheritAll, func(o *statements.Options[features.BoxShadowValue]) {
				o.Defaults = vals.BoxShadow
			})
		},
		func() (*statements.Result, error) {
			return compile(s, m, "textShadow", sel, dec.TextShadow, features.TextShadow, attr.GetAndInheritAll, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "position", sel, dec.Position, features.Position, attr.GetAndInheritAll, func(o *statements.Options[features.PositionValue]) {
				o.Defaults = vals.Position
			})
		},
		func() (*statements.Result, error) {
			return compile(s, m, "transform", sel, dec.Transform, features.Transform, attr.GetAndInheritAll, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "spacing", sel, dec.Spacing, features.Spacing, attr.GetAndInherit, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "sizing", sel, dec.Sizing, features.Sizing, attr.GetAndInherit, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "overflow", sel, dec.Overflow, features.Overflow, attr.GetAndInherit, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "layout", sel, dec.Layout, features.Layout, attr.GetAndInheritAll, nil)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "zIndex", sel, dec.ZIndex, features.ZIndex, attr.GetAndInherit, nil)
		},
		func() (*statements.Result, error) {
			return s.dividers(m, sel, vals)
		},
		func() (*statements.Result, error) {
			return compile(s, m, "buttonIcon", sel+" .et_pb_button:after", dec.ButtonIcon, features.ButtonIcon(vals.IconFonts), attr.GetAndInheritAll,
				func(o *statements.Options[features.ButtonIconValue]) {
					o.Defaults = vals.ButtonIcon
					o.SelectorFunc = buttonIconSelector(s.compiler.Settings(), sel)
				})
		},
	}
	for _, step := range steps {
		r, err := step()
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", sel, err)
		}
		res = statements.Join(res, r)
	}

	s.log.Debug("Module compiled", zap.String("module", sel), zap.Int("statements", len(res.Statements)))
	return res, nil
}

func (s *Styler) dividers(m *Module, sel string, vals defaults.Values) (*statements.Result, error) {
	if m.Decoration.Dividers.IsEmpty() {
		return nil, nil
	}
	reg, err := s.cache.Dividers()
	if err != nil {
		return nil, err
	}

	var out []*statements.Result
	for _, p := range []dividers.Placement{dividers.Top, dividers.Bottom} {
		sibling := m.Neighbours.Above
		if p == dividers.Bottom {
			sibling = m.Neighbours.Below
		}
		fn := features.Divider(features.DividerParams{
			Registry:          reg,
			Placement:         p,
			Fullwidth:         m.Fullwidth,
			Background:        m.Background,
			SiblingBackground: sibling,
		})
		name := "dividers." + string(p)
		target := sel + ".section_has_divider.et_pb_" + string(p) + "_divider .et_pb_" + string(p) + "_inside_divider"
		r, err := compile(s, m, name, target, m.Decoration.Dividers, fn, attr.GetAndInheritAll, func(o *statements.Options[features.DividerValue]) {
			o.Defaults = vals.Dividers
		})
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return statements.Join(out...), nil
}

// buttonIconSelector puts state pseudo classes before the pseudo element.
func buttonIconSelector(settings statements.Settings, sel string) statements.SelectorFunc {
	return func(_ attr.Breakpoint, st attr.State) string {
		return settings.StateSelector(sel+" .et_pb_button", st) + ":after"
	}
}

func compile[T any](s *Styler, m *Module, name, sel string, tree attr.Tree[T], fn decl.Func[T], mode attr.Mode, tune func(*statements.Options[T])) (*statements.Result, error) {
	if tree.IsEmpty() {
		return nil, nil
	}
	opts := statements.NewOptions(name, sel, tree, fn)
	opts.Mode = mode
	opts.SelectorTemplate = s.template
	if ps, ok := m.PropertySelectors[name]; ok {
		opts.PropertySelectors = ps
	}
	if tune != nil {
		tune(&opts)
	}
	return statements.Compile(s.compiler, opts)
}
