// Package modstyle compiles decoration attributes of page modules into CSS.
package modstyle

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"stylegen/attr"
	"stylegen/features"
)

// Decoration is the set of style attributes a module may carry.
type Decoration struct {
	Border     attr.Tree[features.BorderValue]     `json:"border,omitempty" yaml:"border,omitempty"`
	BoxShadow  attr.Tree[features.BoxShadowValue]  `json:"boxShadow,omitempty" yaml:"boxShadow,omitempty"`
	TextShadow attr.Tree[features.TextShadowValue] `json:"textShadow,omitempty" yaml:"textShadow,omitempty"`
	Position   attr.Tree[features.PositionValue]   `json:"position,omitempty" yaml:"position,omitempty"`
	Transform  attr.Tree[features.TransformValue]  `json:"transform,omitempty" yaml:"transform,omitempty"`
	Spacing    attr.Tree[features.SpacingValue]    `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Sizing     attr.Tree[features.SizingValue]     `json:"sizing,omitempty" yaml:"sizing,omitempty"`
	Overflow   attr.Tree[features.OverflowValue]   `json:"overflow,omitempty" yaml:"overflow,omitempty"`
	Layout     attr.Tree[features.LayoutValue]     `json:"layout,omitempty" yaml:"layout,omitempty"`
	Dividers   attr.Tree[features.DividerValue]    `json:"dividers,omitempty" yaml:"dividers,omitempty"`
	ButtonIcon attr.Tree[features.ButtonIconValue] `json:"buttonIcon,omitempty" yaml:"buttonIcon,omitempty"`
	ZIndex     attr.Tree[string]                   `json:"zIndex,omitempty" yaml:"zIndex,omitempty"`
}

// Printed lists values which static CSS already contains for the module.
type Printed struct {
	Border features.BorderValue `json:"border,omitzero" yaml:"border,omitempty"`
}

// Neighbours holds background colors of adjacent sections.
type Neighbours struct {
	Above string `json:"above,omitempty" yaml:"above,omitempty"`
	Below string `json:"below,omitempty" yaml:"below,omitempty"`
}

// Module is one module instance on a page.
type Module struct {
	// Name is module kind, e.g. "section" or "call to action".
	Name string `json:"name" yaml:"name"`
	// Index is the order number of module of this kind on the page.
	Index int `json:"index" yaml:"index"`
	// Selector replaces generated module class when set.
	Selector   string     `json:"selector,omitempty" yaml:"selector,omitempty"`
	Fullwidth  bool       `json:"fullwidth,omitempty" yaml:"fullwidth,omitempty"`
	Background string     `json:"background,omitempty" yaml:"background,omitempty"`
	Neighbours Neighbours `json:"neighbours,omitzero" yaml:"neighbours,omitempty"`

	Decoration Decoration `json:"decoration" yaml:"decoration"`
	Printed    Printed    `json:"printed,omitzero" yaml:"printed,omitempty"`
	// PropertySelectors redirect properties per attribute name, for example
	// {"border": {"desktop": {"value": {"border-top": ".inner"}}}}.
	PropertySelectors map[string]attr.Tree[map[string]string] `json:"propertySelectors,omitempty" yaml:"propertySelectors,omitempty"`
}

// Class returns module class name: "et_pb_call_to_action_0".
func (m *Module) Class() string {
	return "et_pb_" + strings.ReplaceAll(slug.Make(m.Name), "-", "_") + "_" + strconv.Itoa(m.Index)
}

// OrderClass returns module selector.
func (m *Module) OrderClass() string {
	if m.Selector != "" {
		return m.Selector
	}
	return "." + m.Class()
}

// Page is a list of modules compiled together.
type Page struct {
	Modules []Module `json:"modules" yaml:"modules"`
}

// Decode reads page from JSON or YAML. Unknown fields are errors.
func Decode(r io.Reader, isYAML bool) (*Page, error) {
	var page Page
	if isYAML {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&page); err != nil {
			return nil, fmt.Errorf("unable to decode page: %w", err)
		}
	} else {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&page); err != nil {
			return nil, fmt.Errorf("unable to decode page: %w", err)
		}
	}
	for i := range page.Modules {
		if err := page.Modules[i].validate(); err != nil {
			return nil, fmt.Errorf("module %d: %w", i, err)
		}
	}
	return &page, nil
}

func (m *Module) validate() error {
	if m.Name == "" && m.Selector == "" {
		return fmt.Errorf("either name or selector is required")
	}
	if m.Index < 0 {
		return fmt.Errorf("negative index %d", m.Index)
	}
	return nil
}
