package statements

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"stylegen/attr"
)

// SelectorFunc returns selector for breakpoint and state. Empty result
// skips the pair.
type SelectorFunc func(bp attr.Breakpoint, st attr.State) string

// StateSelector derives state selector from base selector. Every part of a
// selector list is modified: hover appends suffix, sticky prepends prefix,
// other custom states become pseudo classes.
func (s Settings) StateSelector(base string, st attr.State) string {
	if st.IsBase() {
		return base
	}
	parts := strings.Split(base, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		switch st {
		case attr.Hover:
			part += s.HoverSuffix
		case attr.Sticky:
			part = s.StickyPrefix + part
		default:
			part += ":" + string(st)
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

// selectorValues is available to selector templates.
type selectorValues struct {
	Selector   string
	Default    string
	Breakpoint string
	State      string
	Hover      bool
	Sticky     bool
}

// selectorTemplate is compiled once per compilation.
type selectorTemplate struct {
	tmpl *template.Template
}

func parseSelectorTemplate(name, field string) (*selectorTemplate, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(name).Funcs(funcMap).Parse(field)
	if err != nil {
		return nil, fmt.Errorf("unable to parse selector template %s: %w", name, err)
	}
	return &selectorTemplate{tmpl: tmpl}, nil
}

func (t *selectorTemplate) expand(values *selectorValues) (string, error) {
	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
