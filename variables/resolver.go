// Package variables substitutes dynamic variable tokens found in attribute
// values. Tokens look like
//
//	$variable({"type":"color","value":{"name":"gcid-primary","settings":{"opacity":50}}})$
//
// and are replaced either by a literal value from the global table or by a
// CSS custom property reference. Tokens that cannot be resolved are kept as
// they are.
package variables

import (
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var tokenPattern = regexp.MustCompile(`\$variable\((\{.*?\})\)\$`)

type token struct {
	Type  string `json:"type"`
	Value struct {
		Name     string         `json:"name"`
		Settings map[string]any `json:"settings"`
	} `json:"value"`
}

// Resolver replaces variable tokens. It is immutable and safe for
// concurrent use.
type Resolver struct {
	log     *zap.Logger
	values  map[string]string
	cssVars bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCSSVariables makes color tokens resolve to var(--name) instead of
// literal values.
func WithCSSVariables(on bool) Option {
	return func(r *Resolver) {
		r.cssVars = on
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log.Named("variables")
		}
	}
}

// New creates a resolver over global values keyed by variable name.
func New(values map[string]string, opts ...Option) *Resolver {
	r := &Resolver{log: zap.NewNop(), values: maps.Clone(values)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve replaces all tokens in value.
func (r *Resolver) Resolve(value string) string {
	if r == nil || !strings.Contains(value, "$variable(") {
		return value
	}
	return tokenPattern.ReplaceAllStringFunc(value, func(match string) string {
		sub := tokenPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		var tok token
		if err := json.Unmarshal([]byte(sub[1]), &tok); err != nil {
			r.log.Debug("Malformed variable token", zap.String("token", match), zap.Error(err))
			return match
		}
		resolved, ok := r.resolve(&tok)
		if !ok {
			r.log.Debug("Unresolved variable", zap.String("type", tok.Type), zap.String("name", tok.Value.Name))
			return match
		}
		return resolved
	})
}

func (r *Resolver) resolve(tok *token) (string, bool) {
	name := tok.Value.Name
	if name == "" {
		return "", false
	}
	if tok.Type == "color" && r.cssVars {
		return "var(--" + name + ")", true
	}
	v, ok := r.values[name]
	if !ok || v == "" {
		return "", false
	}
	if tok.Type == "color" {
		if opacity, ok := numberSetting(tok.Value.Settings, "opacity"); ok && opacity < 100 {
			if rgba, ok := withOpacity(v, opacity); ok {
				return rgba, true
			}
		}
	}
	return v, true
}

func numberSetting(settings map[string]any, key string) (float64, bool) {
	switch v := settings[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// withOpacity converts #rgb / #rrggbb to rgba with opacity given in percent.
func withOpacity(color string, opacity float64) (string, bool) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == len(color) {
		return "", false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", false
	}
	alpha := strconv.FormatFloat(max(opacity, 0)/100, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n>>16&0xff, n>>8&0xff, n&0xff, alpha), true
}
