// Package defaults provides default attribute values and the divider
// registry. Everything is built lazily on first use and never changes
// afterwards, so a single Cache may be shared by concurrent compilations.
package defaults

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"

	"stylegen/dividers"
	"stylegen/features"
)

//go:embed defaults.json
var embeddedValues []byte

// Values are per feature defaults layered beneath attribute trees.
type Values struct {
	Dividers   features.DividerValue    `json:"dividers"`
	ButtonIcon features.ButtonIconValue `json:"buttonIcon"`
	BoxShadow  features.BoxShadowValue  `json:"boxShadow"`
	Position   features.PositionValue   `json:"position"`
	IconFonts  features.IconFonts       `json:"iconFonts"`
}

// Cache holds lazily built shared defaults.
type Cache struct {
	log         *zap.Logger
	dividersDir string

	regOnce sync.Once
	reg     *dividers.Registry
	regErr  error

	valOnce sync.Once
	values  Values
	valErr  error
}

// Option configures Cache.
type Option func(*Cache)

// WithDividersDir makes cache load additional divider definitions from dir.
func WithDividersDir(dir string) Option {
	return func(c *Cache) {
		c.dividersDir = dir
	}
}

// WithRegistry injects ready registry.
func WithRegistry(reg *dividers.Registry) Option {
	return func(c *Cache) {
		c.regOnce.Do(func() { c.reg = reg })
	}
}

// WithValues injects default values instead of built-in ones.
func WithValues(v Values) Option {
	return func(c *Cache) {
		c.valOnce.Do(func() { c.values = v })
	}
}

// New creates cache. Nothing is loaded until requested.
func New(log *zap.Logger, opts ...Option) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cache{log: log.Named("defaults")}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dividers returns divider registry, loading it on first call. Load error
// is sticky.
func (c *Cache) Dividers() (*dividers.Registry, error) {
	c.regOnce.Do(func() {
		if c.dividersDir != "" {
			c.log.Debug("Loading dividers", zap.String("dir", c.dividersDir))
			c.reg, c.regErr = dividers.LoadDir(c.dividersDir, c.log)
			return
		}
		c.reg, c.regErr = dividers.Default(c.log)
	})
	return c.reg, c.regErr
}

// Values returns default attribute values.
func (c *Cache) Values() (Values, error) {
	c.valOnce.Do(func() {
		if err := json.Unmarshal(embeddedValues, &c.values); err != nil {
			c.valErr = fmt.Errorf("unable to decode default values: %w", err)
		}
	})
	v := c.values
	v.IconFonts = maps.Clone(c.values.IconFonts)
	return v, c.valErr
}
