package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"stylegen/attr"
	"stylegen/decl"
	"stylegen/statements"
	"stylegen/variables"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	MediaConfig struct {
		Tablet string `yaml:"tablet" validate:"required"`
		Phone  string `yaml:"phone" validate:"required"`
	}

	CompilerConfig struct {
		HoverSuffix         string          `yaml:"hover_suffix" validate:"required"`
		StickyPrefix        string          `yaml:"sticky_prefix"`
		SelectorTemplate    string          `yaml:"selector_template"`
		Media               MediaConfig     `yaml:"media"`
		Output              string          `yaml:"output" validate:"oneof=css map"`
		AsStyle             bool            `yaml:"as_style"`
		Important           bool            `yaml:"important"`
		ImportantProperties map[string]bool `yaml:"important_properties"`
	}

	VariablesConfig struct {
		CSSVars bool              `yaml:"css_vars"`
		Colors  map[string]string `yaml:"colors" validate:"dive,required"`
	}

	DividersConfig struct {
		Dir string `yaml:"dir" validate:"omitempty,dir"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Compiler  CompilerConfig  `yaml:"compiler"`
		Variables VariablesConfig `yaml:"variables"`
		Dividers  DividersConfig  `yaml:"dividers"`
		Logging   LoggingConfig   `yaml:"logging"`
	}
)

// NOTE: must match yaml field name above.
const SelectorTemplateFieldName = "selector_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(SelectorTemplateFieldName),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// Settings converts compiler section into selector and output conventions.
func (conf *CompilerConfig) Settings() statements.Settings {
	important := decl.ImportantAll(conf.Important)
	for prop, on := range conf.ImportantProperties {
		important = important.With(prop, on)
	}
	return statements.Settings{
		HoverSuffix:  conf.HoverSuffix,
		StickyPrefix: conf.StickyPrefix,
		AtRules: map[attr.Breakpoint]string{
			attr.Tablet: conf.Media.Tablet,
			attr.Phone:  conf.Media.Phone,
		},
		Important: important,
	}
}

func (conf *CompilerConfig) Format() (statements.Format, error) {
	return statements.ParseFormat(conf.Output)
}

// Resolver builds variable resolver for global colors.
func (conf *VariablesConfig) Resolver(log *zap.Logger) *variables.Resolver {
	return variables.New(conf.Colors,
		variables.WithCSSVariables(conf.CSSVars),
		variables.WithLogger(log))
}
