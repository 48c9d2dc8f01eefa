package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	"go.uber.org/zap/zaptest"

	"stylegen/statements"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Compiler.Output != "css" {
		t.Errorf("Output = %q, want css", cfg.Compiler.Output)
	}
	if cfg.Compiler.HoverSuffix != ":hover" || cfg.Compiler.StickyPrefix != ".et_pb_sticky " {
		t.Errorf("unexpected state conventions: %+v", cfg.Compiler)
	}
	if cfg.Dividers.Dir != "" {
		t.Errorf("Dividers.Dir = %q, want empty", cfg.Dividers.Dir)
	}
	if len(cfg.Variables.Colors) == 0 {
		t.Error("expected default global colors")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
compiler:
  output: map
  as_style: true
  important: true
  important_properties:
    color: false
  selector_template: '{{ .Default }}{{ if .Hover }}, .preview{{ end }}'
variables:
  css_vars: true
  colors:
    brand: "#ff0000"
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if f, err := cfg.Compiler.Format(); err != nil || f != statements.FormatMap {
		t.Errorf("Format() = %v, %v", f, err)
	}
	if !cfg.Compiler.AsStyle {
		t.Error("expected as_style to be set")
	}
	if cfg.Compiler.SelectorTemplate != "{{ .Default }}{{ if .Hover }}, .preview{{ end }}" {
		t.Errorf("selector template was altered: %q", cfg.Compiler.SelectorTemplate)
	}
	if cfg.Variables.Colors["brand"] != "#ff0000" {
		t.Errorf("colors = %v", cfg.Variables.Colors)
	}
	// untouched values come from the template
	if cfg.Compiler.Media.Phone != "@media only screen and (max-width: 767px)" {
		t.Errorf("Media.Phone = %q", cfg.Compiler.Media.Phone)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ncompiler:\n  output: css\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"wrong version", "version: 2\n"},
		{"wrong output", "version: 1\ncompiler:\n  output: xml\n"},
		{"missing dividers dir", "version: 1\ndividers:\n  dir: /nonexistent/dividers\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "selector_template") {
		t.Error("prepared configuration misses compiler section")
	}
	cfg, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Prepared config is not valid: %v", err)
	}

	dumped, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	back, err := unmarshalConfig(dumped, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if back.Compiler.Media != cfg.Compiler.Media || back.Version != cfg.Version {
		t.Errorf("dumped config differs: %+v", back.Compiler)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestCompilerSettings(t *testing.T) {
	conf := CompilerConfig{
		HoverSuffix:         ":focus",
		StickyPrefix:        ".stuck ",
		Media:               MediaConfig{Tablet: "@media (max-width: 1000px)", Phone: "@media (max-width: 500px)"},
		Important:           true,
		ImportantProperties: map[string]bool{"color": false},
	}
	s := conf.Settings()
	if s.HoverSuffix != ":focus" || s.StickyPrefix != ".stuck " {
		t.Errorf("unexpected state conventions: %+v", s)
	}
	if s.AtRules["tablet"] != "@media (max-width: 1000px)" || s.AtRules["phone"] != "@media (max-width: 500px)" {
		t.Errorf("AtRules = %v", s.AtRules)
	}
	if s.Important.For("color") {
		t.Error("color must not be important")
	}
	if !s.Important.For("width") {
		t.Error("width must be important")
	}
}

func TestVariablesResolver(t *testing.T) {
	token := `$variable({"type":"color","value":{"name":"brand","settings":{}}})$`

	conf := VariablesConfig{Colors: map[string]string{"brand": "#123456"}}
	if got := conf.Resolver(zaptest.NewLogger(t)).Resolve(token); got != "#123456" {
		t.Errorf("Resolve() = %q", got)
	}
	conf.CSSVars = true
	if got := conf.Resolver(nil).Resolve(token); got != "var(--brand)" {
		t.Errorf("Resolve() with css vars = %q", got)
	}
}

func TestSafeFileName(t *testing.T) {
	if got := SafeFileName("a/b:c"); got != "abc" {
		t.Errorf("SafeFileName() = %q", got)
	}
	if got := SafeFileName("/"); got != "_unnamed_" {
		t.Errorf("SafeFileName() = %q", got)
	}
}

func TestLoggingPrepare(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: dest, Mode: "overwrite"},
	}

	log, err := conf.Prepare(true)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file content = %q", data)
	}
}
