package dividers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 20"><path d="M0 20 L100 0 V20 Z"/></svg>`

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if reg.Len() < 10 {
		t.Fatalf("expected built-in set, got %d styles", reg.Len())
	}

	names := reg.Names()
	idx := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}
	// natural order: arrow, arrow2, arrow3 ... wave, wave2, waves
	if !(idx("arrow") < idx("arrow2") && idx("arrow2") < idx("arrow3")) {
		t.Errorf("names not in natural order: %v", names)
	}

	st, err := reg.Style("wave")
	if err != nil {
		t.Fatalf("Style(wave) error = %v", err)
	}
	if !st.Repeatable {
		t.Errorf("wave must be repeatable")
	}
	if st, _ := reg.Style("arrow"); st.Repeatable {
		t.Errorf("arrow must not be repeatable")
	}
}

func TestUnknownStyle(t *testing.T) {
	reg, err := Default(zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	_, err = reg.Style("no-such-thing")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}

	var nilReg *Registry
	if _, err := nilReg.Style("wave"); !errors.Is(err, ErrRegistry) {
		t.Fatalf("expected ErrRegistry from nil registry, got %v", err)
	}
}

func TestLoadReportsAllBrokenFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json":    {Data: []byte(`{"name":"good","svg":{"bottom":"` + strings.ReplaceAll(testSVG, `"`, `\"`) + `"}}`)},
		"broken.json":  {Data: []byte(`{"name":`)},
		"nosvg.json":   {Data: []byte(`{"name":"nosvg"}`)},
		"badside.json": {Data: []byte(`{"name":"badside","svg":{"left":"<svg/>"}}`)},
	}
	_, err := Load(fsys, zaptest.NewLogger(t))
	if !errors.Is(err, ErrRegistry) {
		t.Fatalf("expected ErrRegistry, got %v", err)
	}
	for _, name := range []string{"broken.json", "nosvg.json", "badside.json"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not mention %s: %v", name, err)
		}
	}
	if strings.Contains(err.Error(), "good.json") {
		t.Errorf("error mentions valid file: %v", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, nil); !errors.Is(err, ErrRegistry) {
		t.Fatalf("expected ErrRegistry, got %v", err)
	}
}

func TestLoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	def := `{"repeatable":true,"svg":{"top":"` + strings.ReplaceAll(testSVG, `"`, `\"`) + `"}}`
	if err := os.WriteFile(filepath.Join(dir, "arrow.json"), []byte(def), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "custom.json"), []byte(def), 0644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadDir(dir, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	st, err := reg.Style("arrow")
	if err != nil {
		t.Fatal(err)
	}
	if !st.Repeatable {
		t.Errorf("arrow was not replaced by directory definition")
	}
	if _, err := reg.Style("custom"); err != nil {
		t.Errorf("custom style missing: %v", err)
	}
	if _, err := reg.Style("wave"); err != nil {
		t.Errorf("built-in style lost: %v", err)
	}

	if _, err := LoadDir(filepath.Join(dir, "missing"), nil); !errors.Is(err, ErrRegistry) {
		t.Errorf("expected ErrRegistry for missing directory, got %v", err)
	}
}
