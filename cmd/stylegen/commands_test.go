package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"stylegen/attr"
	"stylegen/defaults"
	"stylegen/modstyle"
	"stylegen/statements"
)

func TestWriteOutput(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.css")
	if err := writeOutput(fname, false, []byte("a{}")); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}
	if err := writeOutput(fname, false, []byte("b{}")); err == nil {
		t.Error("expected error for existing destination")
	}
	if err := writeOutput(fname, true, []byte("b{}")); err != nil {
		t.Fatalf("writeOutput() with overwrite error = %v", err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "b{}" {
		t.Errorf("content = %q", data)
	}
}

func TestReadPage(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "page.yml")
	if err := os.WriteFile(yml, []byte("modules:\n  - name: text\n    index: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	page, err := readPage(yml)
	if err != nil {
		t.Fatalf("readPage() error = %v", err)
	}
	if len(page.Modules) != 1 || page.Modules[0].Name != "text" {
		t.Errorf("unexpected page: %+v", page)
	}
	if _, err := readPage(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestCompilePage(t *testing.T) {
	log := zaptest.NewLogger(t)
	styler := modstyle.NewStyler(statements.New(statements.DefaultSettings(), nil, log), defaults.New(log), log)

	page := &modstyle.Page{}
	for i := range 8 {
		m := modstyle.Module{Name: "text", Index: i}
		m.Decoration.ZIndex = attr.Of("1")
		page.Modules = append(page.Modules, m)
	}

	res, err := compilePage(context.Background(), styler, page)
	if err != nil {
		t.Fatalf("compilePage() error = %v", err)
	}
	seq, err := styler.Page(page)
	if err != nil {
		t.Fatal(err)
	}
	if res.String() != seq.String() {
		t.Errorf("concurrent result differs:\n%s\n%s", res.String(), seq.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := compilePage(ctx, styler, page); err == nil {
		t.Error("expected error for cancelled context")
	}
}
