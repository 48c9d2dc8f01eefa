package decl

import (
	"reflect"
	"strings"
	"testing"
)

type upper struct{}

func (upper) Resolve(v string) string {
	return strings.ToUpper(v)
}

func TestDeclarationsString(t *testing.T) {
	d := New(ImportantAll(false), nil).
		Add("margin-top", "10px").
		Add("margin-left", "0px").
		Add("padding-right", "5px")

	want := "margin-top: 10px; margin-left: 0px; padding-right: 5px;"
	if got := d.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDeclarationsDropEmpty(t *testing.T) {
	d := New(ImportantAll(true), nil).Add("color", "").Add("", "red")
	if !d.IsEmpty() {
		t.Fatalf("expected no declarations, got %q", d.String())
	}
	if d.String() != "" {
		t.Fatal("expected empty string")
	}
}

func TestDeclarationsKeepDuplicates(t *testing.T) {
	d := New(ImportantAll(false), nil).Add("border-color", "red").Add("border-color", "blue")
	if d.Len() != 2 {
		t.Fatalf("expected duplicates kept, got %d", d.Len())
	}
	if got := d.Map()["border-color"]; got != "blue" {
		t.Fatalf("expected last value to win in map, got %q", got)
	}
}

func TestImportantPolicies(t *testing.T) {
	d := New(ImportantFor(map[string]bool{"color": true}), nil).
		Add("color", "red").
		Add("width", "1px").
		AddImportant("font-family", "ETmodules").
		AddWith("height", "1px", true)

	want := "color: red !important; width: 1px; font-family: ETmodules !important; height: 1px !important;"
	if got := d.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	global := ImportantAll(true).With("width", false)
	if global.For("width") || !global.For("color") {
		t.Fatalf("unexpected policy %+v", global)
	}
}

func TestDeclarationsResolver(t *testing.T) {
	d := New(ImportantAll(false), upper{}).Add("color", "red")
	if got := d.String(); got != "color: RED;" {
		t.Fatalf("expected resolved value, got %q", got)
	}
}

func TestDeclarationsEntriesAndSplit(t *testing.T) {
	d := New(ImportantAll(false), nil).
		Add("border-width", "1px").
		AddImportant("border-top-color", "red").
		Add("border-style", "solid")

	want := []Entry{
		{"border-width", "1px"},
		{"border-top-color", "red !important"},
		{"border-style", "solid"},
	}
	if got := d.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	keys, parts := d.Split(func(item Declaration) string {
		if strings.HasPrefix(item.Property, "border-top") {
			return "top"
		}
		return ""
	})
	if !reflect.DeepEqual(keys, []string{"", "top"}) {
		t.Fatalf("unexpected keys %v", keys)
	}
	if got := parts[""].String(); got != "border-width: 1px; border-style: solid;" {
		t.Fatalf("unexpected primary part %q", got)
	}
	if got := parts["top"].String(); got != "border-top-color: red !important;" {
		t.Fatalf("unexpected top part %q", got)
	}
}
