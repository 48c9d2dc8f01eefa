package statements

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"stylegen/attr"
	"stylegen/decl"
	"stylegen/features"
)

func newCompiler(t *testing.T) *Compiler {
	return New(DefaultSettings(), nil, zaptest.NewLogger(t))
}

func spacingTree() attr.Tree[features.SpacingValue] {
	return attr.Tree[features.SpacingValue]{}.
		With(attr.Desktop, attr.Value, features.SpacingValue{Margin: features.Sides{Top: "10px"}}).
		With(attr.Desktop, attr.Hover, features.SpacingValue{Padding: features.Sides{Right: "1px"}}).
		With(attr.Tablet, attr.Value, features.SpacingValue{Margin: features.Sides{Top: "5px"}})
}

func TestCompileBreakpointsAndStates(t *testing.T) {
	c := newCompiler(t)
	res, err := Compile(c, NewOptions("spacing", ".m", spacingTree(), features.Spacing))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := ".m{margin-top: 10px;}.m:hover{padding-right: 1px;}" +
		"@media only screen and (max-width: 980px){.m{margin-top: 5px;}}"
	if got := res.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	again, err := Compile(c, NewOptions("spacing", ".m", spacingTree(), features.Spacing))
	if err != nil {
		t.Fatal(err)
	}
	if again.String() != res.String() {
		t.Errorf("compilation is not repeatable")
	}
}

func TestCompileStyleWrap(t *testing.T) {
	c := newCompiler(t)
	res, err := Compile(c, NewOptions("zindex", ".m", attr.Of("5"), features.ZIndex))
	if err != nil {
		t.Fatal(err)
	}
	out, err := res.Render(FormatCSS, true)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<style>.m{z-index: 5;}</style>" {
		t.Errorf("got %q", out)
	}

	empty, err := Compile(c, NewOptions("zindex", ".m", attr.Tree[string]{}, features.ZIndex))
	if err != nil {
		t.Fatal(err)
	}
	if out := empty.Style(); out != "" {
		t.Errorf("empty result wrapped: %q", out)
	}
}

func TestCompileExplicitSelectors(t *testing.T) {
	c := newCompiler(t)
	opts := NewOptions("zindex", "", attr.Of("3"), features.ZIndex)
	opts.Selectors = map[attr.Breakpoint]map[attr.State]string{
		attr.Phone:   {attr.Value: ".y"},
		attr.Desktop: {attr.Value: ".x", attr.Hover: ""},
	}
	res, err := Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := ".x{z-index: 3;}@media only screen and (max-width: 767px){.y{z-index: 3;}}"
	if got := res.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCompileSelectorFuncAndTemplate(t *testing.T) {
	c := newCompiler(t)
	tree := attr.Of("1").With(attr.Tablet, attr.Hover, "2")

	opts := NewOptions("zindex", ".m", tree, features.ZIndex)
	opts.SelectorFunc = func(bp attr.Breakpoint, st attr.State) string {
		return ".f-" + bp.String() + "-" + string(st)
	}
	res, err := Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := ".f-desktop-value{z-index: 1;}@media only screen and (max-width: 980px){.f-tablet-hover{z-index: 2;}}"
	if got := res.String(); got != want {
		t.Errorf("func: got %s", got)
	}

	opts = NewOptions("zindex", ".m", tree, features.ZIndex)
	opts.SelectorTemplate = `{{ .Default }}{{ if eq .Breakpoint "tablet" }} .inner{{ end }}{{ if .Hover }} {{ upper "x" }}{{ end }}`
	res, err = Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want = ".m{z-index: 1;}@media only screen and (max-width: 980px){.m:hover .inner X{z-index: 2;}}"
	if got := res.String(); got != want {
		t.Errorf("template: got %s", got)
	}

	opts.SelectorTemplate = "{{ .Missing"
	if _, err := Compile(c, opts); err == nil {
		t.Error("expected template parse error")
	}
}

func TestCompilePropertySelectors(t *testing.T) {
	c := newCompiler(t)
	tree := attr.Of(features.BorderValue{Styles: features.BorderStyles{
		All: features.BorderSide{Width: "2px", Color: "red"},
		Top: features.BorderSide{Width: "3px", Color: "blue"},
	}})

	opts := NewOptions("border", ".m", tree, features.Border)
	opts.PropertySelectors = attr.Of(map[string]string{"border-top": ".child"})
	res, err := Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := ".m{border-width: 2px; border-color: red; border-style: solid;}" +
		".child{border-top-width: 3px; border-top-color: blue;}"
	if got := res.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	// longhand keys win over shorthands covering them
	opts.PropertySelectors = attr.Of(map[string]string{"border": ".a", "border-top-color": ".b"})
	res, err = Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want = ".a{border-width: 2px; border-color: red; border-style: solid; border-top-width: 3px;}" +
		".b{border-top-color: blue;}"
	if got := res.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func borderStatesTree() attr.Tree[features.BorderValue] {
	side := func(w, c string) features.BorderSide { return features.BorderSide{Width: w, Color: c} }
	return attr.Of(features.BorderValue{Styles: features.BorderStyles{All: side("2px", "red"), Top: side("3px", "blue")}}).
		With(attr.Desktop, "state10", features.BorderValue{Styles: features.BorderStyles{Left: side("1px", "")}}).
		With(attr.Desktop, "state2", features.BorderValue{Styles: features.BorderStyles{All: side("", "green")}}).
		With(attr.Desktop, attr.Hover, features.BorderValue{Styles: features.BorderStyles{Top: side("", "black")}}).
		With(attr.Tablet, attr.Sticky, features.BorderValue{Styles: features.BorderStyles{All: side("4px", "")}}).
		With(attr.Phone, "state2", features.BorderValue{Styles: features.BorderStyles{Bottom: side("6px", "gray")}})
}

func TestCompileIdempotent(t *testing.T) {
	c := newCompiler(t)
	compile := func() *Result {
		t.Helper()
		opts := NewOptions("border", ".m", borderStatesTree(), features.Border)
		opts.PropertySelectors = attr.Of(map[string]string{
			"border":           ".a",
			"border-top":       ".b",
			"border-top-color": ".c",
			"border-color":     ".d",
		})
		res, err := Compile(c, opts)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	first, second := compile(), compile()
	for _, format := range []Format{FormatCSS, FormatMap} {
		a, err := first.Render(format, false)
		if err != nil {
			t.Fatal(err)
		}
		b, err := second.Render(format, false)
		if err != nil {
			t.Fatal(err)
		}
		if a == "" {
			t.Fatalf("%s: empty output", format)
		}
		if a != b {
			t.Errorf("%s: output differs between runs\nfirst  %s\nsecond %s", format, a, b)
		}
	}

	// custom states keep natural order after the known ones
	var states []attr.State
	for _, item := range first.Items() {
		if item.Breakpoint == attr.Desktop && !slices.Contains(states, item.State) {
			states = append(states, item.State)
		}
	}
	want := []attr.State{attr.Value, attr.Hover, "state2", "state10"}
	if !slices.Equal(states, want) {
		t.Errorf("desktop states %v, want %v", states, want)
	}
}

func TestCompileInheritance(t *testing.T) {
	c := newCompiler(t)
	desktop := features.SpacingValue{Margin: features.Sides{Top: "10px"}, Padding: features.Sides{Top: "1px"}}
	tree := attr.Of(desktop)

	var seen []features.SpacingValue
	declare := func(args decl.Args[features.SpacingValue]) (*decl.Declarations, error) {
		seen = append(seen, args.Value)
		return features.Spacing(args)
	}
	opts := NewOptions("spacing", ".m", tree, declare)
	opts.Selectors = map[attr.Breakpoint]map[attr.State]string{
		attr.Desktop: {attr.Value: ".m"},
		attr.Tablet:  {attr.Hover: ".m:hover"},
		attr.Phone:   {attr.Sticky: ".s .m"},
	}
	if _, err := Compile(c, opts); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 {
		t.Fatalf("declaration function called %d times", len(seen))
	}
	for i, v := range seen {
		if v != desktop {
			t.Errorf("call %d got %+v, want desktop value", i, v)
		}
	}
}

func TestCompileImportantAndAtRules(t *testing.T) {
	c := newCompiler(t)
	tree := attr.Of("1").With(attr.Phone, attr.Value, "2")

	opts := NewOptions("zindex", ".m", tree, features.ZIndex)
	imp := decl.ImportantFor(map[string]bool{"z-index": true})
	opts.Important = &imp
	opts.AtRules = map[attr.Breakpoint]string{attr.Phone: "@media (max-width: 400px)"}
	res, err := Compile(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := ".m{z-index: 1 !important;}@media (max-width: 400px){.m{z-index: 2 !important;}}"
	if got := res.String(); got != want {
		t.Errorf("got %s", got)
	}
}

var errBroken = errors.New("broken collaborator")

func TestCompileErrors(t *testing.T) {
	c := newCompiler(t)

	_, err := Compile(c, Options[string]{Name: "zindex", Tree: attr.Of("1")})
	if !errors.Is(err, ErrNoDeclarationFunc) {
		t.Errorf("expected ErrNoDeclarationFunc, got %v", err)
	}

	failing := func(decl.Args[string]) (*decl.Declarations, error) { return nil, errBroken }
	_, err = Compile(c, NewOptions("zindex", ".m", attr.Of("1"), failing))
	if !errors.Is(err, errBroken) {
		t.Errorf("expected collaborator error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "zindex desktop/value") {
		t.Errorf("error lacks context: %v", err)
	}
}

func TestRenderMap(t *testing.T) {
	c := newCompiler(t)
	res, err := Compile(c, NewOptions("spacing", ".m", spacingTree(), features.Spacing))
	if err != nil {
		t.Fatal(err)
	}
	out, err := res.Render(FormatMap, true)
	if err != nil {
		t.Fatal(err)
	}
	var items []Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	last := items[2]
	if last.Selector != ".m" || last.AtRules != "@media only screen and (max-width: 980px)" {
		t.Errorf("unexpected item %+v", last)
	}
	if len(last.Declarations) != 1 || last.Declarations[0] != (decl.Entry{Property: "margin-top", Value: "5px"}) {
		t.Errorf("unexpected declarations %+v", last.Declarations)
	}
}

func TestStateSelector(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		st   attr.State
		want string
	}{
		{attr.Value, ".a, .b"},
		{attr.Hover, ".a:hover, .b:hover"},
		{attr.Sticky, ".et_pb_sticky .a, .et_pb_sticky .b"},
		{attr.State("focus"), ".a:focus, .b:focus"},
	}
	for _, tt := range tests {
		if got := s.StateSelector(".a, .b", tt.st); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.st, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("map"); err != nil || f != FormatMap {
		t.Errorf("map: %v %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatCSS {
		t.Errorf("default: %v %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error")
	}
}
