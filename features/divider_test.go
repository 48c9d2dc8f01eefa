package features

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"stylegen/attr"
	"stylegen/decl"
	"stylegen/dividers"
)

func registry(t *testing.T) *dividers.Registry {
	t.Helper()
	reg, err := dividers.Default(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unable to load dividers: %v", err)
	}
	return reg
}

func TestDividerExplicitNone(t *testing.T) {
	fn := Divider(DividerParams{Registry: registry(t), Placement: dividers.Top})

	v := DividerValue{Top: DividerSide{Style: "none", Height: "100px"}}
	got := render(t, fn, base(v))
	if got != "display: none; z-index: 1;" {
		t.Errorf("got %q", got)
	}

	fn = Divider(DividerParams{Registry: registry(t), Placement: dividers.Top, Fullwidth: true})
	if got := render(t, fn, base(v)); got != "display: none; z-index: 10;" {
		t.Errorf("fullwidth: got %q", got)
	}
}

func TestDividerInheritedStyle(t *testing.T) {
	tree := attr.Tree[DividerValue]{}.
		With(attr.Desktop, attr.Value, DividerValue{Top: DividerSide{Style: "wave"}}).
		With(attr.Tablet, attr.Value, DividerValue{Top: DividerSide{Height: "50px"}})
	v, _ := tree.Resolve(attr.Tablet, attr.Value, attr.GetAndInheritAll)

	fn := Divider(DividerParams{
		Registry:          registry(t),
		Placement:         dividers.Top,
		Background:        "#eeeeee",
		SiblingBackground: "#FFFFFF",
	})
	args := decl.Args[DividerValue]{Value: v, Tree: tree, Breakpoint: attr.Tablet, State: attr.Value}
	got := render(t, fn, args)

	if strings.Contains(got, "display:") {
		t.Errorf("inherited style must not touch display: %q", got)
	}
	for _, want := range []string{
		`background-image: url("data:image/svg+xml,`,
		"fill='%23FFFFFF'",
		"background-size: 100% 50px;",
		"background-position: center top;",
		"background-repeat: repeat-x;",
		"height: 50px;",
		"z-index: 1;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestDividerShownAfterAncestorNone(t *testing.T) {
	tree := attr.Tree[DividerValue]{}.
		With(attr.Desktop, attr.Value, DividerValue{Top: DividerSide{Style: "none"}}).
		With(attr.Tablet, attr.Value, DividerValue{Top: DividerSide{Style: "wave"}}).
		With(attr.Phone, attr.Hover, DividerValue{Top: DividerSide{Style: "curve"}})
	fn := Divider(DividerParams{Registry: registry(t), Placement: dividers.Top})

	for _, slot := range []struct {
		bp attr.Breakpoint
		st attr.State
	}{
		{attr.Tablet, attr.Value},
		{attr.Phone, attr.Hover},
	} {
		v, _ := tree.Resolve(slot.bp, slot.st, attr.GetAndInheritAll)
		args := decl.Args[DividerValue]{Value: v, Tree: tree, Breakpoint: slot.bp, State: slot.st}
		got := render(t, fn, args)
		if !strings.HasPrefix(got, `display: block; background-image: url("data:image/svg+xml,`) {
			t.Errorf("%s/%s: got %q", slot.bp, slot.st, got)
		}
	}

	v, _ := tree.Resolve(attr.Desktop, attr.Value, attr.GetAndInheritAll)
	args := decl.Args[DividerValue]{Value: v, Tree: tree, Breakpoint: attr.Desktop, State: attr.Value}
	if got := render(t, fn, args); got != "display: none; z-index: 1;" {
		t.Errorf("desktop: got %q", got)
	}
}

func TestDividerDefaultedNonePrintsNothing(t *testing.T) {
	def := DividerValue{Top: DividerSide{Style: "none", Height: "100px", Repeat: "1x", Arrangement: "below"}}
	raw := attr.Tree[DividerValue]{}.With(attr.Desktop, attr.Value, DividerValue{Top: DividerSide{Height: "40px"}})
	v, _ := raw.WithDefault(def).Resolve(attr.Desktop, attr.Value, attr.GetAndInherit)

	fn := Divider(DividerParams{Registry: registry(t), Placement: dividers.Top})
	args := decl.Args[DividerValue]{Value: v, Tree: raw, Breakpoint: attr.Desktop, State: attr.Value}
	if got := render(t, fn, args); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestDividerColorFallback(t *testing.T) {
	tests := []struct {
		name string
		side DividerSide
		p    DividerParams
		want string
	}{
		{"explicit", DividerSide{Color: "red"}, DividerParams{SiblingBackground: "#fff"}, "red"},
		{"sibling", DividerSide{}, DividerParams{Background: "#000", SiblingBackground: "#fff"}, "#fff"},
		{"same background", DividerSide{}, DividerParams{Background: "#FFF", SiblingBackground: "#fff"}, "#000000"},
		{"nothing", DividerSide{}, DividerParams{}, "#000000"},
	}
	for _, tt := range tests {
		if got := dividerColor(tt.side, tt.p); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDividerSize(t *testing.T) {
	tests := []struct {
		repeatable bool
		repeat     string
		want       string
	}{
		{false, "3x", "100% 100px"},
		{true, "", "100% 100px"},
		{true, "2x", "50% 100px"},
		{true, "3x", "33.3333% 100px"},
		{true, "wide", "auto 100px"},
		{true, "0x", "auto 100px"},
	}
	for _, tt := range tests {
		if got := dividerSize(tt.repeatable, tt.repeat, "100px"); got != tt.want {
			t.Errorf("dividerSize(%v, %q) = %q, want %q", tt.repeatable, tt.repeat, got, tt.want)
		}
	}
}

func TestDividerAboveAndFlip(t *testing.T) {
	fn := Divider(DividerParams{Registry: registry(t), Placement: dividers.Bottom})
	got := render(t, fn, base(DividerValue{Bottom: DividerSide{Style: "arrow", Arrangement: "above", Flip: "horizontal,vertical"}}))
	for _, want := range []string{"background-repeat: no-repeat;", "transform: scale(-1, -1);", "z-index: 10;", "background-position: center bottom;"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestDividerUnknownStyleAndMissingRegistry(t *testing.T) {
	v := DividerValue{Top: DividerSide{Style: "spirals"}}

	fn := Divider(DividerParams{Registry: registry(t), Placement: dividers.Top})
	if got := render(t, fn, base(v)); got != "" {
		t.Errorf("unknown style printed %q", got)
	}

	fn = Divider(DividerParams{Placement: dividers.Top})
	if _, err := fn(base(v)); !errors.Is(err, dividers.ErrRegistry) {
		t.Errorf("expected ErrRegistry, got %v", err)
	}
}
