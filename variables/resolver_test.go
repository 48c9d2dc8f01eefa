package variables

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

const primary = `$variable({"type":"color","value":{"name":"gcid-primary","settings":{}}})$`

func TestResolveLiteral(t *testing.T) {
	r := New(map[string]string{"gcid-primary": "#2ea3f2"}, WithLogger(zaptest.NewLogger(t)))

	if got := r.Resolve(primary); got != "#2ea3f2" {
		t.Fatalf("expected literal color, got %q", got)
	}
	if got := r.Resolve("1px solid " + primary); got != "1px solid #2ea3f2" {
		t.Fatalf("expected embedded token replaced, got %q", got)
	}
}

func TestResolveCSSVariable(t *testing.T) {
	r := New(nil, WithCSSVariables(true))
	if got := r.Resolve(primary); got != "var(--gcid-primary)" {
		t.Fatalf("expected css variable, got %q", got)
	}
}

func TestResolveOpacity(t *testing.T) {
	r := New(map[string]string{"gcid-primary": "#f00"})
	tok := `$variable({"type":"color","value":{"name":"gcid-primary","settings":{"opacity":50}}})$`
	if got := r.Resolve(tok); got != "rgba(255,0,0,0.5)" {
		t.Fatalf("expected rgba, got %q", got)
	}
}

func TestResolveUnresolvedKeepsToken(t *testing.T) {
	r := New(map[string]string{}, WithLogger(zaptest.NewLogger(t)))
	if got := r.Resolve(primary); got != primary {
		t.Fatalf("expected token kept, got %q", got)
	}
	broken := `$variable({not json})$`
	if got := r.Resolve(broken); got != broken {
		t.Fatalf("expected malformed token kept, got %q", got)
	}
	var nilResolver *Resolver
	if got := nilResolver.Resolve(primary); got != primary {
		t.Fatalf("expected nil resolver to pass through, got %q", got)
	}
}
