package css

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Number is a single numeric CSS token split into value and unit.
type Number struct {
	Value float64
	Unit  string // "px", "%", "em"... empty for plain numbers
}

// String formats the number with minimal precision.
func (n Number) String() string {
	return FormatFloat(n.Value) + n.Unit
}

// ParseNumber parses v when it consists of exactly one number, dimension or
// percentage token.
func ParseNumber(v string) (Number, bool) {
	tokens := lex(v)
	if len(tokens) != 1 {
		return Number{}, false
	}
	t := tokens[0]
	switch t.TokenType {
	case css.NumberToken:
		f, err := strconv.ParseFloat(string(t.Data), 64)
		return Number{Value: f}, err == nil
	case css.PercentageToken:
		f, err := strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		return Number{Value: f, Unit: "%"}, err == nil
	case css.DimensionToken:
		num, unit := splitDimension(string(t.Data))
		f, err := strconv.ParseFloat(num, 64)
		return Number{Value: f, Unit: strings.ToLower(unit)}, err == nil
	default:
		return Number{}, false
	}
}

// IsZero reports whether v is a numeric zero with or without unit: "0",
// "0px", "0%", "-0.0em". Keywords and expressions are never zero.
func IsZero(v string) bool {
	n, ok := ParseNumber(v)
	return ok && n.Value == 0
}

// IsNumeric reports whether v is a single numeric token.
func IsNumeric(v string) bool {
	_, ok := ParseNumber(v)
	return ok
}

// FormatFloat formats f without trailing zeros.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// lex returns non-whitespace tokens of v.
func lex(v string) []css.Token {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(v)))
	var tokens []css.Token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens
		case css.WhitespaceToken:
			continue
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: append([]byte(nil), data...)})
	}
}

// splitDimension extracts numeric part and unit from dimension token.
func splitDimension(s string) (string, string) {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			end = i + 1
			continue
		}
		// exponent is part of the number only when followed by a digit
		if (r == 'e' || r == 'E') && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			end = i + 1
			continue
		}
		break
	}
	return s[:end], s[end:]
}
