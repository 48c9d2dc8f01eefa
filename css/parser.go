package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads CSS text into a Stylesheet. It is used to inspect compiled
// output, so it keeps declaration order, duplicates and importance.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	p.parseItems(parser, sheet, "")
	return sheet
}

// ParseDeclarations parses an inline declaration list ("a: 1; b: 2").
func (p *Parser) ParseDeclarations(data []byte) []Declaration {
	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), true)
	var decls []Declaration
	for {
		gt, _, name := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return decls
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if d, ok := declaration(string(name), parser.Values()); ok {
				decls = append(decls, d)
			}
		}
	}
}

// parseItems consumes grammar until the end of input or the end of the
// enclosing at-rule block.
func (p *Parser) parseItems(parser *css.Parser, sheet *Stylesheet, query string) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
				sheet.Warnings = append(sheet.Warnings, err.Error())
			}
			return

		case css.EndAtRuleGrammar:
			return

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if query != "" || (atRule != "@media" && atRule != "@supports" && atRule != "@container") {
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				skipBlock(parser)
				continue
			}
			prelude := joinTokens(parser.Values())
			p.parseItems(parser, sheet, atRule+" "+prelude)

		case css.AtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(data, parser.Values())
			decls := p.parseRuleDeclarations(parser)
			for _, sel := range selectors {
				sheet.AddRule(query, Rule{Selector: sel, Declarations: append([]Declaration(nil), decls...)})
			}

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			sheet.Warnings = append(sheet.Warnings, "declaration outside of rule: "+string(data))
		}
	}
}

// parseRuleDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseRuleDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if d, ok := declaration(string(data), parser.Values()); ok {
				decls = append(decls, d)
			}
		}
	}
}

func declaration(name string, values []css.Token) (Declaration, bool) {
	d := Declaration{Property: strings.TrimSpace(name)}

	// strip trailing "!important"
	end := len(values)
	for end > 0 && values[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end >= 2 && values[end-1].TokenType == css.IdentToken && strings.EqualFold(string(values[end-1].Data), "important") {
		bang := end - 2
		for bang > 0 && values[bang].TokenType == css.WhitespaceToken {
			bang--
		}
		if values[bang].TokenType == css.DelimToken && string(values[bang].Data) == "!" {
			d.Important = true
			end = bang
		}
	}

	d.Value = joinTokens(values[:end])
	if d.Property == "" || d.Value == "" {
		return d, false
	}
	return d, true
}

// joinTokens rebuilds source text, collapsing whitespace runs to one space.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// splitSelectors extracts selector strings from token data.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// skipBlock skips tokens until the matching end of an @-rule block.
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
