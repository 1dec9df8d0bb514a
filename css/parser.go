package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser extracts class rules using full CSS grammar.
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

// Extract parses stylesheet and returns class rules in document order. Rules
// inside @media, @supports and @layer blocks are included, other at-rule
// blocks (@keyframes, @font-face, ...) are skipped. Every class selector of a
// selector group produces its own rule with the same body.
func (p *Parser) Extract(data []byte) []Rule {
	rules := make([]Rule, 0)

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			p.log.Debug("Rules extracted", zap.Int("rules", len(rules)))
			return rules

		case css.BeginAtRuleGrammar:
			switch atRule := string(data); atRule {
			case "@media", "@supports", "@layer":
				// nested rulesets are reported by the grammar parser as usual
			default:
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selectors := parseSelectors(data, parser.Values())
			body := ""
			if gt == css.BeginRulesetGrammar {
				body = p.parseDeclarations(parser)
			}
			if body == "" {
				p.log.Debug("Skipping rule without declarations", zap.Strings("selectors", selectors))
				continue
			}
			for _, sel := range selectors {
				if !isClassSelector(sel) {
					p.log.Debug("Skipping non class selector", zap.String("selector", sel))
					continue
				}
				if name := decodeSelector(sel[1:]); name != "" {
					rules = append(rules, Rule{Selector: name, Body: body})
				}
			}
		}
	}
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
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

// parseDeclarations collects declarations until the end of ruleset and
// returns them as "property:value" joined by semicolons.
func (p *Parser) parseDeclarations(parser *css.Parser) string {
	var decls []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return strings.Join(decls, ";")

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if value := joinValue(parser.Values()); value != "" {
				decls = append(decls, string(data)+":"+value)
			}

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nested rules (CSS nesting) are not supported
			p.skipAtRuleBlock(parser)
		}
	}
}

// joinValue rebuilds property value collapsing whitespace.
func joinValue(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// skipAtRuleBlock skips tokens until the matching end of a block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
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
