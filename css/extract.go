package css

import (
	"bytes"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Single line rule, nested braces are not supported.
var ruleRe = regexp.MustCompile(`\.([^{}\n]+)\{([^{}\n]+)\}`)

// RegexExtractor finds ".selector{body}" rules written on a single line.
type RegexExtractor struct {
	log *zap.Logger
}

// NewRegexExtractor creates a new single line rule extractor.
func NewRegexExtractor(log *zap.Logger) *RegexExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegexExtractor{log: log.Named("css-regex")}
}

// Extract returns rules in the order they appear in data. Rules without
// selector or declarations are skipped.
func (e *RegexExtractor) Extract(data []byte) []Rule {
	matches := ruleRe.FindAllSubmatchIndex(data, -1)
	rules := make([]Rule, 0, len(matches))

	line, pos := 1, 0
	for _, m := range matches {
		line += bytes.Count(data[pos:m[0]], []byte{'\n'})
		pos = m[0]

		sel := decodeSelector(string(data[m[2]:m[3]]))
		body := strings.TrimSpace(string(data[m[4]:m[5]]))
		if sel == "" || body == "" {
			e.log.Debug("Skipping rule", zap.Int("line", line), zap.ByteString("rule", data[m[0]:m[1]]))
			continue
		}
		rules = append(rules, Rule{Selector: sel, Body: body, Line: line})
	}

	e.log.Debug("Rules extracted", zap.Int("matched", len(matches)), zap.Int("rules", len(rules)))
	if len(matches) == 0 && bytes.IndexByte(data, '{') >= 0 {
		e.log.Warn("No single line rules found, for multi-line stylesheets use tokenizer extractor",
			zap.String("hint", "--extractor tokenizer"), zap.Int("size", len(data)))
	}
	return rules
}
