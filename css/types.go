// Package css extracts class rules from stylesheets.
//
// Two extractors are available. RegexExtractor recognizes only rules written
// on a single line in the form ".selector{body}", which is what minified
// Tailwind output looks like. Parser runs a full CSS grammar parser and
// understands multi-line rules, selector groups and conditional at-rules.
package css

// Rule is a single class rule found in a stylesheet.
type Rule struct {
	Selector string // selector without leading dot, CSS escapes decoded
	Body     string // declarations between braces, trimmed
	Line     int    // 1-based line of the rule start, 0 when unknown
}

// Extractor turns stylesheet text into class rules.
type Extractor interface {
	Extract(data []byte) []Rule
}
