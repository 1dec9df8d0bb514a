// Package explore runs stylesheet through rule extraction and class
// classification and builds category tree out of results.
package explore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"twexp/config"
	"twexp/css"
	"twexp/tailwind"
	"twexp/tree"
)

// Stats describes what happened during a single parse.
type Stats struct {
	Rules        int // rules extracted from stylesheet
	Assigned     int // entries added to the tree before deduplication
	Unclassified int // rules not matching any category
	Rejected     int // assignments refused by tree schema
	Invalid      int // rules with malformed base class names
	Duplicates   int // entries removed by deduplication
}

// Parser builds category trees from stylesheets.
type Parser struct {
	log        *zap.Logger
	extractor  css.Extractor
	classifier *tailwind.Classifier
}

// NewParser creates parser using requested extractor.
func NewParser(mode config.ExtractorMode, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}

	var extractor css.Extractor
	switch mode {
	case config.ExtractorModeTokenizer:
		extractor = css.NewParser(log)
	default:
		extractor = css.NewRegexExtractor(log)
	}

	return &Parser{
		log:        log.Named("explore"),
		extractor:  extractor,
		classifier: tailwind.NewClassifier(log),
	}
}

// ParseCategories extracts rules from stylesheet text, classifies them and
// returns deduplicated and validated tree. Failed assignments are logged and
// skipped, validation failure is returned as *tree.ValidationError.
func (p *Parser) ParseCategories(ctx context.Context, data []byte) (*tree.Tree, Stats, error) {
	var stats Stats

	rules := p.extractor.Extract(data)
	stats.Rules = len(rules)

	t := tree.New()
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		class := p.classifier.Classify(rule.Selector, rule.Body)
		if !class.Valid {
			stats.Invalid++
		}
		if len(class.Targets) == 0 {
			stats.Unclassified++
			p.log.Debug("Class does not belong to any category", zap.String("class", class.Entry.Name))
			continue
		}

		for _, target := range class.Targets {
			if !target.Dynamic() {
				t.Assign(target.Leaf, class.Entry)
				stats.Assigned++
				continue
			}
			if err := t.AssignPath(target.Path, class.Entry); err != nil {
				stats.Rejected++
				p.log.Warn("Failed to assign class", zap.String("class", class.Entry.Name), zap.Int("line", rule.Line), zap.Error(err))
				continue
			}
			stats.Assigned++
		}
	}

	stats.Duplicates = t.Deduplicate()

	if err := t.Validate(); err != nil {
		logProblems(p.log, err)
		return nil, stats, err
	}

	p.log.Debug("Categories parsed",
		zap.Int("rules", stats.Rules),
		zap.Int("assigned", stats.Assigned),
		zap.Int("unclassified", stats.Unclassified),
		zap.Int("rejected", stats.Rejected),
		zap.Int("invalid", stats.Invalid),
		zap.Int("duplicates", stats.Duplicates))
	return t, stats, nil
}

// logProblems lists every malformed entry before validation failure is
// returned.
func logProblems(log *zap.Logger, err error) {
	var verr *tree.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, problem := range verr.Problems() {
		log.Error("Invalid category entry", zap.Error(problem))
	}
}

// ParseFile reads stylesheet and builds document out of it. Any failure is
// reported as "failed to parse tailwind categories: <cause>".
func (p *Parser) ParseFile(ctx context.Context, path string) (*Document, error) {
	doc, err := p.parseFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tailwind categories: %w", err)
	}
	return doc, nil
}

func (p *Parser) parseFile(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := checkText(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !utf8.Valid(data) {
		p.log.Warn("Stylesheet is not valid UTF-8 text", zap.String("file", path))
	}

	t, stats, err := p.ParseCategories(ctx, data)
	if err != nil {
		return nil, err
	}
	return newDocument(path, data, t, stats)
}

// ErrBinaryContent is returned for sources recognized as binary files.
var ErrBinaryContent = errors.New("binary content")

func checkText(data []byte) error {
	kind, _ := filetype.Match(data)
	if kind != filetype.Unknown {
		return fmt.Errorf("%w (%s), stylesheet expected", ErrBinaryContent, kind.MIME.Value)
	}
	return nil
}
