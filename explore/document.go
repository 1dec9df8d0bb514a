package explore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
	"lukechampine.com/blake3"

	"twexp/config"
	"twexp/tree"
)

// Document is parse result as it is written out.
type Document struct {
	ID         uuid.UUID  `json:"id" yaml:"id"`
	Source     string     `json:"source" yaml:"source"`
	Digest     string     `json:"digest" yaml:"digest"`
	Generated  time.Time  `json:"generated" yaml:"generated"`
	Rules      int        `json:"rules" yaml:"rules"`
	Categories *tree.Tree `json:"categories" yaml:"categories"`

	Stats Stats `json:"-" yaml:"-"`
}

func newDocument(src string, data []byte, t *tree.Tree, stats Stats) (*Document, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate document id: %w", err)
	}
	digest := blake3.Sum256(data)

	return &Document{
		ID:         id,
		Source:     src,
		Digest:     hex.EncodeToString(digest[:]),
		Generated:  time.Now().UTC().Truncate(time.Second),
		Rules:      stats.Rules,
		Categories: t,
		Stats:      stats,
	}, nil
}

// Fields returns document summary for logging.
func (d *Document) Fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("id", d.ID),
		zap.String("digest", d.Digest),
		zap.Int("rules", d.Rules),
		zap.Int("entries", d.Categories.Count()),
		zap.Int("rejected", d.Stats.Rejected),
		zap.Int("duplicates", d.Stats.Duplicates),
	}
}

// encode writes v in requested format. Indent of 0 produces compact JSON,
// YAML always uses at least 2 spaces.
func encode(w io.Writer, v any, format config.OutputFmt, indent int) error {
	switch format {
	case config.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		if indent >= 2 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}
		return nil
	}
}
