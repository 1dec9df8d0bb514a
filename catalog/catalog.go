// Package catalog provides hand-picked set of Tailwind classes organized by
// category with hints on how to preview them.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogData []byte

// PreviewType selects how class is demonstrated.
type PreviewType string

const (
	PreviewGrid   PreviewType = "grid"
	PreviewFlex   PreviewType = "flex"
	PreviewText   PreviewType = "text"
	PreviewSingle PreviewType = "single"
)

func (p PreviewType) IsValid() bool {
	switch p {
	case PreviewGrid, PreviewFlex, PreviewText, PreviewSingle:
		return true
	}
	return false
}

type Preview struct {
	Type  PreviewType `yaml:"type"`
	Items int         `yaml:"items,omitempty"`
	// Template is child markup for grid and flex previews, "{n}" is
	// replaced with item number. For text and single previews it is the
	// content to display.
	Template string `yaml:"template,omitempty"`
}

// Class is a catalog entry. Name may hold several space separated classes
// which are demonstrated together.
type Class struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Example     string   `yaml:"example"`
	Preview     *Preview `yaml:"preview,omitempty"`
}

type SubCategory struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Classes     []Class `yaml:"classes"`
}

type Category struct {
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description"`
	SubCategories []SubCategory `yaml:"subcategories"`
}

// Catalog is ordered list of categories.
type Catalog struct {
	Categories []Category
}

// Item is class together with its location in the catalog.
type Item struct {
	Category    string
	SubCategory string
	Class       Class
}

// Load returns catalog embedded into the program.
func Load() (*Catalog, error) {
	return Decode(bytes.NewReader(catalogData))
}

// Decode reads catalog from YAML. Unknown fields are rejected and all
// problems found are reported together.
func Decode(r io.Reader) (*Catalog, error) {
	var categories []Category

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&categories); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{Categories: categories}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func (c *Catalog) validate() (err error) {
	if len(c.Categories) == 0 {
		return errors.New("no categories")
	}
	for i, cat := range c.Categories {
		if cat.Name == "" {
			err = multierr.Append(err, fmt.Errorf("category %d has no name", i))
		}
		for j, sub := range cat.SubCategories {
			if sub.Name == "" {
				err = multierr.Append(err, fmt.Errorf("%s: subcategory %d has no name", cat.Name, j))
			}
			for k, cls := range sub.Classes {
				loc := fmt.Sprintf("%s/%s", cat.Name, sub.Name)
				if cls.Name == "" {
					err = multierr.Append(err, fmt.Errorf("%s: class %d has no name", loc, k))
					continue
				}
				if p := cls.Preview; p != nil {
					if !p.Type.IsValid() {
						err = multierr.Append(err, fmt.Errorf("%s: %s: unknown preview type %q", loc, cls.Name, p.Type))
					}
					if p.Items < 0 {
						err = multierr.Append(err, fmt.Errorf("%s: %s: negative number of preview items", loc, cls.Name))
					}
				}
			}
		}
	}
	return err
}

// Flatten lists every class in catalog order.
func (c *Catalog) Flatten() []Item {
	var items []Item
	for _, cat := range c.Categories {
		for _, sub := range cat.SubCategories {
			for _, cls := range sub.Classes {
				items = append(items, Item{Category: cat.Name, SubCategory: sub.Name, Class: cls})
			}
		}
	}
	return items
}

// Find returns first class with exactly matching name.
func (c *Catalog) Find(name string) (Item, bool) {
	for _, it := range c.Flatten() {
		if it.Class.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Filter returns catalog containing only named category, matched case
// insensitively.
func (c *Catalog) Filter(category string) (*Catalog, error) {
	for _, cat := range c.Categories {
		if strings.EqualFold(cat.Name, category) {
			return &Catalog{Categories: []Category{cat}}, nil
		}
	}
	return nil, fmt.Errorf("unknown catalog category %q", category)
}
