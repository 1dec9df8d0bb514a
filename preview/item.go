// Package preview renders HTML page demonstrating Tailwind classes in light
// and dark mode.
package preview

import (
	"fmt"
	"strings"

	"twexp/catalog"
	"twexp/tailwind"
	"twexp/tree"
)

const (
	defaultGridItems = 4
	defaultFlexItems = 3
)

// Item is a single class to be previewed.
type Item struct {
	Category    string
	Group       string
	Name        string
	Description string
	// Content is markup or text placed inside element carrying the class
	// for text and single previews. Empty means sample text.
	Content string
	// Markup is shown in the code block.
	Markup  string
	Preview catalog.Preview
}

func (it *Item) count() int {
	if it.Preview.Items > 0 {
		return it.Preview.Items
	}
	if it.Preview.Type == catalog.PreviewFlex {
		return defaultFlexItems
	}
	return defaultGridItems
}

// FromCatalog converts catalog classes keeping catalog order.
func FromCatalog(items []catalog.Item) []Item {
	res := make([]Item, 0, len(items))
	for _, ci := range items {
		it := Item{
			Category:    ci.Category,
			Group:       ci.SubCategory,
			Name:        ci.Class.Name,
			Description: ci.Class.Description,
			Content:     ci.Class.Example,
		}
		if p := ci.Class.Preview; p != nil {
			it.Preview = *p
			if p.Type != catalog.PreviewGrid && p.Type != catalog.PreviewFlex && p.Template != "" {
				it.Content = p.Template
			}
		}
		it.Markup = snippet(&it)
		res = append(res, it)
	}
	return res
}

// FromTree converts parsed categories in schema order. Preview kind is
// guessed from class name, generated example becomes the markup.
func FromTree(t *tree.Tree) []Item {
	var res []Item
	t.Walk(func(l tree.Leaf, entries []tree.ClassEntry) {
		cat := l.Category()
		group := strings.TrimPrefix(l.Path(), cat+".")
		for _, e := range entries {
			it := Item{
				Category:    cat,
				Group:       group,
				Name:        e.Name,
				Description: e.Description,
				Markup:      e.Example,
				Preview:     catalog.Preview{Type: guessType(e.Name)},
			}
			if it.Markup == "" {
				it.Markup = snippet(&it)
			}
			res = append(res, it)
		}
	})
	return res
}

func guessType(name string) catalog.PreviewType {
	if tailwind.FamilyOf(name) == tailwind.FamilyLayout {
		switch {
		case strings.HasPrefix(name, "grid"), strings.HasPrefix(name, "cols-"), strings.HasPrefix(name, "rows-"):
			return catalog.PreviewGrid
		case strings.HasPrefix(name, "flex"):
			return catalog.PreviewFlex
		}
	}
	return catalog.PreviewText
}

// snippet is a short usage example for the code block.
func snippet(it *Item) string {
	switch it.Preview.Type {
	case catalog.PreviewGrid:
		return fmt.Sprintf("<div class=\"%s\">\n  <div>Item 1</div>\n  <div>Item 2</div>\n  ...\n</div>", it.Name)
	case catalog.PreviewFlex:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"%s\">\n", it.Name)
		for i := 1; i <= defaultFlexItems; i++ {
			fmt.Fprintf(&sb, "  <div>Item %d</div>\n", i)
		}
		sb.WriteString("</div>")
		return sb.String()
	}
	return fmt.Sprintf("<div class=\"%s\">%s</div>", it.Name, it.Content)
}
