package tree

import (
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"twexp/utils/debug"
)

// String returns readable dump of non-empty leaves with entries in natural
// name order. It exists for manual inspection and does not reflect storage
// order.
func (t *Tree) String() string {
	if t == nil {
		return "<nil Tree>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Tree (%d entries)", t.Count())

	var category string
	t.Walk(func(l Leaf, entries []ClassEntry) {
		if len(entries) == 0 {
			return
		}
		if c := l.Category(); c != category {
			category = c
			tw.Line(1, "%s", c)
		}
		tw.Line(2, "%s (%d)", strings.TrimPrefix(l.Path(), category+"."), len(entries))

		sorted := slices.Clone(entries)
		slices.SortStableFunc(sorted, func(a, b ClassEntry) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			}
			return 0
		})
		for _, e := range sorted {
			tw.Line(3, "%s", e.Name)
			tw.TextBlock(4, "rule", e.CSSRule)
			if len(e.Variants) > 0 {
				variants := slices.Clone(e.Variants)
				sort.Sort(natural.StringSlice(variants))
				tw.List(4, "variants", variants)
			}
		}
	})
	return tw.String()
}
