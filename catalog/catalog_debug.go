package catalog

import (
	"slices"

	"github.com/maruel/natural"

	"twexp/utils/debug"
)

// String returns indented listing, classes within subcategory are sorted in
// natural order. Classes sharing a name keep catalog order.
func (c *Catalog) String() string {
	if c == nil {
		return "<nil Catalog>"
	}

	tw := debug.NewTreeWriter()
	for _, cat := range c.Categories {
		tw.Line(0, "%s: %s", cat.Name, cat.Description)
		for _, sub := range cat.SubCategories {
			tw.Line(1, "%s: %s (%d)", sub.Name, sub.Description, len(sub.Classes))

			sorted := slices.Clone(sub.Classes)
			slices.SortStableFunc(sorted, func(a, b Class) int {
				switch {
				case natural.Less(a.Name, b.Name):
					return -1
				case natural.Less(b.Name, a.Name):
					return 1
				}
				return 0
			})
			for _, cls := range sorted {
				tw.Line(2, "%s", cls.Name)
				tw.TextBlock(3, "description", cls.Description)
				if cls.Preview != nil {
					tw.Line(3, "preview: %s", cls.Preview.Type)
				}
			}
		}
	}
	return tw.String()
}
