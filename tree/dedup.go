package tree

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

type entryKey struct {
	name, rule, variants string
}

// Variant order does not matter for identity.
func keyOf(e ClassEntry) entryKey {
	variants := slices.Clone(e.Variants)
	slices.Sort(variants)
	return entryKey{name: e.Name, rule: e.CSSRule, variants: strings.Join(variants, "\x00")}
}

// Deduplicate removes repeated entries within every leaf keeping first
// occurrence and relative order of the rest. Returns number of removed entries.
func (t *Tree) Deduplicate() int {
	var removed int
	for _, l := range Leaves() {
		s := t.slot(l)
		before := len(*s)
		*s = dedupEntries(*s)
		removed += before - len(*s)
	}
	return removed
}

func dedupEntries(entries []ClassEntry) []ClassEntry {
	if len(entries) < 2 {
		return entries
	}
	seen := make(map[entryKey]struct{}, len(entries))
	out := make([]ClassEntry, 0, len(entries))
	for _, e := range entries {
		k := keyOf(e)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Validate checks every entry of every leaf and reports all problems at once
// as *ValidationError.
func (t *Tree) Validate() error {
	var err error
	t.Walk(func(l Leaf, entries []ClassEntry) {
		for i, e := range entries {
			if missing := missingFields(e); len(missing) > 0 {
				err = multierr.Append(err,
					fmt.Errorf("%s[%d] %q: missing %s", l.Path(), i, e.Name, strings.Join(missing, ", ")))
			}
		}
	})
	if err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

func missingFields(e ClassEntry) []string {
	var missing []string
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.Description == "" {
		missing = append(missing, "description")
	}
	if e.CSSRule == "" {
		missing = append(missing, "cssRule")
	}
	if e.Example == "" {
		missing = append(missing, "example")
	}
	if e.Variants == nil {
		missing = append(missing, "variants")
	}
	return missing
}
