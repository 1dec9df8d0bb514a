// Package tailwind classifies Tailwind utility class selectors: splits
// variant prefixes, derives description and example markup and finds
// category tree leaves class belongs to.
package tailwind

import (
	"regexp"
	"strings"
)

var baseNameRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// SplitVariants splits selector such as "hover:md:bg-blue-500" on ':'. Last
// segment is the base name, preceding non-empty segments are variants in
// original order. Variants are never nil.
func SplitVariants(selector string) (base string, variants []string) {
	parts := strings.Split(strings.TrimSpace(selector), ":")
	base = parts[len(parts)-1]

	variants = make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		if p != "" {
			variants = append(variants, p)
		}
	}
	return base, variants
}

// ValidName reports whether base name consists of ASCII letters, digits and
// dashes only.
func ValidName(base string) bool {
	return baseNameRe.MatchString(base)
}
