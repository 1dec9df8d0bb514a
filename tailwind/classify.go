package tailwind

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"twexp/tree"
)

// Target is a tree leaf class belongs to. Static rules set Leaf, rules
// deriving leaf from the class name set Path which has to be resolved with
// tree.LeafByPath and may not exist.
type Target struct {
	Leaf tree.Leaf
	Path string
}

// Dynamic reports whether target has to be resolved at runtime.
func (t Target) Dynamic() bool {
	return t.Path != ""
}

func (t Target) String() string {
	if t.Dynamic() {
		return t.Path
	}
	return t.Leaf.Path()
}

type categoryRule struct {
	re *regexp.Regexp
	// leaf is used unless group or path is set
	leaf  tree.Leaf
	group string
	path  func(name string) string
}

func (r categoryRule) target(name string) Target {
	switch {
	case r.path != nil:
		return Target{Path: r.path(name)}
	case r.group != "":
		return Target{Path: r.group}
	default:
		return Target{Leaf: r.leaf}
	}
}

// firstSegment builds "<category>.<text before first dash>".
func firstSegment(category string) func(string) string {
	return func(name string) string {
		head, _, _ := strings.Cut(name, "-")
		return category + "." + head
	}
}

const palette = `transparent|current|black|white|gray|red|yellow|green|blue|indigo|purple|pink|slate|zinc|neutral|stone|orange|amber|lime|emerald|teal|cyan|sky|violet|fuchsia|rose`

// Rules are independent, every matching rule contributes a target.
var categoryRules = []categoryRule{
	{re: regexp.MustCompile(`^(container|mx-auto|max-w-|min-w-)`), leaf: tree.LayoutContainer},
	{re: regexp.MustCompile(`^(flex|grid|block|inline|hidden|table|flow-root|columns-|float-|clear-|object-|overflow-)`), leaf: tree.LayoutDisplay},
	{re: regexp.MustCompile(`^(static|fixed|absolute|relative|sticky|inset-|top-|right-|bottom-|left-|z-)`), leaf: tree.LayoutPosition},
	{re: regexp.MustCompile(`^p[txbrlxy]?-[0-9\[\]]`), leaf: tree.LayoutSpacingPadding},
	{re: regexp.MustCompile(`^m[txbrlxy]?-[0-9\[\]]`), leaf: tree.LayoutSpacingMargin},
	{re: regexp.MustCompile(`^(w-|min-w-|max-w-|width-)`), leaf: tree.LayoutSizingWidth},
	{re: regexp.MustCompile(`^(h-|min-h-|max-h-|height-)`), leaf: tree.LayoutSizingHeight},
	{re: regexp.MustCompile(`^font-(sans|serif|mono|family|display|body)`), leaf: tree.TypographyFontFamily},
	// typography.text is a group, every match is a schema violation
	{re: regexp.MustCompile(`^(text-|tracking-|leading-|indent-|whitespace-|break-|hyphens-)`), group: "typography.text"},
	{re: regexp.MustCompile(`^bg-(` + palette + `)`), leaf: tree.BackgroundsColor},
	{re: regexp.MustCompile(`^(bg-gradient-|from-|via-|to-)`), leaf: tree.BackgroundsGradient},
	{re: regexp.MustCompile(`^border(-[0-9]|$|-x-|-y-|-t-|-r-|-b-|-l-)`), leaf: tree.BordersWidth},
	{re: regexp.MustCompile(`^(rounded|border-radius-|rounded-t-|rounded-r-|rounded-b-|rounded-l-|rounded-tl-|rounded-tr-|rounded-br-|rounded-bl-)`), leaf: tree.BordersRadius},
	{re: regexp.MustCompile(`^(shadow-|drop-shadow-)`), leaf: tree.EffectsShadow},
	{re: regexp.MustCompile(`^(filter-|backdrop-filter-|blur-|brightness-|contrast-|grayscale-|hue-rotate-|invert-|saturate-|sepia-)`), path: firstSegment("filters")},
	{re: regexp.MustCompile(`^(transform-|scale-|rotate-|translate-|skew-|origin-)`), path: firstSegment("transforms")},
	{re: regexp.MustCompile(`^(transition-|duration-|ease-|delay-)`), path: firstSegment("transitions")},
}

// Targets returns leaves the base class name belongs to in rule order.
// Result is empty for unrecognized names.
func Targets(name string) []Target {
	var targets []Target
	for _, r := range categoryRules {
		if r.re.MatchString(name) {
			targets = append(targets, r.target(name))
		}
	}
	return targets
}

// Class is classification result of a single selector.
type Class struct {
	Entry   tree.ClassEntry
	Valid   bool
	Targets []Target
}

// Classifier turns selectors into class entries.
type Classifier struct {
	log *zap.Logger
}

func NewClassifier(log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{log: log.Named("classifier")}
}

// Classify splits selector, builds class entry for its base name and finds
// category targets. Invalid base names are reported and still classified.
func (c *Classifier) Classify(selector, cssRule string) Class {
	base, variants := SplitVariants(selector)

	valid := ValidName(base)
	if !valid {
		c.log.Warn("Invalid base class name", zap.String("name", base), zap.String("selector", selector))
	}

	return Class{
		Entry: tree.ClassEntry{
			Name:        base,
			Description: Describe(base),
			CSSRule:     cssRule,
			Example:     Example(base),
			Variants:    variants,
		},
		Valid:   valid,
		Targets: Targets(base),
	}
}
