package tree

import (
	"slices"
	"strings"
)

// Leaf identifies one array of the category tree.
type Leaf int

const (
	LayoutContainer Leaf = iota
	LayoutDisplay
	LayoutPosition
	LayoutSpacingPadding
	LayoutSpacingMargin
	LayoutSizingWidth
	LayoutSizingHeight
	LayoutGrid
	LayoutFlex
	LayoutGap
	TypographyFontFamily
	TypographyFontSize
	TypographyFontWeight
	TypographyTextColor
	TypographyTextAlign
	TypographyTextTransform
	TypographyLists
	BackgroundsColor
	BackgroundsGradient
	BackgroundsOpacity
	BordersWidth
	BordersColor
	BordersRadius
	BordersStyle
	BordersDivide
	EffectsOpacity
	EffectsShadow
	EffectsBlur
	TransitionsProperty
	TransitionsDuration
	TransformsScale
	TransformsRotate
	TransformsTranslate
	FiltersBlur
	FiltersBrightness
	FiltersContrast
	InteractivityCursor
	InteractivityPointer
	InteractivityResize
	InteractivityUserSelect

	leafCount
)

// Array size makes compiler verify every leaf has its path.
var leafPaths = [leafCount]string{
	LayoutContainer:         "layout.container",
	LayoutDisplay:           "layout.display",
	LayoutPosition:          "layout.position",
	LayoutSpacingPadding:    "layout.spacing.padding",
	LayoutSpacingMargin:     "layout.spacing.margin",
	LayoutSizingWidth:       "layout.sizing.width",
	LayoutSizingHeight:      "layout.sizing.height",
	LayoutGrid:              "layout.grid",
	LayoutFlex:              "layout.flex",
	LayoutGap:               "layout.gap",
	TypographyFontFamily:    "typography.font.family",
	TypographyFontSize:      "typography.font.size",
	TypographyFontWeight:    "typography.font.weight",
	TypographyTextColor:     "typography.text.color",
	TypographyTextAlign:     "typography.text.align",
	TypographyTextTransform: "typography.text.transform",
	TypographyLists:         "typography.lists",
	BackgroundsColor:        "backgrounds.color",
	BackgroundsGradient:     "backgrounds.gradient",
	BackgroundsOpacity:      "backgrounds.opacity",
	BordersWidth:            "borders.width",
	BordersColor:            "borders.color",
	BordersRadius:           "borders.radius",
	BordersStyle:            "borders.style",
	BordersDivide:           "borders.divide",
	EffectsOpacity:          "effects.opacity",
	EffectsShadow:           "effects.shadow",
	EffectsBlur:             "effects.blur",
	TransitionsProperty:     "transitions.property",
	TransitionsDuration:     "transitions.duration",
	TransformsScale:         "transforms.scale",
	TransformsRotate:        "transforms.rotate",
	TransformsTranslate:     "transforms.translate",
	FiltersBlur:             "filters.blur",
	FiltersBrightness:       "filters.brightness",
	FiltersContrast:         "filters.contrast",
	InteractivityCursor:     "interactivity.cursor",
	InteractivityPointer:    "interactivity.pointer",
	InteractivityResize:     "interactivity.resize",
	InteractivityUserSelect: "interactivity.userSelect",
}

var pathLeaves = func() map[string]Leaf {
	m := make(map[string]Leaf, leafCount)
	for l, p := range leafPaths {
		m[p] = Leaf(l)
	}
	return m
}()

// Leaves returns all leaves in schema order.
func Leaves() []Leaf {
	leaves := make([]Leaf, leafCount)
	for i := range leaves {
		leaves[i] = Leaf(i)
	}
	return leaves
}

// Path returns dotted path of the leaf, e.g. "layout.spacing.padding".
func (l Leaf) Path() string {
	if l < 0 || l >= leafCount {
		return ""
	}
	return leafPaths[l]
}

func (l Leaf) String() string {
	if p := l.Path(); p != "" {
		return p
	}
	return "Leaf(invalid)"
}

// Category returns the top level key of the leaf.
func (l Leaf) Category() string {
	category, _, _ := strings.Cut(l.Path(), ".")
	return category
}

// LeafByPath resolves dotted path computed at runtime. Path naming an
// intermediate group or not present in the schema is a schema violation.
func LeafByPath(path string) (Leaf, error) {
	if l, ok := pathLeaves[path]; ok {
		return l, nil
	}
	if isGroup(path) {
		return 0, &SchemaViolationError{Path: path, Reason: "cannot assign to non-array category"}
	}
	return 0, &SchemaViolationError{Path: path, Reason: "invalid category path"}
}

func isGroup(path string) bool {
	if path == "" {
		return false
	}
	prefix := path + "."
	for _, p := range leafPaths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Children lists keys directly under the group in schema order. Empty path
// lists top level categories.
func Children(path string) ([]string, error) {
	if _, ok := pathLeaves[path]; ok {
		return nil, &SchemaViolationError{Path: path, Reason: "category has no children"}
	}
	if path != "" && !isGroup(path) {
		return nil, &SchemaViolationError{Path: path, Reason: "invalid category path"}
	}

	prefix := ""
	if path != "" {
		prefix = path + "."
	}
	var keys []string
	for _, p := range leafPaths {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		key, _, _ := strings.Cut(rest, ".")
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
