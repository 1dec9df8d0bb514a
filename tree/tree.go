// Package tree holds fixed-schema category tree Tailwind classes are sorted into.
package tree

import "fmt"

// ClassEntry describes single utility class as it appears in the tree.
type ClassEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	CSSRule     string   `json:"cssRule" yaml:"cssRule"`
	Example     string   `json:"example" yaml:"example"`
	Variants    []string `json:"variants" yaml:"variants"`
}

type Spacing struct {
	Padding []ClassEntry `json:"padding" yaml:"padding"`
	Margin  []ClassEntry `json:"margin" yaml:"margin"`
}

type Sizing struct {
	Width  []ClassEntry `json:"width" yaml:"width"`
	Height []ClassEntry `json:"height" yaml:"height"`
}

type Layout struct {
	Container []ClassEntry `json:"container" yaml:"container"`
	Display   []ClassEntry `json:"display" yaml:"display"`
	Position  []ClassEntry `json:"position" yaml:"position"`
	Spacing   Spacing      `json:"spacing" yaml:"spacing"`
	Sizing    Sizing       `json:"sizing" yaml:"sizing"`
	Grid      []ClassEntry `json:"grid" yaml:"grid"`
	Flex      []ClassEntry `json:"flex" yaml:"flex"`
	Gap       []ClassEntry `json:"gap" yaml:"gap"`
}

type Font struct {
	Family []ClassEntry `json:"family" yaml:"family"`
	Size   []ClassEntry `json:"size" yaml:"size"`
	Weight []ClassEntry `json:"weight" yaml:"weight"`
}

type Text struct {
	Color     []ClassEntry `json:"color" yaml:"color"`
	Align     []ClassEntry `json:"align" yaml:"align"`
	Transform []ClassEntry `json:"transform" yaml:"transform"`
}

type Typography struct {
	Font  Font         `json:"font" yaml:"font"`
	Text  Text         `json:"text" yaml:"text"`
	Lists []ClassEntry `json:"lists" yaml:"lists"`
}

type Backgrounds struct {
	Color    []ClassEntry `json:"color" yaml:"color"`
	Gradient []ClassEntry `json:"gradient" yaml:"gradient"`
	Opacity  []ClassEntry `json:"opacity" yaml:"opacity"`
}

type Borders struct {
	Width  []ClassEntry `json:"width" yaml:"width"`
	Color  []ClassEntry `json:"color" yaml:"color"`
	Radius []ClassEntry `json:"radius" yaml:"radius"`
	Style  []ClassEntry `json:"style" yaml:"style"`
	Divide []ClassEntry `json:"divide" yaml:"divide"`
}

type Effects struct {
	Opacity []ClassEntry `json:"opacity" yaml:"opacity"`
	Shadow  []ClassEntry `json:"shadow" yaml:"shadow"`
	Blur    []ClassEntry `json:"blur" yaml:"blur"`
}

type Transitions struct {
	Property []ClassEntry `json:"property" yaml:"property"`
	Duration []ClassEntry `json:"duration" yaml:"duration"`
}

type Transforms struct {
	Scale     []ClassEntry `json:"scale" yaml:"scale"`
	Rotate    []ClassEntry `json:"rotate" yaml:"rotate"`
	Translate []ClassEntry `json:"translate" yaml:"translate"`
}

type Filters struct {
	Blur       []ClassEntry `json:"blur" yaml:"blur"`
	Brightness []ClassEntry `json:"brightness" yaml:"brightness"`
	Contrast   []ClassEntry `json:"contrast" yaml:"contrast"`
}

type Interactivity struct {
	Cursor     []ClassEntry `json:"cursor" yaml:"cursor"`
	Pointer    []ClassEntry `json:"pointer" yaml:"pointer"`
	Resize     []ClassEntry `json:"resize" yaml:"resize"`
	UserSelect []ClassEntry `json:"userSelect" yaml:"userSelect"`
}

// Tree is category tree, every leaf is an ordered list of entries. Shape
// never changes, only leaf contents do.
type Tree struct {
	Layout        Layout        `json:"layout" yaml:"layout"`
	Typography    Typography    `json:"typography" yaml:"typography"`
	Backgrounds   Backgrounds   `json:"backgrounds" yaml:"backgrounds"`
	Borders       Borders       `json:"borders" yaml:"borders"`
	Effects       Effects       `json:"effects" yaml:"effects"`
	Transitions   Transitions   `json:"transitions" yaml:"transitions"`
	Transforms    Transforms    `json:"transforms" yaml:"transforms"`
	Filters       Filters       `json:"filters" yaml:"filters"`
	Interactivity Interactivity `json:"interactivity" yaml:"interactivity"`
}

// New returns tree with every leaf present and empty, so serialized form
// always carries full schema.
func New() *Tree {
	t := &Tree{}
	for _, l := range Leaves() {
		*t.slot(l) = make([]ClassEntry, 0)
	}
	return t
}

func (t *Tree) slot(l Leaf) *[]ClassEntry {
	switch l {
	case LayoutContainer:
		return &t.Layout.Container
	case LayoutDisplay:
		return &t.Layout.Display
	case LayoutPosition:
		return &t.Layout.Position
	case LayoutSpacingPadding:
		return &t.Layout.Spacing.Padding
	case LayoutSpacingMargin:
		return &t.Layout.Spacing.Margin
	case LayoutSizingWidth:
		return &t.Layout.Sizing.Width
	case LayoutSizingHeight:
		return &t.Layout.Sizing.Height
	case LayoutGrid:
		return &t.Layout.Grid
	case LayoutFlex:
		return &t.Layout.Flex
	case LayoutGap:
		return &t.Layout.Gap
	case TypographyFontFamily:
		return &t.Typography.Font.Family
	case TypographyFontSize:
		return &t.Typography.Font.Size
	case TypographyFontWeight:
		return &t.Typography.Font.Weight
	case TypographyTextColor:
		return &t.Typography.Text.Color
	case TypographyTextAlign:
		return &t.Typography.Text.Align
	case TypographyTextTransform:
		return &t.Typography.Text.Transform
	case TypographyLists:
		return &t.Typography.Lists
	case BackgroundsColor:
		return &t.Backgrounds.Color
	case BackgroundsGradient:
		return &t.Backgrounds.Gradient
	case BackgroundsOpacity:
		return &t.Backgrounds.Opacity
	case BordersWidth:
		return &t.Borders.Width
	case BordersColor:
		return &t.Borders.Color
	case BordersRadius:
		return &t.Borders.Radius
	case BordersStyle:
		return &t.Borders.Style
	case BordersDivide:
		return &t.Borders.Divide
	case EffectsOpacity:
		return &t.Effects.Opacity
	case EffectsShadow:
		return &t.Effects.Shadow
	case EffectsBlur:
		return &t.Effects.Blur
	case TransitionsProperty:
		return &t.Transitions.Property
	case TransitionsDuration:
		return &t.Transitions.Duration
	case TransformsScale:
		return &t.Transforms.Scale
	case TransformsRotate:
		return &t.Transforms.Rotate
	case TransformsTranslate:
		return &t.Transforms.Translate
	case FiltersBlur:
		return &t.Filters.Blur
	case FiltersBrightness:
		return &t.Filters.Brightness
	case FiltersContrast:
		return &t.Filters.Contrast
	case InteractivityCursor:
		return &t.Interactivity.Cursor
	case InteractivityPointer:
		return &t.Interactivity.Pointer
	case InteractivityResize:
		return &t.Interactivity.Resize
	case InteractivityUserSelect:
		return &t.Interactivity.UserSelect
	default:
		panic(fmt.Sprintf("tree: unknown leaf %d", int(l)))
	}
}

// Assign appends entry to the leaf.
func (t *Tree) Assign(l Leaf, e ClassEntry) {
	s := t.slot(l)
	*s = append(*s, e)
}

// AssignPath appends entry to the leaf named by dotted path. Tree is not
// modified when path does not name a leaf.
func (t *Tree) AssignPath(path string, e ClassEntry) error {
	l, err := LeafByPath(path)
	if err != nil {
		return err
	}
	t.Assign(l, e)
	return nil
}

// Entries returns leaf contents. Returned slice belongs to the tree.
func (t *Tree) Entries(l Leaf) []ClassEntry {
	return *t.slot(l)
}

// Walk calls fn for every leaf in schema order.
func (t *Tree) Walk(fn func(l Leaf, entries []ClassEntry)) {
	for _, l := range Leaves() {
		fn(l, *t.slot(l))
	}
}

// Count returns total number of entries in all leaves.
func (t *Tree) Count() int {
	var n int
	t.Walk(func(_ Leaf, entries []ClassEntry) {
		n += len(entries)
	})
	return n
}
