package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"twexp/catalog"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	// dark panels are selected with "dark" class rather than media query
	tailwindSetup = "tailwind.config = { darkMode: 'class' }"

	frameClasses = "p-4 border rounded-lg bg-slate-50 dark:bg-slate-900"
	gridChild    = `<div class="p-4 bg-blue-200 dark:bg-blue-800 rounded-md shadow-sm">Item {n}</div>`
	flexChild    = `<div class="p-4 bg-green-200 dark:bg-green-800 rounded-md shadow-sm">Item {n}</div>`
)

// Options controls page rendering.
type Options struct {
	Title string
	// DarkMode adds dark panel next to the light one.
	DarkMode bool
	// SampleText is displayed by text previews without content.
	SampleText string
}

type renderer struct {
	opts  Options
	title cases.Caser
	ids   map[string]int
}

// Render writes complete HTML5 document previewing items. Items are grouped
// into sections by category and group in the order given.
func Render(w io.Writer, items []Item, opts Options) error {
	r := &renderer{
		opts:  opts,
		title: cases.Title(language.English),
		ids:   make(map[string]int),
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html", "lang", "en")
	doc.AppendChild(root)
	root.AppendChild(r.head())

	body := element("body", "class", "p-8 bg-white text-slate-900")
	root.AppendChild(body)
	body.AppendChild(withText(element("h1", "class", "text-3xl font-bold mb-8"), opts.Title))

	if len(items) == 0 {
		body.AppendChild(withText(element("p", "class", "empty text-slate-500"), "No classes to preview"))
	}

	var section, group *html.Node
	for i := range items {
		it := &items[i]
		if section == nil || it.Category != items[i-1].Category {
			section = element("section", "id", r.id(it.Category), "class", "mb-12")
			section.AppendChild(withText(element("h2", "class", "text-2xl font-semibold mb-4"), r.title.String(it.Category)))
			body.AppendChild(section)
			group = nil
		}
		if group == nil || it.Group != items[i-1].Group {
			group = element("div", "class", "group mb-8")
			group.AppendChild(withText(element("h3", "class", "text-xl font-medium mb-4"), it.Group))
			section.AppendChild(group)
		}
		art, err := r.article(it)
		if err != nil {
			return err
		}
		group.AppendChild(art)
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}
	return nil
}

func (r *renderer) head() *html.Node {
	head := element("head")
	head.AppendChild(element("meta", "charset", "utf-8"))
	head.AppendChild(element("meta", "name", "viewport", "content", "width=device-width, initial-scale=1"))
	head.AppendChild(withText(element("title"), r.opts.Title))
	head.AppendChild(element("script", "src", tailwindCDN))
	head.AppendChild(withText(element("script"), tailwindSetup))
	return head
}

func (r *renderer) article(it *Item) (*html.Node, error) {
	art := element("article", "id", r.id(it.Name), "class", "mb-8", "data-class", it.Name)
	art.AppendChild(withText(element("h4", "class", "text-lg font-mono mb-2"), it.Name))

	panels := element("div", "class", "grid grid-cols-1 md:grid-cols-2 gap-4")
	art.AppendChild(panels)

	light, err := r.panel(it, "light", "Light Mode", "p-6 border rounded-lg bg-white text-slate-900")
	if err != nil {
		return nil, err
	}
	panels.AppendChild(light)

	if r.opts.DarkMode {
		dark, err := r.panel(it, "dark", "Dark Mode", "p-6 border rounded-lg bg-slate-950 text-slate-50")
		if err != nil {
			return nil, err
		}
		wrap := element("div", "class", "dark")
		wrap.AppendChild(dark)
		panels.AppendChild(wrap)
	}

	code := element("pre", "class", "p-4 mt-4 bg-slate-100 rounded-lg overflow-x-auto")
	code.AppendChild(withText(element("code", "class", "text-sm"), it.Markup))
	art.AppendChild(code)

	desc := element("div", "class", "description mt-4")
	desc.AppendChild(withText(element("h5", "class", "text-sm font-medium mb-2"), "Description"))
	desc.AppendChild(withText(element("p", "class", "text-slate-500"), it.Description))
	art.AppendChild(desc)

	return art, nil
}

func (r *renderer) panel(it *Item, mode, label, classes string) (*html.Node, error) {
	p := element("div", "class", "panel "+classes, "data-mode", mode)
	p.AppendChild(withText(element("h5", "class", "text-sm font-medium mb-2"), label))

	var (
		demo *html.Node
		err  error
	)
	switch it.Preview.Type {
	case catalog.PreviewGrid:
		demo, err = repeated(it, it.Name+" gap-4 "+frameClasses, gridChild)
	case catalog.PreviewFlex:
		demo, err = repeated(it, it.Name+" "+frameClasses, flexChild)
	default:
		demo, err = r.single(it)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to build preview for %q: %w", it.Name, err)
	}
	p.AppendChild(demo)
	return p, nil
}

// repeated builds container with the class holding numbered children.
func repeated(it *Item, classes, child string) (*html.Node, error) {
	tmpl := it.Preview.Template
	if tmpl == "" {
		tmpl = child
	}
	container := element("div", "class", classes, "data-preview", string(it.Preview.Type))
	for n := 1; n <= it.count(); n++ {
		if err := appendFragment(container, strings.ReplaceAll(tmpl, "{n}", strconv.Itoa(n))); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func (r *renderer) single(it *Item) (*html.Node, error) {
	content := it.Content
	if content == "" {
		content = r.opts.SampleText
	}
	frame := element("div", "class", frameClasses, "data-preview", "single")
	target := element("div", "class", it.Name)
	if err := appendFragment(target, content); err != nil {
		return nil, err
	}
	frame.AppendChild(target)
	return frame, nil
}

// id returns unique slug based element id.
func (r *renderer) id(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "class"
	}
	r.ids[base]++
	if n := r.ids[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}

// appendFragment parses markup in context of parent and adds resulting
// nodes to it.
func appendFragment(parent *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     parent.Data,
		DataAtom: parent.DataAtom,
	})
	if err != nil {
		return err
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
