package tailwind

import (
	"regexp"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// Family names example markup shape.
type Family string

const (
	FamilyLayout      Family = "layout"
	FamilySpacing     Family = "spacing"
	FamilyTypography  Family = "typography"
	FamilyBackground  Family = "background"
	FamilyBorder      Family = "border"
	FamilyEffect      Family = "effect"
	FamilyTransform   Family = "transform"
	FamilyInteraction Family = "interaction"
	FamilyDefault     Family = "default"
)

type familyRule struct {
	re     *regexp.Regexp
	family Family
}

var families = []familyRule{
	{regexp.MustCompile(`^(flex|grid|cols-|rows-)`), FamilyLayout},
	{regexp.MustCompile(`^(p|m)[trblxy]?-|^gap-|^space-`), FamilySpacing},
	{regexp.MustCompile(`^(text-|font-|leading-|tracking-|whitespace-)`), FamilyTypography},
	{regexp.MustCompile(`^bg-|^gradient-`), FamilyBackground},
	{regexp.MustCompile(`^border|^rounded|^divide`), FamilyBorder},
	{regexp.MustCompile(`^(shadow-|opacity-|blur-|filter-)`), FamilyEffect},
	{regexp.MustCompile(`^(scale-|rotate-|translate-|skew-|transform)`), FamilyTransform},
	{regexp.MustCompile(`^(cursor-|hover:|focus:|active:|disabled:)`), FamilyInteraction},
}

// Every family is a named template, class name is available as .Class.
const exampleTemplates = `
{{- define "layout" -}}
<div class="{{ .Class }}">
{{- range $i := until 3 }}
  <div>Item {{ add1 $i }}</div>
{{- end }}
</div>
{{- end -}}

{{- define "spacing" -}}
<div class="{{ .Class }} bg-gray-200">
  <p>Spacing Example Content</p>
</div>
{{- end -}}

{{- define "typography" -}}
<p class="{{ .Class }}">
  This is a sample text to demonstrate typography
</p>
{{- end -}}

{{- define "background" -}}
<div class="{{ .Class }} w-full h-24">
  Background Example
</div>
{{- end -}}

{{- define "border" -}}
<div class="{{ .Class }} p-4">
  Border Example Content
</div>
{{- end -}}

{{- define "effect" -}}
<div class="{{ .Class }} bg-blue-500 p-4">
  Effect Example
</div>
{{- end -}}

{{- define "transform" -}}
<div class="{{ .Class }} bg-green-500 p-4">
  Transform Example
</div>
{{- end -}}

{{- define "interaction" -}}
<button class="{{ .Class }} px-4 py-2 bg-blue-500">
  Interactive Element
</button>
{{- end -}}

{{- define "default" -}}
<div class="{{ .Class }}">
  Default Example Content
</div>
{{- end -}}
`

var examples = template.Must(template.New("examples").Funcs(sprig.FuncMap()).Parse(exampleTemplates))

// FamilyOf returns example family for the base class name, first matching
// family wins.
func FamilyOf(name string) Family {
	for _, f := range families {
		if f.re.MatchString(name) {
			return f.family
		}
	}
	return FamilyDefault
}

// Example returns example markup with the class applied. Result is empty
// only if template execution fails.
func Example(name string) string {
	return render(FamilyOf(name), name)
}

func render(family Family, name string) string {
	var sb strings.Builder
	if err := examples.ExecuteTemplate(&sb, string(family), struct{ Class string }{name}); err != nil {
		return ""
	}
	return sb.String()
}
