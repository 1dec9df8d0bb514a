package css_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"twexp/css"
)

func TestRegexExtractor_SingleLineRules(t *testing.T) {
	e := css.NewRegexExtractor(zap.NewNop())

	input := []byte(` .p-4{padding:1rem} .hover\:bg-blue-500{background-color:#3b82f6}`)
	got := e.Extract(input)

	want := []css.Rule{
		{Selector: "p-4", Body: "padding:1rem", Line: 1},
		{Selector: "hover:bg-blue-500", Body: "background-color:#3b82f6", Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestRegexExtractor_TrimsAndCountsLines(t *testing.T) {
	e := css.NewRegexExtractor(nil)

	input := []byte(".m-4 {  margin: 1rem;  }\n\n.m-2{margin:.5rem}\n")
	got := e.Extract(input)

	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d: %+v", len(got), got)
	}
	if got[0].Selector != "m-4" || got[0].Body != "margin: 1rem;" || got[0].Line != 1 {
		t.Errorf("unexpected first rule %+v", got[0])
	}
	if got[1].Selector != "m-2" || got[1].Body != "margin:.5rem" || got[1].Line != 3 {
		t.Errorf("unexpected second rule %+v", got[1])
	}
}

func TestRegexExtractor_MultiLineRulesIgnored(t *testing.T) {
	e := css.NewRegexExtractor(nil)

	input := []byte(".p-2 {\n  padding: .5rem;\n}\n")
	if got := e.Extract(input); len(got) != 0 {
		t.Errorf("multi-line rules must not be extracted, got %+v", got)
	}
}

func TestRegexExtractor_SkipsEmpty(t *testing.T) {
	e := css.NewRegexExtractor(nil)

	input := []byte(".empty{   } . {color:red} .ok{color:red}")
	got := e.Extract(input)
	if len(got) != 1 || got[0].Selector != "ok" {
		t.Errorf("Extract() = %+v, want only .ok", got)
	}
}

func TestRegexExtractor_MediaWrapped(t *testing.T) {
	e := css.NewRegexExtractor(nil)

	input := []byte(`@media (min-width:768px){.md\:p-4{padding:1rem}}`)
	got := e.Extract(input)
	if len(got) != 1 || got[0].Selector != "md:p-4" || got[0].Body != "padding:1rem" {
		t.Errorf("Extract() = %+v", got)
	}
}

func TestRegexExtractor_Escapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`.hover\:bg-blue-500:hover{color:red}`, "hover:bg-blue-500"},
		{`.w-1\/2{width:50%}`, "w-1/2"},
		{`.p-0\.5{padding:0.125rem}`, "p-0.5"},
		{`.sm\3a p-2{padding:.5rem}`, "sm:p-2"},
		{`.focus\:ring-2:focus-visible{color:red}`, "focus:ring-2"},
		{`.a:hover{color:red}`, "a:hover"},
	}

	e := css.NewRegexExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := e.Extract([]byte(tt.input))
			if len(got) != 1 {
				t.Fatalf("expected 1 rule, got %+v", got)
			}
			if got[0].Selector != tt.want {
				t.Errorf("Selector = %q, want %q", got[0].Selector, tt.want)
			}
		})
	}
}

func TestParser_MultiLineRules(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	input := []byte(`
.p-2 {
  padding: .5rem;
}

.bg-blue-500 {
  --tw-bg-opacity: 1;
  background-color: rgb(59 130 246 / var(--tw-bg-opacity));
}
`)
	got := p.Extract(input)
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d: %+v", len(got), got)
	}
	if got[0].Selector != "p-2" || got[0].Body != "padding:.5rem" {
		t.Errorf("unexpected first rule %+v", got[0])
	}
	if got[1].Selector != "bg-blue-500" {
		t.Errorf("unexpected second rule %+v", got[1])
	}
	if got[1].Body == "" {
		t.Error("expected declarations in second rule")
	}
}

func TestParser_SelectorGroupsAndFilters(t *testing.T) {
	p := css.NewParser(nil)

	input := []byte(`
.m-4, .hover\:m-4:hover { margin: 1rem }
p { margin: 0 }
.a .b { color: red }
#id { color: red }
.x[data-y] { color: red }
`)
	got := p.Extract(input)

	var names []string
	for _, r := range got {
		names = append(names, r.Selector)
		if r.Body != "margin:1rem" {
			t.Errorf("unexpected body for %s: %q", r.Selector, r.Body)
		}
	}
	want := []string{"m-4", "hover:m-4"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("selectors = %v, want %v", names, want)
	}
}

func TestParser_AtRules(t *testing.T) {
	p := css.NewParser(nil)

	input := []byte(`
@tailwind base;
@keyframes spin { to { transform: rotate(360deg) } }
@font-face { font-family: Inter; src: url(inter.woff2) }
@media (min-width: 640px) {
  .sm\:p-4 { padding: 1rem }
}
.animate-spin { animation: spin 1s linear infinite }
`)
	got := p.Extract(input)

	var names []string
	for _, r := range got {
		names = append(names, r.Selector)
	}
	want := []string{"sm:p-4", "animate-spin"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("selectors = %v, want %v", names, want)
	}
	if got[1].Body != "animation:spin 1s linear infinite" {
		t.Errorf("animate-spin body = %q", got[1].Body)
	}
}

func TestParser_EmptyInput(t *testing.T) {
	p := css.NewParser(nil)
	if got := p.Extract(nil); len(got) != 0 {
		t.Errorf("expected no rules, got %+v", got)
	}
}

func TestExtractors_ImplementInterface(t *testing.T) {
	var _ css.Extractor = css.NewRegexExtractor(nil)
	var _ css.Extractor = css.NewParser(nil)
}

func TestRegexExtractor_WarnsOnMultiLineStylesheet(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := css.NewRegexExtractor(zap.New(core))

	got := e.Extract([]byte(".p-4 {\n  padding: 1rem;\n}\n.m-4 {\n  margin: 1rem;\n}\n"))
	if len(got) != 0 {
		t.Fatalf("expected no rules, got %+v", got)
	}
	warnings := logs.FilterMessageSnippet("tokenizer extractor").All()
	if len(warnings) != 1 {
		t.Fatalf("expected single warning, got %v", logs.All())
	}
	if hint := warnings[0].ContextMap()["hint"]; hint != "--extractor tokenizer" {
		t.Errorf("hint = %v", hint)
	}

	// nothing to warn about
	for _, data := range []string{"", "/* empty */", ".p-4{padding:1rem}"} {
		logs.TakeAll()
		e.Extract([]byte(data))
		if n := logs.Len(); n != 0 {
			t.Errorf("%q: unexpected warnings %v", data, logs.All())
		}
	}
}
