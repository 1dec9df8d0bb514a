package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "layout",
			want:   "layout\n",
		},
		{
			name:   "depth 1",
			depth:  1,
			format: "spacing",
			want:   "  spacing\n",
		},
		{
			name:   "with formatting",
			depth:  2,
			format: "%s (%d)",
			args:   []any{"padding", 3},
			want:   "    padding (3)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "empty value",
			label: "rule",
			want:  "rule: \n",
		},
		{
			name:  "css value",
			depth: 1,
			label: "rule",
			value: "padding:1rem",
			want:  "  rule: \"padding:1rem\"\n",
		},
		{
			name:  "multi-line html",
			depth: 2,
			label: "example",
			value: "<div class=\"p-4\">\n</div>",
			want:  "    example: \"<div class=\\\"p-4\\\">\\n</div>\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_List(t *testing.T) {
	tw := NewTreeWriter()
	tw.List(1, "variants", []string{"md", "hover"})
	tw.List(0, "none", nil)

	want := "  variants: [\"md\" \"hover\"]\nnone: []\n"
	if got := tw.String(); got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Nested(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Tree (%d entries)", 1)
	tw.Line(1, "layout")
	tw.Line(2, "spacing.padding (1)")
	tw.Line(3, "p-4")
	tw.TextBlock(4, "rule", "padding:1rem")

	result := tw.String()
	for _, line := range []string{
		"Tree (1 entries)\n",
		"  layout\n",
		"      p-4\n",
		"        rule: \"padding:1rem\"\n",
	} {
		if !strings.Contains(result, line) {
			t.Errorf("missing line %q in:\n%s", line, result)
		}
	}
}
