package tailwind

import (
	"regexp"
)

type description struct {
	re   *regexp.Regexp
	text string
}

// First match wins, more specific patterns go first.
var descriptions = []description{
	{regexp.MustCompile(`^p[trblxy]?-`), "Sets padding"},
	{regexp.MustCompile(`^m[trblxy]?-`), "Sets margin"},
	{regexp.MustCompile(`^w-`), "Sets width"},
	{regexp.MustCompile(`^h-`), "Sets height"},
	{regexp.MustCompile(`^text-`), "Sets text properties"},
	{regexp.MustCompile(`^bg-`), "Sets background properties"},
	{regexp.MustCompile(`^border-[0-9]`), "Sets border width"},
	{regexp.MustCompile(`^border`), "Sets border properties"},
	{regexp.MustCompile(`^rounded`), "Sets border radius"},
	{regexp.MustCompile(`^flex`), "Sets flex container properties"},
	{regexp.MustCompile(`^grid`), "Sets grid container properties"},
	{regexp.MustCompile(`^col-`), "Sets grid column properties"},
	{regexp.MustCompile(`^row-`), "Sets grid row properties"},
	{regexp.MustCompile(`^gap-`), "Sets gap between elements"},
	{regexp.MustCompile(`^space-`), "Sets space between children"},
	{regexp.MustCompile(`^font-`), "Sets font properties"},
	{regexp.MustCompile(`^opacity-`), "Sets opacity level"},
	{regexp.MustCompile(`^shadow-`), "Sets box shadow"},
	{regexp.MustCompile(`^transition-`), "Sets transition properties"},
	{regexp.MustCompile(`^transform-`), "Sets transform properties"},
	{regexp.MustCompile(`^scale-`), "Sets scaling transform"},
	{regexp.MustCompile(`^rotate-`), "Sets rotation transform"},
	{regexp.MustCompile(`^translate-`), "Sets translation transform"},
	{regexp.MustCompile(`^skew-`), "Sets skew transform"},
	{regexp.MustCompile(`^cursor-`), "Sets cursor type"},
	{regexp.MustCompile(`^select-`), "Sets text selection behavior"},
	{regexp.MustCompile(`^resize-`), "Sets resize behavior"},
	{regexp.MustCompile(`^z-`), "Sets z-index stacking order"},
	{regexp.MustCompile(`^overflow-`), "Sets overflow behavior"},
	{regexp.MustCompile(`^object-`), "Sets object-fit and position"},
	{regexp.MustCompile(`^filter-`), "Sets filter effects"},
	{regexp.MustCompile(`^backdrop-`), "Sets backdrop filter effects"},
	{regexp.MustCompile(`^outline-`), "Sets outline properties"},
	{regexp.MustCompile(`^ring-`), "Sets ring/focus properties"},
	{regexp.MustCompile(`^animate-`), "Sets animation properties"},
	{regexp.MustCompile(`^gradient-`), "Sets gradient background"},
}

// Describe returns human readable description of the base class name.
func Describe(name string) string {
	for _, d := range descriptions {
		if d.re.MatchString(name) {
			return d.text + ": " + name
		}
	}
	return "Tailwind utility class: " + name
}
