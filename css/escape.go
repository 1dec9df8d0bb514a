package css

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// decodeSelector decodes CSS escapes in a class selector. When selector uses
// escaped colons (Tailwind variants) an unescaped colon can only start a
// pseudo-class which browser applies on top of the variant, so the remainder
// is dropped: "hover\:bg-blue-500:hover" -> "hover:bg-blue-500".
func decodeSelector(raw string) string {
	raw = strings.TrimSpace(raw)

	var (
		sb           strings.Builder
		escapedColon bool
	)
	sb.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == '\\' && i+1 < len(raw):
			r, n := decodeEscape(raw[i+1:])
			if r == ':' {
				escapedColon = true
			}
			sb.WriteRune(r)
			i += 1 + n
			continue
		case c == ':' && escapedColon:
			return strings.TrimSpace(sb.String())
		}
		sb.WriteByte(c)
		i++
	}
	return strings.TrimSpace(sb.String())
}

// decodeEscape decodes escape sequence following backslash and returns
// resulting rune and number of bytes consumed.
func decodeEscape(s string) (rune, int) {
	n := 0
	for n < len(s) && n < 6 && isHex(s[n]) {
		n++
	}
	if n == 0 {
		r, size := utf8.DecodeRuneInString(s)
		return r, size
	}

	cp, _ := strconv.ParseUint(s[:n], 16, 32)
	r := rune(cp)
	if r == 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		r = utf8.RuneError
	}
	// single whitespace terminates hex escape and is part of it
	if n < len(s) && (s[n] == ' ' || s[n] == '\t' || s[n] == '\n') {
		n++
	}
	return r, n
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isClassSelector reports whether selector (with leading dot) consists of a
// single class, escapes allowed, optionally followed by pseudo-classes.
func isClassSelector(sel string) bool {
	if len(sel) < 2 || sel[0] != '.' {
		return false
	}
	for i := 1; i < len(sel); i++ {
		switch sel[i] {
		case '\\':
			if i+1 < len(sel) {
				_, n := decodeEscape(sel[i+1:])
				i += n
			}
		case ' ', '\t', '\n', '>', '+', '~', '[', '#', '*', '.', ',':
			return false
		}
	}
	return true
}
