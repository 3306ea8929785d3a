// Package normalize provides pure text transformations that prepare
// extracted blog content for print: mojibake repair, Unicode
// superscript/subscript conversion, LaTeX math conversion, and
// punctuation canonicalization.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unicode superscript characters and their base equivalents.
var superscripts = map[rune]string{
	'⁰': "0", '¹': "1", '²': "2", '³': "3", '⁴': "4",
	'⁵': "5", '⁶': "6", '⁷': "7", '⁸': "8", '⁹': "9",
	'⁺': "+", '⁻': "-", '⁼': "=", '⁽': "(", '⁾': ")",
	'ⁿ': "n", 'ⁱ': "i",
}

// Unicode subscript characters and their base equivalents.
var subscripts = map[rune]string{
	'₀': "0", '₁': "1", '₂': "2", '₃': "3", '₄': "4",
	'₅': "5", '₆': "6", '₇': "7", '₈': "8", '₉': "9",
	'₊': "+", '₋': "-", '₌': "=", '₍': "(", '₎': ")",
}

// Mojibake byte-sequence artifacts (UTF-8 decoded as Windows-1252) and
// their intended characters. Ordered: longer sequences must be
// replaced before their prefixes (the bare "â€" right-quote remnant).
var mojibakeFixes = []struct{ old, new string }{
	{"â€™", "'"},
	{"â€˜", "'"},
	{"â€œ", `"`},
	{"â€“", " – "},
	{"â€”", " – "},
	{"â€¦", "..."},
	{"â", "'"},
	{"â", `"`},
	{"â", `"`},
	{"â", " – "},
	{"â", " – "},
	{"â€", `"`},
	{"â��", "'"},
	{"Ã¢", "a"},
}

// Residual garbled lead-byte sequences the fixed table missed.
var (
	mojibakeLeadRE  = regexp.MustCompile(`â[\x{0080}-\x{00bf}][\x{0080}-\x{00bf}]`)
	mojibakeTrailRE = regexp.MustCompile(`â[^\w\s]{1,2}`)
)

// Final character substitutions, applied after NFC normalization.
// Dashes become a spaced en-dash for print readability.
var replacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", " – ",
	"—", " – ",
	"…", "...",
	" ", " ",
	"​", "",
	"•", "*",
	"«", `"`,
	"»", `"`,
	"�", "",
)

// Text normalizes extracted text for assembly. Superscript and
// subscript conversion runs first: it must happen before any Unicode
// normalization pass, and the later pass must be the composed form
// (NFC, not NFKC) or the compatibility mapping would flatten the
// superscript code points into plain digits and lose the markup.
// Empty input is returned unchanged.
func Text(s string) string {
	if s == "" {
		return s
	}

	s = SupSub(s)

	for _, fix := range mojibakeFixes {
		s = strings.ReplaceAll(s, fix.old, fix.new)
	}
	s = mojibakeLeadRE.ReplaceAllString(s, "'")
	s = mojibakeTrailRE.ReplaceAllString(s, "'")

	s = norm.NFC.String(s)

	return replacer.Replace(s)
}

// SupSub converts runs of Unicode superscript characters into a single
// <sup> span of their base equivalents, and subscript runs into <sub>
// spans.
func SupSub(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		switch {
		case isSuper(runes[i]):
			b.WriteString("<sup>")
			for i < len(runes) && isSuper(runes[i]) {
				b.WriteString(superscripts[runes[i]])
				i++
			}
			b.WriteString("</sup>")
		case isSub(runes[i]):
			b.WriteString("<sub>")
			for i < len(runes) && isSub(runes[i]) {
				b.WriteString(subscripts[runes[i]])
				i++
			}
			b.WriteString("</sub>")
		default:
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

func isSuper(r rune) bool {
	_, ok := superscripts[r]
	return ok
}

func isSub(r rune) bool {
	_, ok := subscripts[r]
	return ok
}
