package normalize

import (
	"regexp"
	"strings"
)

// LaTeX commands and their Unicode glyphs, applied in order.
var latexSymbols = []struct{ cmd, glyph string }{
	{`\times`, "×"},
	{`\cdot`, "·"},
	{`\div`, "÷"},
	{`\pm`, "±"},
	{`\mp`, "∓"},
	{`\leq`, "≤"},
	{`\geq`, "≥"},
	{`\neq`, "≠"},
	{`\approx`, "≈"},
	{`\infty`, "∞"},
	{`\alpha`, "α"},
	{`\beta`, "β"},
	{`\gamma`, "γ"},
	{`\delta`, "δ"},
	{`\epsilon`, "ε"},
	{`\theta`, "θ"},
	{`\lambda`, "λ"},
	{`\mu`, "μ"},
	{`\pi`, "π"},
	{`\sigma`, "σ"},
	{`\omega`, "ω"},
	{`\sum`, "Σ"},
	{`\prod`, "Π"},
	{`\sqrt`, "√"},
	{`\log`, "log"},
	{`\ln`, "ln"},
	{`\sin`, "sin"},
	{`\cos`, "cos"},
	{`\tan`, "tan"},
	{`\exp`, "exp"},
	{`\,`, " "},
	{`\ `, " "},
	{`\!`, ""},
}

var (
	inlineMathRE  = regexp.MustCompile(`(?s)\\\((.+?)\\\)`)
	displayMathRE = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
	superRE       = regexp.MustCompile(`\^\{([^}]+)\}|\^([^\s{}\\])`)
	subRE         = regexp.MustCompile(`_\{([^}]+)\}|_([^\s{}\\])`)
	commandRE     = regexp.MustCompile(`\\[a-zA-Z]+`)
	bareNumberRE  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Math converts LaTeX math snippets (\(...\), \[...\], and $...$ that
// is not a bare-integer currency amount) into readable text with
// <sup>/<sub> spans. Unrecognized commands and residual braces are
// stripped. Empty input is returned unchanged.
func Math(s string) string {
	if s == "" {
		return s
	}

	s = inlineMathRE.ReplaceAllStringFunc(s, func(m string) string {
		return latexExpression(inlineMathRE.FindStringSubmatch(m)[1])
	})
	s = displayMathRE.ReplaceAllStringFunc(s, func(m string) string {
		return latexExpression(displayMathRE.FindStringSubmatch(m)[1])
	})

	return dollarMath(s)
}

// latexExpression converts a single LaTeX expression to HTML.
func latexExpression(latex string) string {
	result := latex
	for _, sym := range latexSymbols {
		result = strings.ReplaceAll(result, sym.cmd, sym.glyph)
	}

	result = superRE.ReplaceAllString(result, "<sup>${1}${2}</sup>")
	result = subRE.ReplaceAllString(result, "<sub>${1}${2}</sub>")

	// Strip unknown commands and leftover braces.
	result = commandRE.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, "{", "")
	result = strings.ReplaceAll(result, "}", "")

	return strings.TrimSpace(result)
}

// dollarMath converts $...$ spans. This is a manual scan because the
// currency guards need the characters around the span: an opening $
// preceded by \ or $ does not start math, and a closing $ followed by
// a digit ends a price range, not math. Spans holding a bare number
// are kept verbatim.
func dollarMath(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '$' || (i > 0 && (s[i-1] == '\\' || s[i-1] == '$')) {
			b.WriteByte(s[i])
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '$')
		if end < 0 || end == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		end += i + 1

		if end+1 < len(s) && s[end+1] >= '0' && s[end+1] <= '9' {
			b.WriteByte(s[i])
			i++
			continue
		}

		content := s[i+1 : end]
		if bareNumberRE.MatchString(strings.TrimSpace(content)) {
			b.WriteString(s[i : end+1])
		} else {
			b.WriteString(latexExpression(content))
		}
		i = end + 1
	}
	return b.String()
}
