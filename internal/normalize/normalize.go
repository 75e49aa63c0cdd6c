// Package normalize canonicalizes a raw quantity span before tokenization:
// Unicode form, sign glyphs, multiplication/division symbols, superscript
// powers, and assorted punctuation quirks (spec.md §4.1).
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var superscriptRunes = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁺': '+', '⁻': '-',
}

var (
	reSuperscriptRun   = regexp.MustCompile(`[⁰¹²³⁴⁵⁶⁷⁸⁹⁺⁻]+`)
	reInternalSpace    = regexp.MustCompile(`\s+`)
	reSplitDecimal     = regexp.MustCompile(`(\d)\.\s+(\d)`)
	reScientific       = regexp.MustCompile(`(\d)e([+-]?\d+)`)
	rePowTenAfterMult  = regexp.MustCompile(`\*\s*10(\d)(?:\D|$)`)
	rePowTenNegDigits  = regexp.MustCompile(`(?:^|[^0-9^])10-(\d)(?:\D|$)`)
	rePowTenSpaceDigit = regexp.MustCompile(`(?:^|[^0-9^])10\s+(\d{1,2})(?:\D|$)`)
	reDoubleStar       = regexp.MustCompile(`\*\*`)
	reLeadingDotNumber = regexp.MustCompile(`(^|[^.\d])\.(\d)`)
	reTrailingDot      = regexp.MustCompile(`([A-Za-z])\.$`)
	reOpenParenNoSpace = regexp.MustCompile(`(\S)\(`)
	reFoldWord         = regexp.MustCompile(`([A-Za-z])fold\b`)
	reRedundantParens  = regexp.MustCompile(`^\((.*)\)$`)
)

// multiplication glyphs recognized only between digits (or digit-adjacent
// spacing), per spec.md §4.1.
var multGlyphs = []rune{'x', '×', '∙', '⋅', '·', '•'}

// Span canonicalizes one raw substring per the ordered rules of spec.md §4.1.
func Span(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(s)

	s = protectSuperscripts(s)
	s = norm.NFKC.String(s)

	s = reInternalSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	s = normalizeSigns(s)
	s = normalizeComparisons(s)
	s = normalizeMultiplicationDivision(s)

	s = reSplitDecimal.ReplaceAllString(s, "$1.$2")

	s = recoverPowersOfTen(s)

	s = strings.ReplaceAll(s, ", and", " and")
	s = strings.TrimSuffix(s, " respectively")
	s = strings.TrimSuffix(s, ", ")

	s = reFoldWord.ReplaceAllString(s, "$1-fold")

	if reTrailingDot.MatchString(s) {
		// only strip a trailing '.' not preceded by a letter; the above
		// match means it WAS preceded by a letter, so leave it.
	} else {
		s = strings.TrimSuffix(s, ".")
	}

	if m := reRedundantParens.FindStringSubmatch(s); m != nil && balanced(m[1]) {
		s = m[1]
	}
	s = reOpenParenNoSpace.ReplaceAllString(s, "$1 (")
	s = reLeadingDotNumber.ReplaceAllString(s, "${1}0.$2")

	return s
}

// protectSuperscripts inserts '^' before a run of superscript digits/signs
// and converts the run to its plain-digit form, so NFKC's own superscript
// folding cannot silently merge "10²³" into "1023".
func protectSuperscripts(s string) string {
	return reSuperscriptRun.ReplaceAllStringFunc(s, func(run string) string {
		var b strings.Builder
		b.WriteByte('^')
		for _, r := range run {
			if plain, ok := superscriptRunes[r]; ok {
				b.WriteRune(plain)
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	})
}

func normalizeSigns(s string) string {
	for _, v := range []string{"‐", "‑", "‒", "–", "—", "−"} {
		s = strings.ReplaceAll(s, v, "-")
	}
	s = strings.ReplaceAll(s, "+/-", "±")
	s = strings.ReplaceAll(s, "+-", "±")
	s = strings.ReplaceAll(s, "-/+", "∓")
	s = strings.ReplaceAll(s, "-+", "∓")
	return s
}

func normalizeComparisons(s string) string {
	repl := []struct{ from, to string }{
		{"<=>", "⇔"},
		{"!=", "≠"},
		{">=", "≥"},
		{"<=", "≤"},
		{"<<", "≪"},
		{">>", "≫"},
	}
	for _, r := range repl {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}

func normalizeMultiplicationDivision(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	isDigit := func(i int) bool { return i >= 0 && i < len(runes) && runes[i] >= '0' && runes[i] <= '9' }
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '⁄' || r == '÷' {
			out = append(out, '/')
			continue
		}
		if isMultGlyph(r) {
			// require digit-space ... space-digit shape on both sides
			leftOK := i > 0 && runes[i-1] == ' ' && isDigit(i-2)
			rightOK := i < len(runes)-1 && runes[i+1] == ' ' && isDigit(i+2)
			if leftOK && rightOK {
				out = append(out, '*')
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}

func isMultGlyph(r rune) bool {
	for _, g := range multGlyphs {
		if r == g {
			return true
		}
	}
	return false
}

func recoverPowersOfTen(s string) string {
	s = reDoubleStar.ReplaceAllString(s, "^")
	s = reScientific.ReplaceAllString(s, "$1*10^$2")
	// "10-3" -> "10^-3", but never immediately after a caret (already a power)
	// and only for a single-digit exponent: a two-or-more digit exponent is
	// more likely a range bound ("10-15 min" must stay the range 10 to 15,
	// not become 10^-15), per spec.md §4.1.
	s = rePowTenNegDigits.ReplaceAllStringFunc(s, func(m string) string {
		sub := rePowTenNegDigits.FindStringSubmatch(m)
		tail := ""
		if last := m[len(m)-1]; last < '0' || last > '9' {
			tail = string(last)
		}
		prefix := m[:len(m)-len("10-"+sub[1])-len(tail)]
		return prefix + "10^-" + sub[1] + tail
	})
	// "10 15" -> "10^15" only for short (<=2 digit) exponents, to avoid
	// colliding with a following range bound like "10 150 km".
	s = rePowTenSpaceDigit.ReplaceAllStringFunc(s, func(m string) string {
		sub := rePowTenSpaceDigit.FindStringSubmatch(m)
		tail := ""
		if last := m[len(m)-1]; last < '0' || last > '9' {
			tail = string(last)
		}
		prefix := m[:len(m)-len("10 "+sub[1])-len(tail)]
		return prefix + "10^" + sub[1] + tail
	})
	// "* 10N" (N single digit, following a multiplication) -> "*10^N"
	s = rePowTenAfterMult.ReplaceAllString(s, "*10^$1")
	return s
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}
