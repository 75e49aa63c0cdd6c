// Package units implements the unit linker (spec.md §4.3): resolving a raw
// unit string to one or more dimension-bearing URIs, with compound
// decomposition/aggregation via dimensional analysis.
package units

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/currencysvc"
	"github.com/quinex/quinex/internal/lookups"
)

// Component is one linked piece of a (possibly compound) unit expression.
type Component struct {
	Surface  string
	Exponent int
	URI      string
	Year     *int
}

var (
	reTrailingDot  = regexp.MustCompile(`\.$`)
	reLeadingDash  = regexp.MustCompile(`^-`)
	reDoubleStar   = regexp.MustCompile(`\*\*`)
	reMultGlyph    = regexp.MustCompile(`[x×∙⋅·•]`)
	rePerWord      = regexp.MustCompile(`(?i)\bper\b`)
	reTrailingPunc = regexp.MustCompile(`[.,;:]+$`)
	reYearTag      = regexp.MustCompile(`^\{?_?(\d{4})\}?$`)
	reDigitLetter  = regexp.MustCompile(`(\d)([A-Za-z])`)
	reLetterDigit  = regexp.MustCompile(`([A-Za-z])(\d)`)
	reCaretExp     = regexp.MustCompile(`^\^(-?\d+)$`)
)

// normalizeUnitSpan retries a surface that failed direct lookup, per
// spec.md §4.3 "normalized-form retry".
func normalizeUnitSpan(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reLeadingDash.ReplaceAllString(s, "")
	s = reTrailingDot.ReplaceAllString(s, "")
	s = reDoubleStar.ReplaceAllString(s, "^")
	s = reMultGlyph.ReplaceAllString(s, " ")
	s = rePerWord.ReplaceAllString(s, "/")
	s = strings.ReplaceAll(s, " %", "%")
	s = strings.ReplaceAll(s, "% ", "%")
	s = strings.ReplaceAll(s, " ‰", "‰")
	s = strings.ReplaceAll(s, "‰ ", "‰")
	s = reTrailingPunc.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// DirectMatch resolves a surface via the symbol map (case-sensitive), then
// the label map (lowercased), applying the priority map when a surface maps
// to more than one URI. Returns ("", false) when no link could be made, and
// ("", true) when the surface is recognized but priority resolution yields
// no winner ("blocked").
func DirectMatch(surface string) (string, bool) {
	if uris, ok := lookups.UnitSymbolLookup[surface]; ok {
		if uri, resolved := resolveCandidates(surface, uris); resolved {
			return uri, true
		}
		return "", len(uris) > 0
	}
	lower := strings.ToLower(surface)
	if uris, ok := lookups.UnitLabelLookup[lower]; ok {
		if uri, resolved := resolveCandidates(surface, uris); resolved {
			return uri, true
		}
		return "", len(uris) > 0
	}
	if strings.HasSuffix(lower, "s") {
		trimmed := strings.TrimSuffix(lower, "s")
		if uris, ok := lookups.UnitLabelLookup[trimmed]; ok {
			if uri, resolved := resolveCandidates(surface, uris); resolved {
				return uri, true
			}
			return "", len(uris) > 0
		}
	}
	return "", false
}

func resolveCandidates(surface string, uris []string) (string, bool) {
	if len(uris) == 1 {
		return uris[0], true
	}
	if priorities, ok := lookups.AmbiguousUnitPriorities[surface]; ok {
		best := ""
		bestPriority := 0
		found := false
		for _, uri := range uris {
			p, present := priorities[uri]
			if !present || p == nil {
				continue
			}
			if !found || *p < bestPriority {
				best, bestPriority, found = uri, *p, true
			}
		}
		if found {
			return best, true
		}
	}
	return "", false
}

// LinkUnit attempts direct match, then normalized-form retry, per spec.md
// §4.3. Returns "" when nothing links.
func LinkUnit(surface string) string {
	if uri, ok := DirectMatch(surface); ok && uri != "" {
		return uri
	}
	normalized := normalizeUnitSpan(surface)
	if normalized != surface {
		if uri, ok := DirectMatch(normalized); ok && uri != "" {
			return uri
		}
	}
	if uri := linkCurrencyCode(surface); uri != "" {
		return uri
	}
	return ""
}

// linkCurrencyCode handles an ISO 4217 code or currency symbol with no
// static gazetteer entry, for currencies not present in the curated
// lookups.UnitEntries table (spec.md §4.3's currency case never enumerates
// every world currency).
func linkCurrencyCode(surface string) string {
	code, ok := currencysvc.NormalizeSymbol(strings.TrimSpace(surface))
	if !ok {
		return ""
	}
	uri := "quinex:currency:" + strings.ToLower(code)
	if _, ok := lookups.UnitsByURI[uri]; ok {
		return uri
	}
	return ""
}

// ParseUnit links a (possibly compound) unit string into a list of
// components, per spec.md §6 "parse_unit". groupExponent scales every
// resulting exponent, for use when a parenthesized group recurses.
func ParseUnit(text string, groupExponent int) ([]Component, bool) {
	if groupExponent == 0 {
		groupExponent = 1
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	if uri, ok := DirectMatch(trimmed); ok && uri != "" {
		return []Component{{Surface: trimmed, Exponent: groupExponent, URI: uri}}, true
	}

	comps, ok := decompose(trimmed, groupExponent)
	if ok {
		return comps, true
	}

	stripped := strings.ReplaceAll(trimmed, " ", "")
	if uri := LinkUnit(stripped); uri != "" {
		return []Component{{Surface: trimmed, Exponent: groupExponent, URI: uri}}, true
	}
	return nil, false
}

type rawToken struct {
	text       string
	isDivision bool // a '/' immediately preceded this token
}

// decompose tokenizes a compound unit string and attempts to link each
// token, inferring each component's exponent from neighboring '/' and '^N'
// tokens, per spec.md §4.3 "compound decomposition". Aborts if any token is
// used twice or if any token goes unused.
func decompose(s string, groupExponent int) ([]Component, bool) {
	tokens := tokenizeUnitExpr(s)
	if len(tokens) == 0 {
		return nil, false
	}

	var comps []Component
	used := make([]bool, len(tokens))
	sign := 1

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.isDivision {
			sign = -1
		}

		if strings.HasPrefix(tok.text, "(") && strings.HasSuffix(tok.text, ")") {
			inner := tok.text[1 : len(tok.text)-1]
			innerExp := sign
			if i+1 < len(tokens) {
				if e, ok := exponentFromToken(tokens[i+1].text); ok {
					innerExp *= e
					used[i+1] = true
					i++
				}
			}
			sub, ok := decompose(inner, innerExp*groupExponent)
			if !ok {
				return nil, false
			}
			comps = append(comps, sub...)
			used[i] = true
			sign = 1
			continue
		}

		if used[i] {
			continue
		}

		if e, ok := exponentFromToken(tok.text); ok {
			_ = e
			return nil, false // orphan exponent not consumed by a preceding link
		}

		uri := LinkUnit(tok.text)
		if uri == "" {
			return nil, false // unlinkable token left over (spec.md §4.3: abort if any token goes unused)
		}

		exp := sign
		var year *int
		if i+1 < len(tokens) {
			next := tokens[i+1].text
			if e, ok := exponentFromToken(next); ok {
				exp *= e
				used[i+1] = true
				i++
			} else if lookups.UnitsByURI[uri].IsCurrency {
				if y, ok := matchYear(next); ok {
					year = &y
					used[i+1] = true
					i++
				}
			}
		}
		used[i] = true
		comps = append(comps, Component{Surface: tok.text, Exponent: exp, URI: uri, Year: year})
		sign = 1
	}

	if len(comps) == 0 {
		return nil, false
	}
	if groupExponent != 1 {
		for i := range comps {
			comps[i].Exponent *= groupExponent
		}
	}

	seen := make(map[string]bool)
	for _, c := range comps {
		key := c.URI
		if seen[key] {
			return nil, false // a token used twice
		}
		seen[key] = true
	}
	return comps, true
}

func exponentFromToken(t string) (int, bool) {
	if m := reCaretExp.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if n, err := strconv.Atoi(t); err == nil {
		return n, true
	}
	return 0, false
}

func matchYear(t string) (int, bool) {
	m := reYearTag.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}

// tokenizeUnitExpr splits on whitespace, '/', '*', '^', while keeping
// parenthesized groups intact and recording which tokens were preceded by
// a division operator.
func tokenizeUnitExpr(s string) []rawToken {
	s = reDoubleStar.ReplaceAllString(s, "^")
	var tokens []rawToken
	divNext := false
	depth := 0
	var cur strings.Builder

	flush := func() {
		t := strings.TrimSpace(cur.String())
		if t != "" {
			tokens = append(tokens, rawToken{text: t, isDivision: divNext})
			divNext = false
		}
		cur.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '(':
			if depth == 0 {
				flush()
			}
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			cur.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case depth > 0:
			cur.WriteRune(r)
		case r == ' ':
			flush()
		case r == '/':
			flush()
			divNext = true
		case r == '*':
			flush()
		case r == '^':
			flush()
			cur.WriteRune('^')
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	var split []rawToken
	for _, t := range tokens {
		if t.text == "" {
			continue
		}
		if strings.HasPrefix(t.text, "(") {
			split = append(split, t)
			continue
		}
		parts := splitDigitLetterBoundary(t.text)
		for j, p := range parts {
			dv := t.isDivision && j == 0
			split = append(split, rawToken{text: p, isDivision: dv})
		}
	}
	return split
}

func splitDigitLetterBoundary(s string) []string {
	if strings.HasPrefix(s, "^") {
		return []string{s}
	}
	s2 := reDigitLetter.ReplaceAllString(s, "$1 $2")
	s2 = reLetterDigit.ReplaceAllString(s2, "$1 $2")
	return strings.Fields(s2)
}

// Aggregate attempts to collapse a multi-component decomposition into a
// single URI via dimensional analysis, per spec.md §4.3 "compound
// aggregation". Returns ("", false) when no collapse applies.
func Aggregate(comps []Component, originalSurface string) (string, bool) {
	if len(comps) < 2 {
		return "", false
	}

	dim := lookups.DimensionVector{}
	mult := decimal.NewFromInt(1)
	systems := map[string]bool{}
	firstSystemSet := false

	for _, c := range comps {
		entry, ok := lookups.UnitsByURI[c.URI]
		if !ok {
			return "", false
		}
		if entry.IsCurrency || c.Year != nil {
			return "", false
		}
		if entry.ConversionMultiplier.IsZero() && entry.Kind != lookups.KindOrdinary {
			return "", false
		}
		dim = dim.Add(entry.DimensionVector.Scale(c.Exponent))
		mult = mult.Mul(pow(entry.ConversionMultiplier, c.Exponent))

		set := map[string]bool{}
		for _, s := range entry.ApplicableSystems {
			set[s] = true
		}
		if !firstSystemSet {
			systems = set
			firstSystemSet = true
		} else {
			for s := range systems {
				if !set[s] {
					delete(systems, s)
				}
			}
		}
	}
	if len(systems) == 0 {
		return "", false
	}
	if !dim.IsZero() {
		dim.Dimensionless = 0
	}

	var candidates []lookups.UnitEntry
	for _, e := range lookups.UnitEntries {
		if e.IsCurrency {
			continue
		}
		if !e.DimensionVector.Equal(dim) {
			continue
		}
		if !e.ConversionMultiplier.Equal(mult) {
			continue
		}
		sharesSystem := false
		for _, s := range e.ApplicableSystems {
			if systems[s] {
				sharesSystem = true
				break
			}
		}
		if !sharesSystem {
			continue
		}
		candidates = append(candidates, e)
	}

	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0].URI, true
	default:
		stripped := strings.ReplaceAll(originalSurface, " ", "")
		best := candidates[0].URI
		bestScore := -1.0
		for _, c := range candidates {
			for _, surf := range append(append([]string{}, c.Symbols...), c.Labels...) {
				score := similarity(stripped, strings.ReplaceAll(surf, " ", ""))
				if score > bestScore {
					bestScore = score
					best = c.URI
				}
			}
		}
		return best, true
	}
}

func pow(base decimal.Decimal, exp int) decimal.Decimal {
	if exp == 0 {
		return decimal.NewFromInt(1)
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := decimal.NewFromInt(1)
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	if neg {
		result = decimal.NewFromInt(1).DivRound(result, 34)
	}
	return result
}

// similarity returns a normalized string-similarity score in [0, 1] based on
// Levenshtein edit distance. No fuzzy-matching library is demonstrated
// anywhere in the retrieved corpus, so this is a deliberate standard-library
// fallback (see DESIGN.md).
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	d := levenshtein(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(d)/float64(maxLen)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
