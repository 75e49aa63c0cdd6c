package quantparse

import (
	"regexp"
	"strings"

	"github.com/quinex/quinex/internal/lookups"
)

// reValueSpan matches the longest numeric-looking run at the current
// position: digits, sign, decimal/thousands separators, exponents and
// fractions. Number-word and imprecise-phrase forms are matched separately
// by reNumberWordSpan and reImpreciseSpan (see matchValueSpan).
var reValueSpan = regexp.MustCompile(
	`^[+-]?(?:\d[\d.,']*(?:\^[+-]?\d+)?(?:\s*[*]\s*10\^[+-]?\d+)?(?:\s+\d+/\d+)?|\d+/\d+)`,
)

var reNumberWordSpan *regexp.Regexp
var reImpreciseSpan *regexp.Regexp

func init() {
	// Longest-first, so Go's leftmost-alternation regexp semantics don't
	// match a short word ("seven") as a prefix of a longer one it shadows
	// ("seventeen") before the longer alternative ever gets a chance.
	var words []string
	for _, w := range lookups.SortedNumberWords() {
		words = append(words, regexp.QuoteMeta(w))
	}
	for _, w := range lookups.SortedOrderOfMagnitudeWords() {
		words = append(words, regexp.QuoteMeta(w))
	}
	reNumberWordSpan = regexp.MustCompile(`(?i)^(?:` + strings.Join(words, "|") + `)(?:[\s-](?:and\s+)?(?:` + strings.Join(words, "|") + `))*`)

	var phrases []string
	for _, p := range lookups.SortedImprecisePhrases() {
		phrases = append(phrases, regexp.QuoteMeta(p))
	}
	reImpreciseSpan = regexp.MustCompile(`(?i)^(?:` + strings.Join(phrases, "|") + `)\b`)
}

var (
	reUncertaintyTolerance = regexp.MustCompile(`^\(?\s*±\s*[0-9.,]+\s*[%A-Za-zµμ°/€$£¥]*\s*\)?`)
	reUncertaintyParen     = regexp.MustCompile(`^\([^()]*\)`)
	reUncertaintySDPrefix  = regexp.MustCompile(`(?i)^SD\s*[0-9.,]+\s*[%A-Za-zµμ°/€$£¥]*`)
	reUncertaintySDSuffix  = regexp.MustCompile(`(?i)\s*[0-9.,]+\s*[%A-Za-zµμ°/€$£¥]*\s*SD$`)
	rePrefixedCurrency     = regexp.MustCompile(`^([€$£¥])\s*[\d(]`)
	reYearTag4Digit        = regexp.MustCompile(`^\d{4}\b`)
)

// ExtractSlots matches an individual quantity's surface text against the
// ordered slot grammar of spec.md §4.5.5, returning raw (unnormalized)
// surface text per slot.
func ExtractSlots(text string) Quantity {
	q := Quantity{}
	rest := strings.TrimSpace(text)

	rest, q.PrefixedModifierText = consumeLongestPrefix(rest, lookups.SortedPrefixedModifiers())

	if m := rePrefixedCurrency.FindStringSubmatch(rest); m != nil {
		q.PrefixedUnitText = m[1]
		rest = strings.TrimSpace(rest[len(m[1]):])
	}

	valueSpan := matchValueSpan(rest)
	q.ValueText = valueSpan
	rest = strings.TrimSpace(rest[len(valueSpan):])

	if m := reUncertaintyTolerance.FindString(rest); m != "" {
		q.UncertaintyPreText = m
		rest = strings.TrimSpace(rest[len(m):])
	} else if m := reUncertaintyParen.FindString(rest); m != "" && looksLikeUncertainty(m) {
		q.UncertaintyPreText = m
		rest = strings.TrimSpace(rest[len(m):])
	} else if m := reUncertaintySDPrefix.FindString(rest); m != "" {
		q.UncertaintyPreText = m
		rest = strings.TrimSpace(rest[len(m):])
	}

	rest, q.SuffixedModifierText = consumeLongestSuffix(rest, lookups.SortedSuffixedModifiers())

	if m := reUncertaintySDSuffix.FindString(rest); m != "" {
		q.UncertaintyPostText = strings.TrimSpace(m)
		rest = strings.TrimSpace(rest[:len(rest)-len(m)])
	} else if m := reUncertaintyParen.FindString(strings.TrimSpace(lastParenGroup(rest))); m != "" && looksLikeUncertainty(m) {
		idx := strings.LastIndex(rest, m)
		if idx >= 0 {
			q.UncertaintyPostText = m
			rest = strings.TrimSpace(rest[:idx] + rest[idx+len(m):])
		}
	}

	q.SuffixedUnitText = strings.TrimSpace(rest)
	return q
}

func lastParenGroup(s string) string {
	idx := strings.LastIndex(s, "(")
	if idx < 0 {
		return ""
	}
	return s[idx:]
}

func looksLikeUncertainty(s string) bool {
	lower := strings.ToLower(s)
	if strings.ContainsAny(s, "±") {
		return true
	}
	for _, kw := range []string{"ci", "ui", "cri", "confidence interval", "uncertainty interval", "credible interval", "sd"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	// bare "(L-U)" / "(L to U)" interval shape
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	return regexp.MustCompile(`^[0-9.,+-]+\s*[A-Za-z%]*\s*(-|to|,|;|:)\s*[0-9.,+-]+`).MatchString(strings.TrimSpace(inner))
}

func matchValueSpan(s string) string {
	if m := reValueSpan.FindString(s); m != "" {
		trailing := strings.TrimSpace(s[len(m):])
		if wm := reNumberWordSpan.FindString(trailing); wm != "" {
			return m + " " + wm
		}
		return m
	}
	if m := reNumberWordSpan.FindString(s); m != "" {
		return m
	}
	if m := reImpreciseSpan.FindString(s); m != "" {
		return m
	}
	// single "a"/"an"
	if strings.HasPrefix(strings.ToLower(s), "a ") {
		return s[:1]
	}
	if strings.HasPrefix(strings.ToLower(s), "an ") {
		return s[:2]
	}
	return ""
}

func consumeLongestPrefix(s string, surfaces []string) (string, string) {
	lower := strings.ToLower(s)
	for _, surf := range surfaces {
		ls := strings.ToLower(surf)
		if strings.HasPrefix(lower, ls) {
			next := len(surf)
			if next < len(s) && s[next] != ' ' {
				continue
			}
			return strings.TrimSpace(s[next:]), s[:next]
		}
	}
	return s, ""
}

func consumeLongestSuffix(s string, surfaces []string) (string, string) {
	lower := strings.ToLower(s)
	for _, surf := range surfaces {
		ls := strings.ToLower(surf)
		if strings.HasSuffix(lower, ls) {
			cut := len(s) - len(surf)
			if cut > 0 && s[cut-1] != ' ' {
				continue
			}
			return strings.TrimSpace(s[:cut]), s[cut:]
		}
	}
	return s, ""
}
