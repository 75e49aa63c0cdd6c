package quantparse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/quinex/quinex/internal/lookups"
)

type sepKind string

const (
	sepList     sepKind = "list_separator"
	sepRange    sepKind = "range_separator"
	sepMultidim sepKind = "multidim_separator"
	sepRatio    sepKind = "ratio_separator"
)

type foundSep struct {
	start, end int
	surface    string
	kind       sepKind
}

var digitBefore = regexp.MustCompile(`[\d%]\s*$`)
var digitAfter = regexp.MustCompile(`^\s*[\d(]`)

// candidateSeparators are tried longest-first at each position.
var candidateSeparators = buildCandidateSeparators()

func buildCandidateSeparators() []struct {
	surface string
	kind    sepKind
} {
	base := []struct {
		surface string
		kind    sepKind
	}{
		{", and ", sepList},
		{", or ", sepList},
		{" and ", sepList},
		{" or ", sepList},
		{", ", sepList},
		{" to ", sepRange},
		{" x ", sepMultidim},
		{" X ", sepMultidim},
		{" × ", sepMultidim},
		{" by ", sepMultidim},
		{" times ", sepMultidim},
		{"-", sepRange},
		{":", sepRatio},
	}

	// lookups.MultiWordSeparators ("out of", "out of the") signal a ratio
	// phrasing ("3 out of 5"); "of the" alone is too generic a phrase to
	// treat as a separator outside that context.
	multiWord := append([]string(nil), lookups.MultiWordSeparators...)
	sort.Slice(multiWord, func(i, j int) bool { return len(multiWord[i]) > len(multiWord[j]) })
	for _, surf := range multiWord {
		if surf == "of the" {
			continue
		}
		base = append(base, struct {
			surface string
			kind    sepKind
		}{" " + surf + " ", sepRatio})
	}
	return base
}

// protectedRanges marks byte ranges of s that must not be split: balanced
// parenthesized groups, and uncertainty-expression-looking spans such as
// "± 3.7%".
func protectedRanges(s string) [][2]int {
	var ranges [][2]int
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				ranges = append(ranges, [2]int{start, i + 1})
				start = -1
			}
		}
	}

	reTolerance := regexp.MustCompile(`±\s*[0-9.,]+\s*%?`)
	for _, loc := range reTolerance.FindAllStringIndex(s, -1) {
		ranges = append(ranges, [2]int{loc[0], loc[1]})
	}
	return ranges
}

func insideProtected(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// findTopLevelSeparators scans s for separator occurrences outside any
// protected range, preferring the longest candidate match at each position.
func findTopLevelSeparators(s string) []foundSep {
	protected := protectedRanges(s)
	var found []foundSep

	i := 0
	for i < len(s) {
		if insideProtected(protected, i) {
			i++
			continue
		}
		matched := false
		for _, cand := range candidateSeparators {
			if !strings.HasPrefix(s[i:], cand.surface) {
				continue
			}
			if insideProtected(protected, i+len(cand.surface)-1) {
				continue
			}
			if cand.surface == "-" {
				if !digitBefore.MatchString(s[:i]) || !digitAfter.MatchString(s[i+1:]) {
					continue
				}
				// avoid splitting inside alphabetic compounds like "three-dimensional"
				if i > 0 && isAlpha(rune(s[i-1])) && i+1 < len(s) && isAlpha(rune(s[i+1])) {
					continue
				}
			}
			if cand.surface == ":" {
				if !digitBefore.MatchString(s[:i]) || !digitAfter.MatchString(s[i+1:]) {
					continue
				}
			}
			// "one hundred and twenty three": an "and" between a magnitude word
			// and a number word joins one number-word phrase, not a list.
			if cand.surface == " and " {
				before := strings.Fields(s[:i])
				after := strings.Fields(s[i+len(cand.surface):])
				if len(before) > 0 && len(after) > 0 {
					_, magBefore := lookups.OrderOfMagnitudeWords[strings.ToLower(before[len(before)-1])]
					_, wordAfter := lookups.NumberWords[strings.ToLower(after[0])]
					if magBefore && wordAfter {
						continue
					}
				}
			}
			found = append(found, foundSep{start: i, end: i + len(cand.surface), surface: cand.surface, kind: cand.kind})
			i += len(cand.surface)
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return found
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Segment splits s into individual-quantity surface texts and the
// separators between them, and classifies the overall superstructure type
// per spec.md §4.5.4.
func Segment(s string) ([]string, []Separator, SuperstructureType) {
	seps := findTopLevelSeparators(s)
	if len(seps) == 0 {
		return []string{strings.TrimSpace(s)}, nil, TypeSingleQuantity
	}

	var parts []string
	var separators []Separator
	last := 0
	for _, sep := range seps {
		parts = append(parts, strings.TrimSpace(s[last:sep.start]))
		separators = append(separators, Separator{Surface: sep.surface, Role: string(sep.kind)})
		last = sep.end
	}
	parts = append(parts, strings.TrimSpace(s[last:]))

	kind := unanimousKind(seps)
	superType := classify(kind, len(parts))

	if strings.Contains(strings.ToLower(parts[0]), "between") && superType == TypeList {
		superType = TypeRange
	}

	return parts, separators, superType
}

func unanimousKind(seps []foundSep) sepKind {
	if len(seps) == 0 {
		return ""
	}
	k := seps[0].kind
	for _, s := range seps[1:] {
		if s.kind != k {
			return ""
		}
	}
	return k
}

func classify(kind sepKind, nParts int) SuperstructureType {
	switch kind {
	case sepList:
		return TypeList
	case sepRange:
		if nParts == 2 {
			return TypeRange
		}
		return TypeUnknown
	case sepMultidim:
		return TypeMultidim
	case sepRatio:
		return TypeRatio
	default:
		return TypeUnknown
	}
}
