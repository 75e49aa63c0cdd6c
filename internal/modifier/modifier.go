// Package modifier implements the gazetteer-based quantity-modifier
// extractor collaborator (spec.md §6): given a paragraph and a set of
// quantity-candidate spans, it widens each span to include an adjacent
// modifier phrase ("approximately", "at least", "or more") that the core
// parser's own slot grammar only recognizes when directly touching the
// quantity. The core treats this collaborator as opaque and consumes only
// the widened spans it returns.
package modifier

import (
	"strings"

	"github.com/quinex/quinex/internal/lookups"
)

// Span identifies a half-open byte range [Start, End) within a paragraph.
type Span struct {
	Start, End int
}

// maxGap is the largest run of non-modifier characters (spec.md §6: "within
// a 2-character gap") tolerated between a modifier phrase and the span it
// modifies.
const maxGap = 2

// Extractor widens quantity-candidate spans to include adjacent modifier
// phrases. Implementations must not reorder or drop spans.
type Extractor interface {
	Widen(paragraph string, spans []Span) []Span
}

// GazetteerExtractor is the default Extractor, grounded on the prefixed and
// suffixed modifier surface tables curated in internal/lookups.
type GazetteerExtractor struct{}

// Widen implements Extractor.
func (GazetteerExtractor) Widen(paragraph string, spans []Span) []Span {
	out := make([]Span, len(spans))
	prefixes := lookups.SortedPrefixedModifiers()
	suffixes := lookups.SortedSuffixedModifiers()
	for i, sp := range spans {
		start := widenLeft(paragraph, sp.Start, prefixes)
		end := widenRight(paragraph, sp.End, suffixes)
		out[i] = Span{Start: start, End: end}
	}
	return out
}

// widenLeft looks backward from pos for a gap of at most maxGap characters,
// entirely composed of gap bytes, followed by a prefixed-modifier surface;
// if found it returns the surface's start offset, otherwise pos unchanged.
func widenLeft(paragraph string, pos int, surfaces []string) int {
	for gap := 0; gap <= maxGap; gap++ {
		boundary := pos - gap
		if boundary < 0 {
			break
		}
		if !allGapBytes(paragraph[boundary:pos]) {
			continue
		}
		if s, ok := matchSuffixEndingAt(paragraph, boundary, surfaces); ok {
			return s
		}
	}
	return pos
}

// widenRight mirrors widenLeft for suffixed-modifier surfaces.
func widenRight(paragraph string, pos int, surfaces []string) int {
	for gap := 0; gap <= maxGap; gap++ {
		boundary := pos + gap
		if boundary > len(paragraph) {
			break
		}
		if !allGapBytes(paragraph[pos:boundary]) {
			continue
		}
		if e, ok := matchPrefixStartingAt(paragraph, boundary, surfaces); ok {
			return e
		}
	}
	return pos
}

func allGapBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isGapByte(s[i]) {
			return false
		}
	}
	return true
}

func isGapByte(b byte) bool {
	return b == ' ' || b == ',' || b == ';'
}

// matchSuffixEndingAt reports whether some surface in surfaces ends exactly
// at boundary, returning the surface's start offset.
func matchSuffixEndingAt(paragraph string, boundary int, surfaces []string) (int, bool) {
	lower := strings.ToLower(paragraph[:boundary])
	for _, surf := range surfaces {
		ls := strings.ToLower(surf)
		if strings.HasSuffix(lower, ls) {
			return boundary - len(surf), true
		}
	}
	return 0, false
}

// matchPrefixStartingAt reports whether some surface in surfaces starts
// exactly at boundary, returning the surface's end offset.
func matchPrefixStartingAt(paragraph string, boundary int, surfaces []string) (int, bool) {
	rest := strings.ToLower(paragraph[boundary:])
	for _, surf := range surfaces {
		ls := strings.ToLower(surf)
		if strings.HasPrefix(rest, ls) {
			return boundary + len(surf), true
		}
	}
	return 0, false
}

// SortSpans orders spans ascending by start offset, breaking ties by end
// offset, so a caller merging widened spans back into text processes them
// left to right.
func SortSpans(spans []Span) []Span {
	out := append([]Span(nil), spans...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && spanLess(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func spanLess(a, b Span) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}
