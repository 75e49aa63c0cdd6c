package modifier

import (
	"strings"
	"testing"
)

func TestGazetteerExtractorWidensAdjacentPrefix(t *testing.T) {
	paragraph := "approximately 150 meters"
	start := strings.Index(paragraph, "150")
	spans := []Span{{Start: start, End: start + 3}}
	widened := GazetteerExtractor{}.Widen(paragraph, spans)
	if got := paragraph[widened[0].Start:widened[0].End]; got != "approximately 150" {
		t.Errorf("widened span = %q, want %q", got, "approximately 150")
	}
}

func TestGazetteerExtractorWidensWithGap(t *testing.T) {
	// The comma plus single space forms a 2-character gap, within the
	// spec's tolerance, between "approximately" and "150".
	paragraph := "approximately, 150 meters"
	start := strings.Index(paragraph, "150")
	spans := []Span{{Start: start, End: start + 3}}
	widened := GazetteerExtractor{}.Widen(paragraph, spans)
	if widened[0].Start != 0 {
		t.Errorf("expected widening across a 2-character gap, got start=%d", widened[0].Start)
	}
}

func TestGazetteerExtractorDoesNotWidenPastUnit(t *testing.T) {
	// The suffixed modifier "or more" trails the unit, not the bare number,
	// so widening the number span alone must not reach across "meters".
	paragraph := "150 meters or more"
	spans := []Span{{Start: 0, End: 3}}
	widened := GazetteerExtractor{}.Widen(paragraph, spans)
	if got := paragraph[widened[0].Start:widened[0].End]; got != "150" {
		t.Errorf("widened span = %q, want %q", got, "150")
	}
}

func TestGazetteerExtractorWidensSuffixAdjacentToUnit(t *testing.T) {
	paragraph := "150 meters or more"
	spans := []Span{{Start: 0, End: len("150 meters")}}
	widened := GazetteerExtractor{}.Widen(paragraph, spans)
	if got := paragraph[widened[0].Start:widened[0].End]; got != "150 meters or more" {
		t.Errorf("widened span = %q, want %q", got, "150 meters or more")
	}
}

func TestGazetteerExtractorLeavesUnmodifiedSpanAlone(t *testing.T) {
	paragraph := "exactly 150 meters, no modifier nearby here"
	spans := []Span{{Start: 8, End: 11}}
	widened := GazetteerExtractor{}.Widen(paragraph, spans)
	if widened[0] != spans[0] {
		t.Errorf("expected span unchanged, got %+v", widened[0])
	}
}

func TestSortSpans(t *testing.T) {
	in := []Span{{Start: 10, End: 12}, {Start: 0, End: 3}, {Start: 5, End: 9}}
	out := SortSpans(in)
	for i := 1; i < len(out); i++ {
		if out[i-1].Start > out[i].Start {
			t.Fatalf("spans not sorted: %+v", out)
		}
	}
}
