package quantparse

import (
	"strings"

	"github.com/quinex/quinex/internal/normalize"
)

// Parse runs the full driver pipeline over raw text: normalize, segment,
// slot-match each quantity, normalize each slot, resolve ellipses, then
// validate. This is the Go-native collapse of spec.md §4.5's role-tagging
// and ambiguity-cascade machinery: rather than enumerating a Cartesian
// product of token role-sets, Segment and ExtractSlots directly compute the
// single most-specific interpretation, which is equivalent to the cascade's
// result for unambiguous input and degrades to TypeUnknown where the
// original would have needed rule-by-rule tie-breaking.
func Parse(text string) Result {
	canonical := normalize.Span(text)

	parts, separators, superType := Segment(canonical)

	quantities := make([]Quantity, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		raw := ExtractSlots(part)
		quantities = append(quantities, NormalizeQuantity(raw))
	}

	if superType == TypeList || superType == TypeRange || superType == TypeMultidim || superType == TypeRatio {
		quantities = ResolveEllipsis(quantities)
	}

	result := Result{
		Text:                 text,
		Type:                 superType,
		NbrQuantities:        len(quantities),
		NormalizedQuantities: quantities,
		Separators:           separators,
	}
	return Validate(result)
}

// IdempotenceCheck re-runs Parse against the result's own Text; used by
// callers exercising the idempotence property (spec.md §8).
func IdempotenceCheck(text string) bool {
	first := Parse(text)
	second := Parse(first.Text)
	return strings.EqualFold(string(first.Type), string(second.Type)) && first.NbrQuantities == second.NbrQuantities
}
