package quinex

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/modifier"
)

func decFromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestParsePublicAPI(t *testing.T) {
	result, err := Parse("12.5 ± 3.7%", ParseOptions{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Type != TypeSingleQuantity {
		t.Errorf("Type = %v, want single_quantity", result.Type)
	}
	if result.NbrQuantities != 1 {
		t.Errorf("NbrQuantities = %d, want 1", result.NbrQuantities)
	}
}

func TestParseSurfacesCollapsedCompoundUnit(t *testing.T) {
	result, err := Parse("500 kg*m^2/s^2", ParseOptions{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.NbrQuantities != 1 {
		t.Fatalf("NbrQuantities = %d, want 1", result.NbrQuantities)
	}
	unit := result.NormalizedQuantities[0].SuffixedUnit
	if unit == nil {
		t.Fatal("expected a linked suffixed unit")
	}
	if unit.CollapsedURI != "quinex:energy:joule" {
		t.Errorf("CollapsedURI = %q, want quinex:energy:joule", unit.CollapsedURI)
	}
}

func TestAggregateUnitCollapsesCompoundToJoule(t *testing.T) {
	comps, ok := ParseUnit("kg*m^2/s^2", 1)
	if !ok {
		t.Fatal("ParseUnit(kg*m^2/s^2) failed")
	}
	uri, ok := AggregateUnit(comps, "kg*m^2/s^2")
	if !ok {
		t.Fatal("expected AggregateUnit to collapse the compound to a single unit")
	}
	if uri != "quinex:energy:joule" {
		t.Errorf("AggregateUnit URI = %q, want quinex:energy:joule", uri)
	}
}

func TestParseSimplifyCollapsesUncertainty(t *testing.T) {
	result, err := Parse("2.25 (95% CI 1.92-2.65)", ParseOptions{Simplify: true})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	q := result.NormalizedQuantities[0]
	if q.UncertaintyExprPreUnit != nil || q.UncertaintyExprPostUnit != nil {
		t.Error("expected uncertainty slots collapsed under Simplify")
	}
}

func TestParseStrictModePromotesFailure(t *testing.T) {
	_, err := Parse("this is not a quantity", ParseOptions{ErrorIfNoSuccess: true})
	if err == nil {
		t.Fatal("expected StrictError for a non-quantity input in strict mode")
	}
	if _, ok := err.(*StrictError); !ok {
		t.Errorf("error type = %T, want *StrictError", err)
	}
}

func TestParseUnitPublicAPI(t *testing.T) {
	comps, ok := ParseUnit("km", 1)
	if !ok {
		t.Fatal("ParseUnit(km) failed")
	}
	if len(comps) != 1 || comps[0].URI != "quinex:length:kilometer" {
		t.Fatalf("unexpected components: %+v", comps)
	}
}

func TestParseWithModifierExtractorBridgesGap(t *testing.T) {
	// "approximately, 150" has a 2-character gap (comma + space) that the
	// core's own adjacency-only slot grammar would not bridge on its own.
	result, err := Parse("approximately, 150 meters", ParseOptions{ModifierExtractor: modifier.GazetteerExtractor{}})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.NbrQuantities != 1 {
		t.Fatalf("NbrQuantities = %d, want 1", result.NbrQuantities)
	}
	q := result.NormalizedQuantities[0]
	if q.PrefixedModifier == nil || q.PrefixedModifier.Normalized == nil {
		t.Fatal("expected the gap-separated modifier to be recognized once widened")
	}
	if *q.PrefixedModifier.Normalized != ModApprox {
		t.Errorf("PrefixedModifier = %v, want %v", *q.PrefixedModifier.Normalized, ModApprox)
	}
}

func TestConvertPublicAPI(t *testing.T) {
	out, ok := Convert(nil, decFromInt(1000), "quinex:length:meter", "quinex:length:kilometer", nil, nil)
	if !ok {
		t.Fatal("Convert(m, km) failed")
	}
	if !out.Equal(decFromInt(1)) {
		t.Errorf("Convert(1000 m to km) = %s, want 1", out)
	}
}
