package quantparse

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decFromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestParseSingleQuantityWithApproxModifier(t *testing.T) {
	r := Parse("about 344 million €")
	if r.Type != TypeSingleQuantity {
		t.Fatalf("Type = %v, want single_quantity", r.Type)
	}
	if r.NbrQuantities != 1 {
		t.Fatalf("NbrQuantities = %d, want 1", r.NbrQuantities)
	}
	q := r.NormalizedQuantities[0]
	if q.Value == nil || q.Value.Normalized == nil || q.Value.Normalized.NumericValue == nil {
		t.Fatal("expected a normalized numeric value")
	}
	if !q.Value.Normalized.NumericValue.Equal(decFromInt(344_000_000)) {
		t.Errorf("value = %s, want 344000000", q.Value.Normalized.NumericValue)
	}
}

func TestParseRangeOfRates(t *testing.T) {
	r := Parse("$0.07/kWh to $0.16/kWh")
	if r.Type != TypeRange {
		t.Fatalf("Type = %v, want range", r.Type)
	}
	if r.NbrQuantities != 2 {
		t.Fatalf("NbrQuantities = %d, want 2", r.NbrQuantities)
	}
}

func TestParseToleranceUncertainty(t *testing.T) {
	r := Parse("12.5 ± 3.7%")
	if r.Type != TypeSingleQuantity {
		t.Fatalf("Type = %v, want single_quantity", r.Type)
	}
	q := r.NormalizedQuantities[0]
	if q.UncertaintyExprPreUnit == nil || q.UncertaintyExprPreUnit.Normalized == nil {
		t.Fatal("expected a normalized tolerance uncertainty")
	}
	if q.UncertaintyExprPreUnit.Normalized.Type != "tolerance" {
		t.Errorf("uncertainty type = %s, want tolerance", q.UncertaintyExprPreUnit.Normalized.Type)
	}
}

func TestParseMultidim(t *testing.T) {
	r := Parse("100 mm x 100 mm x 400 mm")
	if r.Type != TypeMultidim {
		t.Fatalf("Type = %v, want multidim", r.Type)
	}
	if r.NbrQuantities != 3 {
		t.Fatalf("NbrQuantities = %d, want 3", r.NbrQuantities)
	}
}

func TestParseListWithEllipsis(t *testing.T) {
	r := Parse("1, 2, 3, and 4 million km")
	if r.Type != TypeList {
		t.Fatalf("Type = %v, want list", r.Type)
	}
	if r.NbrQuantities != 4 {
		t.Fatalf("NbrQuantities = %d, want 4", r.NbrQuantities)
	}
	for i := 0; i < 3; i++ {
		q := r.NormalizedQuantities[i]
		if q.SuffixedUnit == nil || !q.SuffixedUnit.IsEllipsed {
			t.Errorf("quantity %d: expected ellipsed suffixed unit", i)
		}
	}
}

func TestParseRangeWithVoltUnit(t *testing.T) {
	r := Parse("−0.6 to −1.2 V")
	if r.Type != TypeRange {
		t.Fatalf("Type = %v, want range", r.Type)
	}
	if r.NbrQuantities != 2 {
		t.Fatalf("NbrQuantities = %d, want 2", r.NbrQuantities)
	}
	for i, q := range r.NormalizedQuantities {
		if q.SuffixedUnit == nil || len(q.SuffixedUnit.Normalized) == 0 || q.SuffixedUnit.Normalized[0].URI != "quinex:voltage:volt" {
			t.Errorf("quantity %d: expected suffixed unit to link to volt", i)
		}
	}
}

func TestParseCaretExponentIsSingleQuantity(t *testing.T) {
	r := Parse("10^-15 m")
	if r.Type != TypeSingleQuantity {
		t.Fatalf("Type = %v, want single_quantity", r.Type)
	}
	q := r.NormalizedQuantities[0]
	if q.Value == nil || q.Value.Normalized == nil || q.Value.Normalized.NumericValue == nil {
		t.Fatal("expected a normalized numeric value")
	}
}

func TestParseTwoDigitExponentStaysARange(t *testing.T) {
	r := Parse("10-15 min")
	if r.Type != TypeRange {
		t.Fatalf("Type = %v, want range (not a recovered 10^-15)", r.Type)
	}
	if r.NbrQuantities != 2 {
		t.Fatalf("NbrQuantities = %d, want 2", r.NbrQuantities)
	}
}

func TestParseNotARangeSmallTrailingInteger(t *testing.T) {
	r := Parse("472 cm − 1")
	if r.Type == TypeRange {
		t.Errorf("Type = range, want something else for a trailing small integer")
	}
}

func TestParseMixedNumberWords(t *testing.T) {
	r := Parse("one hundred and twenty three")
	if r.Type != TypeSingleQuantity {
		t.Fatalf("Type = %v, want single_quantity", r.Type)
	}
	q := r.NormalizedQuantities[0]
	if q.Value == nil || q.Value.Normalized == nil || q.Value.Normalized.NumericValue == nil {
		t.Fatal("expected a normalized numeric value")
	}
	if !q.Value.Normalized.NumericValue.Equal(decFromInt(123)) {
		t.Errorf("value = %s, want 123", q.Value.Normalized.NumericValue)
	}
}

func TestParseRejectsNonQuantity(t *testing.T) {
	r := Parse("this is not a quantity")
	if r.Success == SuccessTrue {
		t.Errorf("expected success != true for non-quantity text")
	}
}

func TestParseIdempotent(t *testing.T) {
	inputs := []string{"about 344 million €", "12.5 ± 3.7%", "100 mm x 100 mm x 400 mm"}
	for _, in := range inputs {
		if !IdempotenceCheck(in) {
			t.Errorf("Parse not idempotent for %q", in)
		}
	}
}
