package uncertainty

import "testing"

func TestParseTolerance(t *testing.T) {
	n, ok := Parse("±3.7%", "%")
	if !ok {
		t.Fatal("Parse(tolerance) failed")
	}
	if n.Type != KindTolerance {
		t.Errorf("Type = %v, want %v", n.Type, KindTolerance)
	}
	if !n.Lower.Neg().Equal(n.Upper) {
		t.Errorf("expected symmetric bounds, got lower=%s upper=%s", n.Lower, n.Upper)
	}
}

func TestParseTypedIntervalCI(t *testing.T) {
	n, ok := Parse("95% CI 1.92-2.65", "")
	if !ok {
		t.Fatal("Parse(CI) failed")
	}
	if n.Type != KindCI {
		t.Errorf("Type = %v, want CI", n.Type)
	}
	if n.Lower.String() != "1.92" || n.Upper.String() != "2.65" {
		t.Errorf("bounds = (%s, %s), want (1.92, 2.65)", n.Lower, n.Upper)
	}
}

func TestParseRejectsInvertedBounds(t *testing.T) {
	if _, ok := Parse("CI 2.65-1.92", ""); ok {
		t.Error("expected inverted CI bounds to fail validation")
	}
}

func TestParseStandardDeviationSuffixed(t *testing.T) {
	n, ok := Parse("2.3 SD", "")
	if !ok {
		t.Fatal("Parse(SD suffixed) failed")
	}
	if n.Type != KindStandardDeviation {
		t.Errorf("Type = %v, want standard_deviation", n.Type)
	}
}

func TestParseStandardDeviationLongForm(t *testing.T) {
	n, ok := Parse("2.3 standard deviation", "")
	if !ok {
		t.Fatal("Parse(standard deviation suffixed) failed")
	}
	if n.Type != KindStandardDeviation {
		t.Errorf("Type = %v, want standard_deviation", n.Type)
	}
}

func TestParseStandardDeviationAbbreviated(t *testing.T) {
	n, ok := Parse("s.d. 2.3", "")
	if !ok {
		t.Fatal("Parse(s.d. prefixed) failed")
	}
	if n.Type != KindStandardDeviation {
		t.Errorf("Type = %v, want standard_deviation", n.Type)
	}
}

func TestParseTypedIntervalLongFormUI(t *testing.T) {
	n, ok := Parse("uncertainty interval 1.92-2.65", "")
	if !ok {
		t.Fatal("Parse(uncertainty interval) failed")
	}
	if n.Type != KindUI {
		t.Errorf("Type = %v, want UI", n.Type)
	}
}

func TestParseRejectsChimericUnitBounds(t *testing.T) {
	if _, ok := Parse("(1 px to 25 SEK/kWh)", ""); ok {
		t.Error("expected a chimeric bound pair (unlinked surface not containing the linked one) to fail validation")
	}
}

func TestParseAllowsSharedUnitBounds(t *testing.T) {
	n, ok := Parse("(1.15 SEK/kWh to 25 SEK/kWh)", "")
	if !ok {
		t.Fatal("Parse(shared-unit interval) failed")
	}
	if n.Lower.String() != "1.15" || n.Upper.String() != "25" {
		t.Errorf("bounds = (%s, %s), want (1.15, 25)", n.Lower, n.Upper)
	}
}
