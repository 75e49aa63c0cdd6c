package quantparse

// Validate implements spec.md §4.5.9: formal validity plus the secondary
// unlikeliness score.
func Validate(result Result) Result {
	formallyValid := validateCardinality(result.Type, len(result.NormalizedQuantities))
	score := 0

	for _, q := range result.NormalizedQuantities {
		if q.Value == nil || q.Value.Normalized == nil {
			score += 3
			formallyValid = false
			continue
		}
		if !q.Value.Normalized.IsImprecise && q.Value.Normalized.NumericValue == nil {
			score += 3
			formallyValid = false
		}
		if q.PrefixedUnitText != "" && q.PrefixedUnit != nil && q.PrefixedUnit.Normalized == nil {
			score++
		}
		if q.SuffixedUnitText != "" && q.SuffixedUnit != nil && q.SuffixedUnit.Normalized == nil {
			score++
		}
		if u := q.UncertaintyExprPreUnit; u != nil && u.Text != "" && u.Normalized == nil {
			score++
			formallyValid = false
		}
		if u := q.UncertaintyExprPostUnit; u != nil && u.Text != "" && u.Normalized == nil {
			score++
			formallyValid = false
		}
	}

	if result.Type == TypeRange && len(result.NormalizedQuantities) == 2 {
		score += rangeScore(result.NormalizedQuantities[0], result.NormalizedQuantities[1])
	}

	result.UnlikelinessScore = score
	switch {
	case !formallyValid:
		result.Success = SuccessFalse
	case score > 2:
		result.Success = SuccessFalse
	case score > 0:
		result.Success = SuccessUnknown
	default:
		result.Success = SuccessTrue
	}
	return result
}

func validateCardinality(t SuperstructureType, n int) bool {
	switch t {
	case TypeSingleQuantity:
		return n == 1
	case TypeRange:
		return n == 2
	case TypeList, TypeMultidim, TypeRatio:
		return n >= 2
	default:
		return false
	}
}

func rangeScore(a, b Quantity) int {
	score := 0
	if a.Value == nil || b.Value == nil || a.Value.Normalized == nil || b.Value.Normalized == nil {
		return score
	}
	av, bv := a.Value.Normalized.NumericValue, b.Value.Normalized.NumericValue
	unitsMatch := unitSurfaceEqual(a.SuffixedUnit, b.SuffixedUnit)

	if av != nil && bv != nil && unitsMatch && av.GreaterThan(*bv) {
		score++
	}
	if substringEitherWay(a.SuffixedUnitText, b.SuffixedUnitText) {
		score++
	}
	if a.SuffixedUnitText != "" && a.SuffixedUnitText == b.SuffixedUnitText {
		score--
	}
	return score
}

func unitSurfaceEqual(a, b *UnitReference) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Text == b.Text
}

func substringEitherWay(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}
	return containsAsSubstring(a, b) || containsAsSubstring(b, a)
}

func containsAsSubstring(outer, inner string) bool {
	if len(inner) >= len(outer) {
		return false
	}
	for i := 0; i+len(inner) <= len(outer); i++ {
		if outer[i:i+len(inner)] == inner {
			return true
		}
	}
	return false
}
