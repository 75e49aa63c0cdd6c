package quantparse

// ResolveEllipsis processes quantities in reverse order per spec.md §4.5.8:
// the last quantity's units become the "ellipsed context" for any earlier
// quantity missing both a prefixed and suffixed unit.
func ResolveEllipsis(quantities []Quantity) []Quantity {
	if len(quantities) == 0 {
		return quantities
	}

	var contextUnit *UnitReference
	var contextOOM *int
	last := quantities[len(quantities)-1]
	if last.SuffixedUnit != nil {
		contextUnit = last.SuffixedUnit
	} else if last.PrefixedUnit != nil {
		contextUnit = last.PrefixedUnit
	}
	if last.Value != nil && last.Value.Normalized != nil {
		contextOOM = last.Value.Normalized.OrderOfMagnitude
	}

	for i := len(quantities) - 2; i >= 0; i-- {
		q := quantities[i]
		if q.PrefixedUnit == nil && q.SuffixedUnit == nil && contextUnit != nil {
			ellipsed := &UnitReference{
				IsEllipsed:   true,
				EllipsedText: contextUnit.Text,
				Normalized:   contextUnit.Normalized,
			}
			q.SuffixedUnit = ellipsed

			if q.Value != nil && q.Value.Normalized != nil && q.Value.Normalized.OrderOfMagnitude == nil &&
				contextOOM != nil && *contextOOM != 1 && q.Value.Normalized.NumericValue != nil {
				scaled := q.Value.Normalized.NumericValue.Mul(pow10(*contextOOM))
				q.Value.Normalized.NumericValue = &scaled
				oom := *contextOOM
				q.Value.Normalized.OrderOfMagnitude = &oom
			}
		}
		quantities[i] = q
	}
	return quantities
}
