package quantparse

import (
	"strings"

	"github.com/quinex/quinex/internal/lookups"
	"github.com/quinex/quinex/internal/numcast"
	"github.com/quinex/quinex/internal/uncertainty"
	"github.com/quinex/quinex/internal/units"
)

// NormalizeQuantity runs segmented normalization (spec.md §4.5.7) over a
// Quantity whose *Text fields were populated by ExtractSlots.
func NormalizeQuantity(q Quantity) Quantity {
	if q.PrefixedModifierText != "" {
		q.PrefixedModifier = normalizeModifier(q.PrefixedModifierText, lookups.PrefixedModifiers)
	}
	if q.PrefixedUnitText != "" {
		q.PrefixedUnit = normalizeUnit(q.PrefixedUnitText)
	}

	q.Value = normalizeValue(q.ValueText)

	if q.SuffixedUnitText != "" {
		q.SuffixedUnitText, q.Value = detachLeadingMagnitudeWord(q.SuffixedUnitText, q.Value)
		if q.SuffixedUnitText != "" {
			q.SuffixedUnit = normalizeUnit(q.SuffixedUnitText)
		}
	}

	outerUnitSurface := q.SuffixedUnitText
	if q.UncertaintyPreText != "" {
		q.UncertaintyExprPreUnit = normalizeUncertainty(q.UncertaintyPreText, outerUnitSurface)
	}
	if q.UncertaintyPostText != "" {
		q.UncertaintyExprPostUnit = normalizeUncertainty(q.UncertaintyPostText, outerUnitSurface)
	}

	if q.SuffixedUnit == nil {
		if u := uncertaintyNonMeanUnit(q.UncertaintyExprPreUnit); u != nil {
			q.SuffixedUnit = u
		} else if u := uncertaintyNonMeanUnit(q.UncertaintyExprPostUnit); u != nil {
			q.SuffixedUnit = u
		}
	}

	if q.SuffixedModifierText != "" {
		q.SuffixedModifier = normalizeModifier(q.SuffixedModifierText, lookups.SuffixedModifiers)
	}

	return q
}

func normalizeModifier(text string, table map[string]lookups.ModifierSurfaceValue) *Modifier {
	key := strings.ToLower(strings.TrimSpace(text))
	m := &Modifier{Text: text}
	if v, ok := table[key]; ok && !v.Blocked && v.Symbol != "" {
		sym := v.Symbol
		m.Normalized = &sym
		return m
	}
	collapsed := strings.ReplaceAll(key, " ", "")
	if v, ok := table[collapsed]; ok && !v.Blocked && v.Symbol != "" {
		sym := v.Symbol
		m.Normalized = &sym
		return m
	}
	switch key {
	case "a", "an":
		sym := "="
		m.Normalized = &sym
	case "-":
		sym := "-"
		m.Normalized = &sym
	case "+":
		sym := "+"
		m.Normalized = &sym
	}
	return m
}

func normalizeValue(text string) *Value {
	v := &Value{Text: text}
	if text == "" {
		return v
	}
	r, ok := numcast.Str2Num(text)
	if !ok {
		return v
	}
	nv := &NormalizedValue{IsImprecise: r.IsImprecise, OrderOfMagnitude: r.OrderOfMagnitude}
	if !r.IsImprecise {
		val := r.Value
		nv.NumericValue = &val
	}
	v.Normalized = nv
	return v
}

func normalizeUnit(text string) *UnitReference {
	ref := &UnitReference{Text: text}
	comps, ok := units.ParseUnit(text, 1)
	if !ok {
		return ref
	}
	var out []UnitComponent
	for _, c := range comps {
		out = append(out, UnitComponent{Surface: c.Surface, Exponent: c.Exponent, URI: c.URI, Year: c.Year})
	}
	ref.Normalized = out
	if uri, ok := units.Aggregate(comps, text); ok {
		ref.CollapsedURI = uri
	}
	return ref
}

func normalizeUncertainty(text, outerUnit string) *Uncertainty {
	u := &Uncertainty{Text: text}
	n, ok := uncertainty.Parse(text, outerUnit)
	if !ok {
		return u
	}
	nu := &NormalizedUncertainty{Type: string(n.Type), Lower: n.Lower, Upper: n.Upper}
	if n.Unit != nil {
		nu.Unit = &UncertaintyUnitSlots{IsSameAsMean: n.Unit.IsSameAsMean}
		assignIfLinked := func(uri string) *UnitReference {
			if uri == "" {
				return nil
			}
			return &UnitReference{Text: uri, Normalized: []UnitComponent{{URI: uri, Exponent: 1}}}
		}
		nu.Unit.Prefixed = assignIfLinked(n.Unit.Prefixed)
		nu.Unit.Suffixed = assignIfLinked(n.Unit.Suffixed)
		nu.Unit.PrefixedLB = assignIfLinked(n.Unit.PrefixedLB)
		nu.Unit.SuffixedLB = assignIfLinked(n.Unit.SuffixedLB)
		nu.Unit.PrefixedUB = assignIfLinked(n.Unit.PrefixedUB)
		nu.Unit.SuffixedUB = assignIfLinked(n.Unit.SuffixedUB)
	}
	u.Normalized = nu
	return u
}

func uncertaintyNonMeanUnit(u *Uncertainty) *UnitReference {
	if u == nil || u.Normalized == nil || u.Normalized.Unit == nil {
		return nil
	}
	slots := u.Normalized.Unit
	if slots.IsSameAsMean {
		return nil
	}
	if slots.Suffixed != nil {
		return slots.Suffixed
	}
	if slots.SuffixedUB != nil {
		return slots.SuffixedUB
	}
	return nil
}

// detachLeadingMagnitudeWord pushes a leading order-of-magnitude word
// (e.g. "million" in "million km") from the suffixed-unit slot back into
// the value, per spec.md §4.5.7.
func detachLeadingMagnitudeWord(unitText string, value *Value) (string, *Value) {
	fields := strings.Fields(unitText)
	if len(fields) < 2 {
		return unitText, value
	}
	exp, ok := lookups.OrderOfMagnitudeWords[strings.ToLower(fields[0])]
	if !ok {
		return unitText, value
	}
	if value == nil || value.Normalized == nil || value.Normalized.NumericValue == nil {
		return unitText, value
	}
	scaled := value.Normalized.NumericValue.Mul(pow10(exp))
	newValue := &Value{
		Text: value.Text + " " + fields[0],
		Normalized: &NormalizedValue{
			NumericValue:     &scaled,
			OrderOfMagnitude: intPtr(exp),
		},
	}
	return strings.Join(fields[1:], " "), newValue
}

func intPtr(v int) *int { return &v }
