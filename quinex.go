package quinex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/currencysvc"
	"github.com/quinex/quinex/internal/modifier"
	"github.com/quinex/quinex/internal/quantparse"
	"github.com/quinex/quinex/internal/units"
)

// StrictError is raised by Parse when strict mode is requested and the
// parse did not succeed, per spec.md §7 "error_if_no_success".
type StrictError struct {
	Text string
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("quinex: no successful parse for %q", e.Text)
}

// ParseOptions configures a single Parse call.
type ParseOptions struct {
	// Simplify collapses UncertaintyExprPreUnit/UncertaintyExprPostUnit
	// into the single Uncertainty field.
	Simplify bool
	// ErrorIfNoSuccess promotes a final soft failure (Success == false)
	// into a returned *StrictError, per spec.md §7 strict mode.
	ErrorIfNoSuccess bool
	// ModifierExtractor is the external modifier-widening collaborator
	// (spec.md §6). When set, numeric spans that sit up to a 2-character
	// gap from a gazetteer modifier phrase are widened to include it before
	// the core grammar, which only recognizes directly-adjacent modifiers,
	// ever sees the text.
	ModifierExtractor modifier.Extractor
}

// Parse is the deterministic parse entry point (spec.md §6).
func Parse(text string, opts ParseOptions) (ParseResult, error) {
	if opts.ModifierExtractor != nil {
		text = widenModifierGaps(text, opts.ModifierExtractor)
	}
	internal := quantparse.Parse(text)
	result := fromInternal(internal)
	if opts.Simplify {
		result = simplify(result)
	}
	if opts.ErrorIfNoSuccess && result.Success == SuccessFalse {
		return result, &StrictError{Text: text}
	}
	return result, nil
}

// ParseUnit is the unit linker's entry point (spec.md §6).
func ParseUnit(text string, groupExponent int) ([]UnitComponent, bool) {
	comps, ok := units.ParseUnit(text, groupExponent)
	if !ok {
		return nil, false
	}
	out := make([]UnitComponent, 0, len(comps))
	for _, c := range comps {
		out = append(out, UnitComponent{Surface: c.Surface, Exponent: c.Exponent, URI: c.URI, Year: c.Year})
	}
	return out, true
}

// AggregateUnit attempts to collapse a compound unit's components into a
// single known unit via dimensional analysis (spec.md §4.3 "compound
// aggregation"). Returns ("", false) when no single-class collapse applies.
func AggregateUnit(comps []UnitComponent, originalSurface string) (string, bool) {
	internal := make([]units.Component, len(comps))
	for i, c := range comps {
		internal[i] = units.Component{Surface: c.Surface, Exponent: c.Exponent, URI: c.URI, Year: c.Year}
	}
	return units.Aggregate(internal, originalSurface)
}

// Convert is the unit-conversion side operation (spec.md §6). cc may be nil
// when no currency conversion is required; a currency conversion attempted
// with cc == nil fails.
func Convert(cc currencysvc.Service, value decimal.Decimal, fromURI, toURI string, fromYear, toYear *int) (decimal.Decimal, bool) {
	return units.Convert(cc, value, fromURI, toURI, fromYear, toYear)
}

var (
	reRoughNumber = regexp.MustCompile(`\d[\d.,]*`)
	reGapRun      = regexp.MustCompile(`[ ,;]+`)
)

// widenModifierGaps finds numeric spans and asks ex to widen them to
// include a nearby modifier phrase, then collapses the punctuation/
// whitespace run between the modifier and the number down to a single
// space so the core's adjacency-based slot grammar, which only recognizes a
// directly-touching modifier, sees it as touching.
func widenModifierGaps(text string, ex modifier.Extractor) string {
	matches := reRoughNumber.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	tight := make([]modifier.Span, len(matches))
	for i, m := range matches {
		tight[i] = modifier.Span{Start: m[0], End: m[1]}
	}
	widened := ex.Widen(text, tight)

	var b strings.Builder
	last := 0
	for i, w := range widened {
		t := tight[i]
		if w.Start < t.Start && w.Start >= last {
			b.WriteString(text[last:w.Start])
			b.WriteString(reGapRun.ReplaceAllString(text[w.Start:t.Start], " "))
			last = t.Start
		}
		if w.End > t.End && last <= t.End {
			b.WriteString(text[last:t.End])
			b.WriteString(reGapRun.ReplaceAllString(text[t.End:w.End], " "))
			last = w.End
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

func simplify(r ParseResult) ParseResult {
	for i, q := range r.NormalizedQuantities {
		if q.UncertaintyExprPreUnit != nil {
			q.Uncertainty = q.UncertaintyExprPreUnit
			q.UncertaintyExprPreUnit = nil
		} else if q.UncertaintyExprPostUnit != nil {
			q.Uncertainty = q.UncertaintyExprPostUnit
			q.UncertaintyExprPostUnit = nil
		}
		r.NormalizedQuantities[i] = q
	}
	return r
}

func fromInternal(r quantparse.Result) ParseResult {
	out := ParseResult{
		Text:              r.Text,
		Type:              SuperstructureType(r.Type),
		NbrQuantities:     r.NbrQuantities,
		Success:           Success(r.Success),
		UnlikelinessScore: r.UnlikelinessScore,
	}
	for _, s := range r.Separators {
		out.Separators = append(out.Separators, Separator{Surface: s.Surface, Role: s.Role})
	}
	for _, q := range r.NormalizedQuantities {
		out.NormalizedQuantities = append(out.NormalizedQuantities, quantityFromInternal(q))
	}
	return out
}

func quantityFromInternal(q quantparse.Quantity) NormalizedQuantity {
	out := NormalizedQuantity{}
	out.PrefixedModifier = modifierFromInternal(q.PrefixedModifier)
	out.PrefixedUnit = unitRefFromInternal(q.PrefixedUnit)
	out.Value = valueFromInternal(q.Value)
	out.UncertaintyExprPreUnit = uncertaintyFromInternal(q.UncertaintyExprPreUnit)
	out.SuffixedUnit = unitRefFromInternal(q.SuffixedUnit)
	out.UncertaintyExprPostUnit = uncertaintyFromInternal(q.UncertaintyExprPostUnit)
	out.SuffixedModifier = modifierFromInternal(q.SuffixedModifier)
	return out
}

func modifierFromInternal(m *quantparse.Modifier) *Modifier {
	if m == nil {
		return nil
	}
	out := &Modifier{Text: m.Text}
	if m.Normalized != nil {
		sym := ModifierSymbol(*m.Normalized)
		out.Normalized = &sym
	}
	return out
}

func unitRefFromInternal(u *quantparse.UnitReference) *UnitReference {
	if u == nil {
		return nil
	}
	out := &UnitReference{Text: u.Text, IsEllipsed: u.IsEllipsed, EllipsedText: u.EllipsedText, CollapsedURI: u.CollapsedURI}
	for _, c := range u.Normalized {
		out.Normalized = append(out.Normalized, UnitComponent{Surface: c.Surface, Exponent: c.Exponent, URI: c.URI, Year: c.Year})
	}
	return out
}

func valueFromInternal(v *quantparse.Value) *Value {
	if v == nil {
		return nil
	}
	out := &Value{Text: v.Text}
	if v.Normalized != nil {
		out.Normalized = &NormalizedValue{
			NumericValue:     v.Normalized.NumericValue,
			IsImprecise:      v.Normalized.IsImprecise,
			OrderOfMagnitude: v.Normalized.OrderOfMagnitude,
		}
	}
	return out
}

func uncertaintyFromInternal(u *quantparse.Uncertainty) *Uncertainty {
	if u == nil {
		return nil
	}
	out := &Uncertainty{Text: u.Text}
	if u.Normalized != nil {
		out.Normalized = &NormalizedUncertainty{
			Type:  UncertaintyType(u.Normalized.Type),
			Lower: u.Normalized.Lower,
			Upper: u.Normalized.Upper,
		}
		if u.Normalized.Unit != nil {
			out.Normalized.Unit = &UncertaintyUnitSlots{
				IsSameAsMean: u.Normalized.Unit.IsSameAsMean,
				Prefixed:     unitRefFromInternal(u.Normalized.Unit.Prefixed),
				Suffixed:     unitRefFromInternal(u.Normalized.Unit.Suffixed),
				PrefixedLB:   unitRefFromInternal(u.Normalized.Unit.PrefixedLB),
				SuffixedLB:   unitRefFromInternal(u.Normalized.Unit.SuffixedLB),
				PrefixedUB:   unitRefFromInternal(u.Normalized.Unit.PrefixedUB),
				SuffixedUB:   unitRefFromInternal(u.Normalized.Unit.SuffixedUB),
			}
		}
	}
	return out
}
