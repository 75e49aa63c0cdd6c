// Package uncertainty implements the uncertainty-expression recognizer
// (spec.md §4.4): tolerances, typed and untyped intervals, and standard
// deviation expressions.
package uncertainty

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/lookups"
	"github.com/quinex/quinex/internal/numcast"
	"github.com/quinex/quinex/internal/units"
)

// Kind mirrors spec.md §3's uncertainty type tag.
type Kind string

const (
	KindTolerance         Kind = "tolerance"
	KindStandardDeviation Kind = "standard_deviation"
	KindCI                Kind = "CI"
	KindUI                Kind = "UI"
	KindCrI               Kind = "CrI"
	KindUnknown           Kind = "unknown"
)

// UnitSlots names the up-to-six positions a linked unit inside an
// uncertainty expression may occupy, per spec.md §3.
type UnitSlots struct {
	IsSameAsMean bool
	Prefixed     string
	Suffixed     string
	PrefixedLB   string
	SuffixedLB   string
	PrefixedUB   string
	SuffixedUB   string
}

// Normalized is the parsed form of an uncertainty expression.
type Normalized struct {
	Type  Kind
	Lower decimal.Decimal
	Upper decimal.Decimal
	Unit  *UnitSlots
}

var (
	reTolerance     *regexp.Regexp
	reTypedInterval *regexp.Regexp
	reUntypedInterval *regexp.Regexp
	reSDPrefixed    *regexp.Regexp
	reSDSuffixed    *regexp.Regexp
)

var typeKeywordToKind map[string]Kind

func init() {
	typeKeywordToKind = make(map[string]Kind, len(lookups.UncertaintyTypeKeywords))
	for k, v := range lookups.UncertaintyTypeKeywords {
		switch v {
		case "CI":
			typeKeywordToKind[k] = KindCI
		case "UI":
			typeKeywordToKind[k] = KindUI
		case "CrI":
			typeKeywordToKind[k] = KindCrI
		}
	}

	reTolerance = regexp.MustCompile(`(?i)^\(?\s*±\s*([0-9.,]+)\s*([%A-Za-zµμ°/€$£¥]*)\s*\)?$`)

	typeKeywords := sortedKeysDesc(lookups.UncertaintyTypeKeywords)
	for i, k := range typeKeywords {
		typeKeywords[i] = regexp.QuoteMeta(k)
	}
	separators := make([]string, len(lookups.IntervalSeparators))
	for i, s := range lookups.IntervalSeparators {
		separators[i] = regexp.QuoteMeta(s)
	}
	dashOrTo := strings.Join([]string{regexp.QuoteMeta("-"), "to"}, "|")
	anySeparator := strings.Join(separators, "|")

	reTypedInterval = regexp.MustCompile(
		`(?i)^(?:\d{1,2}%\s*)?(` + strings.Join(typeKeywords, "|") + `)\s*[:=,]?\s*(?:of\s*)?([0-9.,+-]+)\s*([%A-Za-zµμ°/€$£¥]*)\s*(?:` + dashOrTo + `)\s*([0-9.,+-]+)\s*([%A-Za-zµμ°/€$£¥]*)$`,
	)

	reUntypedInterval = regexp.MustCompile(
		`^\(\s*([0-9.,+-]+)\s*([%A-Za-zµμ°/€$£¥]*)\s*(` + anySeparator + `)\s*([0-9.,+-]+)\s*([%A-Za-zµμ°/€$£¥]*)\s*\)$`,
	)

	sdKeywords := sortedKeysBoolDesc(lookups.StandardDeviationKeywords)
	for i, k := range sdKeywords {
		sdKeywords[i] = regexp.QuoteMeta(k)
	}
	sdAlternation := strings.Join(sdKeywords, "|")
	reSDPrefixed = regexp.MustCompile(`(?i)^(?:` + sdAlternation + `)\s*([0-9.,]+)\s*([%A-Za-zµμ°/€$£¥]*)$`)
	reSDSuffixed = regexp.MustCompile(`(?i)^([0-9.,]+)\s*([%A-Za-zµμ°/€$£¥]*)\s*(?:` + sdAlternation + `)$`)
}

// sortedKeysDesc and sortedKeysBoolDesc order a gazetteer's keys longest
// first, so Go's leftmost-alternation regexp semantics try a multi-word
// keyword ("confidence interval") before the short form it contains no
// prefix relationship to ("ci") could otherwise shadow a later branch.
func sortedKeysDesc(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func sortedKeysBoolDesc(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// Parse tries the four uncertainty patterns in order against s, an
// already-isolated candidate substring, and returns the first that matches.
// outerUnitSurface is the surrounding quantity's suffixed-unit surface, used
// to set IsSameAsMean.
func Parse(s string, outerUnitSurface string) (Normalized, bool) {
	s = strings.TrimSpace(s)

	if m := reTolerance.FindStringSubmatch(s); m != nil {
		return buildTolerance(m, outerUnitSurface)
	}
	if m := reTypedInterval.FindStringSubmatch(strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")); m != nil {
		return buildTypedInterval(m, outerUnitSurface)
	}
	if isCommaSeparatedAllowed(s) {
		if m := reUntypedInterval.FindStringSubmatch(s); m != nil {
			return buildUntypedInterval(m, outerUnitSurface)
		}
	}
	if m := reSDPrefixed.FindStringSubmatch(s); m != nil {
		return buildSD(m[1], m[2], outerUnitSurface)
	}
	if m := reSDSuffixed.FindStringSubmatch(s); m != nil {
		return buildSD(m[1], m[2], outerUnitSurface)
	}
	return Normalized{}, false
}

// isCommaSeparatedAllowed is a hook for callers that know the outer
// separator context; Parse itself always allows every separator the regex
// recognizes, leaving comma-vs-list disambiguation to the driver (§4.5.1).
func isCommaSeparatedAllowed(string) bool { return true }

func buildTolerance(m []string, outerUnit string) (Normalized, bool) {
	v, ok := numcast.Str2Num(m[1])
	if !ok || v.IsImprecise {
		return Normalized{}, false
	}
	n := Normalized{Type: KindTolerance, Lower: v.Value.Neg(), Upper: v.Value}
	if unitSurface := strings.TrimSpace(m[2]); unitSurface != "" {
		n.Unit = linkSlot(unitSurface, outerUnit)
	}
	return n, true
}

func buildTypedInterval(m []string, outerUnit string) (Normalized, bool) {
	kind, ok := typeKeywordToKind[strings.ToLower(m[1])]
	if !ok {
		return Normalized{}, false
	}
	lower, okL := numcast.Str2Num(m[2])
	upper, okU := numcast.Str2Num(m[4])
	if !okL || !okU || lower.IsImprecise || upper.IsImprecise {
		return Normalized{}, false
	}
	n := Normalized{Type: kind, Lower: lower.Value, Upper: upper.Value}
	lbUnit := strings.TrimSpace(m[3])
	ubUnit := strings.TrimSpace(m[5])
	if lbUnit != "" || ubUnit != "" {
		n.Unit = linkBounds(lbUnit, ubUnit, outerUnit)
	}
	return n, validateBounds(n, lbUnit, ubUnit)
}

func buildUntypedInterval(m []string, outerUnit string) (Normalized, bool) {
	sep := m[3]
	if sep == "," {
		// comma separation permitted only inside a parenthesized pair; the
		// surrounding ", " vs "," distinction is resolved by the driver
		// before this candidate reaches Parse, so here bare "," is accepted.
	}
	lower, okL := numcast.Str2Num(m[1])
	upper, okU := numcast.Str2Num(m[4])
	if !okL || !okU || lower.IsImprecise || upper.IsImprecise {
		return Normalized{}, false
	}
	n := Normalized{Type: KindUnknown, Lower: lower.Value, Upper: upper.Value}
	lbUnit := strings.TrimSpace(m[2])
	ubUnit := strings.TrimSpace(m[5])
	if lbUnit != "" || ubUnit != "" {
		n.Unit = linkBounds(lbUnit, ubUnit, outerUnit)
	}
	return n, validateBounds(n, lbUnit, ubUnit)
}

func buildSD(valueStr, unitStr, outerUnit string) (Normalized, bool) {
	v, ok := numcast.Str2Num(valueStr)
	if !ok || v.IsImprecise {
		return Normalized{}, false
	}
	n := Normalized{Type: KindStandardDeviation, Lower: v.Value.Neg(), Upper: v.Value}
	if unitSurface := strings.TrimSpace(unitStr); unitSurface != "" {
		n.Unit = linkSlot(unitSurface, outerUnit)
	}
	return n, true
}

func linkSlot(surface, outerUnit string) *UnitSlots {
	slots := &UnitSlots{}
	if surface == outerUnit {
		slots.IsSameAsMean = true
		return slots
	}
	if uri := units.LinkUnit(surface); uri != "" {
		slots.Suffixed = uri
	}
	return slots
}

func linkBounds(lb, ub, outerUnit string) *UnitSlots {
	slots := &UnitSlots{}
	if lb != "" {
		if lb == outerUnit {
			slots.IsSameAsMean = true
		} else if uri := units.LinkUnit(lb); uri != "" {
			slots.SuffixedLB = uri
		}
	}
	if ub != "" {
		if ub == outerUnit {
			slots.IsSameAsMean = true
		} else if uri := units.LinkUnit(ub); uri != "" {
			slots.SuffixedUB = uri
		}
	}
	return slots
}

// validateBounds enforces L <= U when both units match or are absent, that
// the expression carries at most two linked units, and that any
// successfully-linked surface is a substring of any unsuccessfully-linked
// one — rejecting chimeras like "25th percentile to 1.15 SEK/kWh".
func validateBounds(n Normalized, lbSurface, ubSurface string) bool {
	if n.Lower.GreaterThan(n.Upper) {
		return false
	}
	if n.Unit != nil && countLinkedUnits(n.Unit) > 2 {
		return false
	}
	lbSurface = strings.TrimSpace(lbSurface)
	ubSurface = strings.TrimSpace(ubSurface)
	if lbSurface == "" || ubSurface == "" {
		// one side has no unit text at all, e.g. "1-2 km"; ordinary ellipsis.
		return true
	}
	// a compound surface such as "SEK/kWh" counts as linked when the full
	// unit parser resolves it, even though the single-token slot stays empty.
	_, lbParses := units.ParseUnit(lbSurface, 1)
	_, ubParses := units.ParseUnit(ubSurface, 1)
	lbLinked := lbParses || (n.Unit != nil && (n.Unit.SuffixedLB != "" || n.Unit.IsSameAsMean))
	ubLinked := ubParses || (n.Unit != nil && (n.Unit.SuffixedUB != "" || n.Unit.IsSameAsMean))
	if lbLinked == ubLinked {
		// both sides link, or neither does: no chimera to detect.
		return true
	}
	if lbLinked {
		return strings.Contains(strings.ToLower(ubSurface), strings.ToLower(lbSurface))
	}
	return strings.Contains(strings.ToLower(lbSurface), strings.ToLower(ubSurface))
}

// countLinkedUnits counts the populated unit slots (spec.md §4.4: "the unit
// count within an expression is 0, 1, or 2").
func countLinkedUnits(u *UnitSlots) int {
	count := 0
	for _, s := range []string{u.Prefixed, u.Suffixed, u.PrefixedLB, u.SuffixedLB, u.PrefixedUB, u.SuffixedUB} {
		if s != "" {
			count++
		}
	}
	return count
}
