package lookups

import "sort"

// ImprecisePhrases are quantity phrases that carry no countable number
// ("a few", "several", "dozens of", "a handful of cases"). A value whose
// text matches one of these parses to NormalizedValue{IsImprecise: true}
// rather than failing. Grounded on
// quinex_utils/lookups/imprecise_quantities.py IMPRECISE_QUANTITIES, with
// the generated quantifying/neutral-amount template families collapsed to
// their representative surfaces.
var ImprecisePhrases = buildImprecisePhrases()

func buildImprecisePhrases() map[string]bool {
	base := []string{
		"multi", "multiple", "various", "several", "handful", "handful of",
		"many", "few", "few of", "couple", "couple of", "some",
		"lots of", "lot of", "not much", "not many", "ton of", "tons of",
		"bunch of", "bunches of", "gobs of", "plenty", "plenty of",
		"multitude of", "great deal of", "all kinds of", "too many to count",
		"way too many", "uncountable", "infinitely many",
		"tens of thousands", "tens of millions", "tens of billions",
		"hundreds of thousands", "hundreds of millions", "hundreds of billions",
		"quadrillions of",
	}

	quantifying := []string{
		"dozen", "hundred", "thousand", "million", "billion", "trillion",
		"oodle", "plethora", "myriad", "gazillion", "bazillion",
	}
	adjectives := []string{"few", "several", "some", "couple", "couple of", "handful", "handful of", "many", "multiple"}

	m := make(map[string]bool, len(base)*3)
	for _, p := range base {
		m[p] = true
	}
	for _, q := range quantifying {
		singular, plural := q, q+"s"
		m[singular] = true
		m[plural] = true
		m[singular+" of"] = true
		m[plural+" of"] = true
		for _, adj := range adjectives {
			m[adj+" "+singular] = true
			m[adj+" "+plural] = true
		}
	}

	neutralAmounts := []string{"number", "amount", "quantity"}
	neutralAdjectives := []string{"tiny", "small", "vanishingly small", "large", "great", "significant", "considerable", "vast", "huge", "massive"}
	for _, amount := range neutralAmounts {
		for _, adj := range neutralAdjectives {
			m[adj+" "+amount+" of"] = true
			m["a "+adj+" "+amount+" of"] = true
			m["the "+adj+" "+amount+" of"] = true
			m[adj+" "+amount+"s of"] = true
		}
	}

	return m
}

// SortedImprecisePhrases returns imprecise-quantity phrases longest-first
// so the phrase-protection pass (§4.5.1) prefers the most specific match.
func SortedImprecisePhrases() []string {
	out := make([]string, 0, len(ImprecisePhrases))
	for p := range ImprecisePhrases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
