// Package lookups holds the static, read-only tables consulted throughout
// the quantity-parsing pipeline: number words, order-of-magnitude words,
// imprecise-quantity phrases, quantity-modifier surfaces, and the
// uncertainty-type vocabulary. Tables are built once at package init and
// never mutated afterward.
package lookups

import "sort"

// OrderOfMagnitudeWords maps a magnitude word to its power of ten in the
// short scale (n such that the word denotes 10^n). Grounded on
// quinex_utils/lookups/number_words.py ORDER_OF_MAGNITUDE_WORDS_MAPPING.
var OrderOfMagnitudeWords = map[string]int{
	"hundred":     2,
	"thousand":    3,
	"million":     6,
	"billion":     9,
	"trillion":    12,
	"quadrillion": 15,
	"quintillion": 18,
	"sextillion":  21,
	"septillion":  24,
	"octillion":   27,
	"nonillion":   30,
	"decillion":   33,
	"undecillion": 36,
	"duodecillion": 39,
	"tredecillion": 42,
	"quattuordecillion": 45,
	"quindecillion":     48,
	"sexdecillion":      51,
	"septendecillion":   54,
	"octodecillion":     57,
	"novemdecillion":    60,
	"vigintillion":      63,
	"centillion":        303,
}

// NumberWords maps cardinal, ordinal, and named-fraction words to their
// numeric value. Grounded on NUMBER_WORDS_MAPPING.
var NumberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"tenth": 10, "eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18, "nineteenth": 19,
	"twentieth": 20, "thirtieth": 30, "fortieth": 40, "fiftieth": 50,
	"sixtieth": 60, "seventieth": 70, "eightieth": 80, "ninetieth": 90,
	"half": 0.5, "halves": 0.5, "quarter": 0.25,
	"thirds": 1.0 / 3.0,
	"dozen":  12, "dozens": 12,
	"gross": 144, "score": 20,
	"hundredth": 100, "thousandth": 1000, "millionth": 1000000, "billionth": 1000000000,
}

// StandaloneNumberWords are words that parse to a number on their own
// (rather than only as part of a larger number-word expression), including
// the article-disambiguated fraction forms ("a third", "a fifth", ...).
// Grounded on STANDALONE_NUMBER_WORDS_MAPPING.
var StandaloneNumberWords = map[string]float64{
	"a third": 1.0 / 3.0, "a quarter": 0.25,
	"once": 1, "twice": 2, "thrice": 3,
	"single": 1, "double": 2, "triple": 3, "quadruple": 4, "quintuple": 5,
	"zeroth": 0, "zeros": 0,
	"a fifth": 0.2, "a sixth": 1.0 / 6.0, "a seventh": 1.0 / 7.0,
	"a eighth": 0.125, "a ninth": 1.0 / 9.0, "a tenth": 0.1,
}

// ConfusableWithUnit lists number words that double as unit names (e.g.
// "1 second", "a quarter"), per NUMBER_WORDS_THAT_CAN_BE_CONFUSED_WITH_UNITS.
// The caster refuses these readings when any earlier token of the span is a
// digit or a number word, since that context favors the unit interpretation.
var ConfusableWithUnit = map[string]bool{
	"second":  true,
	"seconds": true,
	"quarter": true,
}

// SortedOrderOfMagnitudeWords returns magnitude words longest-first, so
// regex/scan-based matching prefers longer phrases over their prefixes.
func SortedOrderOfMagnitudeWords() []string {
	return sortedKeysByLengthDesc(OrderOfMagnitudeWords)
}

// SortedNumberWords returns cardinal/ordinal/fraction words longest-first.
func SortedNumberWords() []string {
	keys := make(map[string]float64, len(NumberWords)+len(StandaloneNumberWords))
	for k, v := range NumberWords {
		keys[k] = v
	}
	for k, v := range StandaloneNumberWords {
		keys[k] = v
	}
	return sortedKeysByLengthDesc(keys)
}

func sortedKeysByLengthDesc[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
