package lookups

import "sort"

// ModifierSurfaceValue is a looked-up modifier surface's normalized symbol.
// A nil value (stored as the empty string with Blocked=true) means the
// surface is recognized as modifier-like text but intentionally maps to no
// symbolic operator, per QMODS entries with a Python `None` value (e.g.
// "range of", "estimated").
type ModifierSurfaceValue struct {
	Symbol  string
	Blocked bool
}

// PrefixedModifiers maps a prefixed-modifier surface to its normalized
// symbol. Grounded on quinex_utils/lookups/quantity_modifiers.py QMODS
// ("statistical_modifiers_prefixed" + "words_prefixed"), trimmed to the
// surfaces exercised by the seed scenarios and common paraphrases; the
// Python source's long tail of single-paper phrasings is not reproduced.
var PrefixedModifiers = map[string]ModifierSurfaceValue{
	"=": {Symbol: "="}, "!=": {Symbol: "!="}, "±": {Symbol: "±"},
	"<": {Symbol: "<"}, ">": {Symbol: ">"}, "<=": {Symbol: "≤"}, ">=": {Symbol: "≥"},
	">>": {Symbol: ">>"}, "<<": {Symbol: "<<"}, "~": {Symbol: "~"},
	"~<": {Symbol: "~<"}, "~>=": {Symbol: "~>="}, "<~": {Symbol: "<~"},
	">~": {Symbol: ">~"}, ">~=": {Symbol: ">~="}, "<~=": {Symbol: "<~="},
	"<>": {Symbol: "<>"}, "><": {Symbol: "><"}, "<>=": {Symbol: "<>="},
	"∝": {Symbol: "∝"},

	"average": {Symbol: "mean"}, "average of": {Symbol: "mean"}, "average over": {Symbol: "mean"},
	"average value of": {Symbol: "mean"}, "averaging": {Symbol: "mean"}, "on average": {Symbol: "mean"},
	"mean": {Symbol: "mean"}, "mean over": {Symbol: "mean"}, "mean value of": {Symbol: "mean"},
	"median": {Symbol: "median"}, "median over": {Symbol: "median"}, "median value of": {Symbol: "median"},
	"a median of": {Symbol: "median"},

	"not": {Symbol: "!="}, "not equal": {Symbol: "!="}, "not equal to": {Symbol: "!="},
	"minus": {Symbol: "-"}, "negative": {Symbol: "-"},
	"much greater than": {Symbol: ">>"}, "much less than": {Symbol: "<<"},
	"approximately": {Symbol: "~"}, "approx.": {Symbol: "~"}, "approx": {Symbol: "~"},
	"around": {Symbol: "~"}, "about": {Symbol: "~"}, "close to": {Symbol: "~"},
	"circa": {Symbol: "~"}, "ca.": {Symbol: "~"}, "ca": {Symbol: "~"},
	"almost": {Symbol: "~<"}, "roughly": {Symbol: "~"}, "nearly": {Symbol: "~"},
	"near": {Symbol: "~"}, "on the order of": {Symbol: "~"}, "in the order of": {Symbol: "~"},
	"order of": {Symbol: "~"}, "of the order of": {Symbol: "~"},
	"higher than": {Symbol: ">"}, "up to": {Symbol: "≤"}, "upto": {Symbol: "≤"},
	"min.": {Symbol: "≥"}, "min": {Symbol: "≥"}, "minimum": {Symbol: "≥"},
	"max.": {Symbol: "≤"}, "max": {Symbol: "≤"}, "maximum": {Symbol: "≤"},
	"below": {Symbol: "<"}, "well below": {Symbol: "<"}, "just below": {Symbol: "<"},
	"above": {Symbol: ">"}, "just above": {Symbol: ">"}, "well above": {Symbol: ">>"},
	"over": {Symbol: ">"}, "just over": {Symbol: ">"}, "well over": {Symbol: ">>"},
	"as much as": {Symbol: "≤"}, "at least": {Symbol: "≥"}, "at most": {Symbol: "≤"},
	"less than": {Symbol: "<"}, "more than": {Symbol: ">"}, "between": {Symbol: "", Blocked: true},
	"lower limit of": {Symbol: "≥"}, "upper limit of": {Symbol: "≤"},
	"not more than": {Symbol: "≤"}, "not less than": {Symbol: "≥"},
	"beyond": {Symbol: ">"}, "greater than": {Symbol: ">"}, "smaller than": {Symbol: "<"},
	"equal to": {Symbol: "="}, "equals": {Symbol: "="}, "exceed": {Symbol: ">"}, "not exceed": {Symbol: "≤"},
	"lower than": {Symbol: "<"}, "a minimum of": {Symbol: "≥"}, "a maximum of": {Symbol: "≤"},
	"far more than": {Symbol: ">>"}, "proportional to": {Symbol: "∝"},

	// Recognized as a modifier surface but deliberately unmapped (no symbol).
	"estimated": {Blocked: true}, "range of": {Blocked: true}, "ranging from": {Blocked: true},
	"from": {Blocked: true}, "within": {Blocked: true}, "every": {Blocked: true},
}

// SuffixedModifiers maps a suffixed-modifier surface to its normalized
// symbol. Grounded on QMODS "statistical_modifiers_suffixed" +
// "words_suffixed".
var SuffixedModifiers = map[string]ModifierSurfaceValue{
	"on average": {Symbol: "mean"}, "on average,": {Symbol: "mean"}, "average": {Symbol: "mean"},
	"median": {Symbol: "median"}, "mean": {Symbol: "mean"},

	"or lower": {Symbol: "≤"}, "or higher": {Symbol: "≥"}, "or less": {Symbol: "≤"}, "or more": {Symbol: "≥"},
	"at least": {Symbol: "≥"}, "at minimum": {Symbol: "≥"}, "at maximum": {Symbol: "≤"},
	"at most": {Blocked: true}, "at best": {Symbol: "≤"}, "at worst": {Symbol: "≥"},
	"approximately": {Symbol: "~"}, "approx.": {Symbol: "~"}, "approx": {Symbol: "~"},
	"range": {Symbol: "~"}, "higher": {Blocked: true}, "lower": {Blocked: true},
	"min": {Symbol: "≥"}, "minimum": {Symbol: "≥"}, "max": {Symbol: "≤"}, "maximum": {Symbol: "≤"},
	"each": {Blocked: true},
}

// MultiWordSeparators are separators that span more than one token and must
// be matched as a phrase before the single-token tokenizer rules fire.
var MultiWordSeparators = []string{"of the", "out of the", "out of"}

func sortedModifierKeys(m map[string]ModifierSurfaceValue) []string {
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

// SortedPrefixedModifiers returns prefixed-modifier surfaces longest-first.
func SortedPrefixedModifiers() []string { return sortedModifierKeys(PrefixedModifiers) }

// SortedSuffixedModifiers returns suffixed-modifier surfaces longest-first.
func SortedSuffixedModifiers() []string { return sortedModifierKeys(SuffixedModifiers) }
