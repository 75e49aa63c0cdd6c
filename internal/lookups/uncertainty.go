package lookups

// UncertaintyTypeKeywords maps the surface keyword used to introduce a
// typed interval to its normalized uncertainty type, per spec.md §4.4 rule
// 2 ("(CI|confidence interval|UI|uncertainty interval|CrI|credible
// interval)").
var UncertaintyTypeKeywords = map[string]string{
	"ci":                  "CI",
	"confidence interval": "CI",
	"ui":                  "UI",
	"uncertainty interval": "UI",
	"cri":                 "CrI",
	"credible interval":   "CrI",
}

// StandardDeviationKeywords recognizes the "SD" family of surfaces used by
// the standard-deviation uncertainty pattern (§4.4 rule 4).
var StandardDeviationKeywords = map[string]bool{
	"sd":                  true,
	"s.d.":                true,
	"standard deviation":  true,
	"standard deviations": true,
}

// IntervalSeparators are the tokens that may separate the lower and upper
// bound of an untyped interval (§4.4 rule 3) or a typed interval (rule 2).
var IntervalSeparators = []string{"-", "to", ",", ";", ":"}
