// Package numcast implements the str2num/num2str value-casting cascade
// (spec.md §4.2): a string is tried against several numeric interpretations
// in order, and the first one that succeeds wins.
package numcast

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/lookups"
)

// Result is the outcome of a successful cast.
type Result struct {
	Value           decimal.Decimal
	IsImprecise     bool
	OrderOfMagnitude *int
}

var (
	reInteger        = regexp.MustCompile(`^[+-]?[1-9]\d{0,2}([,.\x27]\d{3})*$`)
	reIntegerPlain   = regexp.MustCompile(`^[+-]?\d+$`)
	reLocalizedFloat = regexp.MustCompile(`^[+-]?\d+([.,]\d+)?$`)
	reOrdinalSuffix  = regexp.MustCompile(`(?i)^(\d+)(st|nd|rd|th)$`)
	rePowerLiteral   = regexp.MustCompile(`^([+-]?[\d.]+)\^([+-]?\d+)$`)
	reSciMagnitude   = regexp.MustCompile(`(?i)^([+-]?[\d.,]+)\s*[x*]?\s*10\^([+-]?\d+)$`)
	reEMagnitude     = regexp.MustCompile(`(?i)^([+-]?[\d.,]+)e([+-]?\d+)$`)
	reAbbrevSuffix   = regexp.MustCompile(`(?i)^([+-]?[\d.,]+)\s*(k|m|b)$`)
	reFractionToken  = regexp.MustCompile(`^([+-]?\d+)/(\d+)$`)
)

// Str2Num attempts, in order, integer / localized-float / number-word /
// fraction-sum / power-literal / magnitude / mixed-words interpretations of
// s and returns the first that succeeds.
func Str2Num(s string) (Result, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{}, false
	}

	if lookups.ImprecisePhrases[strings.ToLower(s)] {
		return Result{IsImprecise: true}, true
	}

	if m := reOrdinalSuffix.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	if s == "a" || s == "an" {
		return Result{Value: decimal.NewFromInt(1)}, true
	}
	if len(s) == 1 && !isDigitByte(s[0]) {
		return Result{}, false
	}

	if r, ok := tryInteger(s); ok {
		return r, true
	}
	if r, ok := tryLocalizedFloat(s); ok {
		return r, true
	}
	if r, ok := tryNumberWords(s); ok {
		return r, true
	}
	if r, ok := tryFractionSum(s); ok {
		return r, true
	}
	if r, ok := tryPowerLiteral(s); ok {
		return r, true
	}
	if r, ok := tryMagnitude(s); ok {
		return r, true
	}
	if r, ok := tryMixedWords(s); ok {
		return r, true
	}
	return Result{}, false
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// tryInteger handles an integer literal with a single consistent thousands
// separator among {, . '}, grouped in threes, with no dot acting as decimal.
func tryInteger(s string) (Result, bool) {
	if reIntegerPlain.MatchString(s) {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return Result{}, false
		}
		return Result{Value: v}, true
	}
	if !reInteger.MatchString(s) {
		return Result{}, false
	}
	seps := 0
	for _, sep := range []string{",", ".", "'"} {
		if strings.Contains(s, sep) {
			seps++
		}
	}
	if seps > 1 {
		return Result{}, false
	}
	stripped := strings.NewReplacer(",", "", ".", "", "'", "").Replace(s)
	v, err := decimal.NewFromString(stripped)
	if err != nil {
		return Result{}, false
	}
	return Result{Value: v}, true
}

// tryLocalizedFloat handles sign? integer-part (decimal-sep fractional-part)?
// where the decimal separator is whichever of ',' or '.' is not used as a
// thousands separator; if both appear, the last occurring one is decimal.
func tryLocalizedFloat(s string) (Result, bool) {
	if !strings.ContainsAny(s, ",.") {
		return Result{}, false
	}
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	var decimalSep byte
	switch {
	case lastComma == -1:
		decimalSep = '.'
	case lastDot == -1:
		decimalSep = ','
	case lastComma > lastDot:
		decimalSep = ','
	default:
		decimalSep = '.'
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ',', '.':
			if c == decimalSep && strings.Count(s[i+1:], string(decimalSep)) == 0 && lastIndexByte(s, decimalSep) == i {
				b.WriteByte('.')
			}
			// else: thousands separator, drop
		default:
			b.WriteByte(c)
		}
	}
	canon := b.String()
	if !reLocalizedFloat.MatchString(canon) {
		return Result{}, false
	}
	v, err := decimal.NewFromString(canon)
	if err != nil {
		return Result{}, false
	}
	return Result{Value: v}, true
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func tryNumberWords(s string) (Result, bool) {
	key := strings.ToLower(strings.TrimSuffix(s, "s"))
	if v, ok := lookups.NumberWords[strings.ToLower(s)]; ok {
		return Result{Value: decimal.NewFromFloat(v)}, true
	}
	if v, ok := lookups.NumberWords[key]; ok {
		return Result{Value: decimal.NewFromFloat(v)}, true
	}
	if v, ok := lookups.StandaloneNumberWords[strings.ToLower(s)]; ok {
		return Result{Value: decimal.NewFromFloat(v)}, true
	}
	return Result{}, false
}

// tryFractionSum combines whitespace-separated tokens additively, e.g.
// "9 3/4" -> 9.75, "9 -3/4" -> 8.25.
func tryFractionSum(s string) (Result, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return Result{}, false
	}
	total := decimal.Zero
	matchedFraction := false
	for _, p := range parts {
		if m := reFractionToken.FindStringSubmatch(p); m != nil {
			num, err1 := decimal.NewFromString(m[1])
			den, err2 := decimal.NewFromString(m[2])
			if err1 != nil || err2 != nil || den.IsZero() {
				return Result{}, false
			}
			total = total.Add(num.Div(den))
			matchedFraction = true
			continue
		}
		v, err := decimal.NewFromString(p)
		if err != nil {
			return Result{}, false
		}
		total = total.Add(v)
	}
	if !matchedFraction {
		return Result{}, false
	}
	return Result{Value: total}, true
}

func tryPowerLiteral(s string) (Result, bool) {
	s = strings.ReplaceAll(s, "**", "^")
	m := rePowerLiteral.FindStringSubmatch(s)
	if m == nil {
		return Result{}, false
	}
	base, err := decimal.NewFromString(m[1])
	if err != nil {
		return Result{}, false
	}
	exp, err := strconv.Atoi(m[2])
	if err != nil {
		return Result{}, false
	}
	return Result{Value: decimalPow(base, exp)}, true
}

func decimalPow(base decimal.Decimal, exp int) decimal.Decimal {
	if exp == 0 {
		return decimal.NewFromInt(1)
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := decimal.NewFromInt(1)
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	if neg {
		result = decimal.NewFromInt(1).DivRound(result, 34)
	}
	return result
}

// tryMagnitude handles "×10^n", "e±n", magnitude words, and k/M/B
// abbreviation suffixes, computed in arbitrary precision.
func tryMagnitude(s string) (Result, bool) {
	if m := reSciMagnitude.FindStringSubmatch(s); m != nil {
		return magnitudeFromParts(m[1], m[2])
	}
	if m := reEMagnitude.FindStringSubmatch(s); m != nil {
		return magnitudeFromParts(m[1], m[2])
	}
	if m := reAbbrevSuffix.FindStringSubmatch(s); m != nil {
		exp := map[string]int{"k": 3, "m": 6, "b": 9}[strings.ToLower(m[2])]
		return magnitudeFromParts(m[1], strconv.Itoa(exp))
	}

	fields := strings.Fields(s)
	if len(fields) == 2 {
		if exp, ok := lookups.OrderOfMagnitudeWords[strings.ToLower(fields[1])]; ok {
			return magnitudeFromParts(fields[0], strconv.Itoa(exp))
		}
	}
	if exp, ok := lookups.OrderOfMagnitudeWords[strings.ToLower(s)]; ok {
		oom := exp
		return Result{Value: decimalPow(decimal.NewFromInt(10), exp), OrderOfMagnitude: &oom}, true
	}
	return Result{}, false
}

func magnitudeFromParts(valuePart, expPart string) (Result, bool) {
	valuePart = strings.ReplaceAll(valuePart, ",", "")
	v, err := decimal.NewFromString(valuePart)
	if err != nil {
		return Result{}, false
	}
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return Result{}, false
	}
	oom := exp
	return Result{Value: v.Mul(decimalPow(decimal.NewFromInt(10), exp)), OrderOfMagnitude: &oom}, true
}

// tryMixedWords handles a mix of digits and number words, additive across
// "and"/comma, e.g. "12.3 million", "fifty seven billion",
// "one hundred and twenty three".
func tryMixedWords(s string) (Result, bool) {
	lower := strings.ToLower(s)
	lower = strings.ReplaceAll(lower, ",", " ")
	fields := strings.Fields(lower)
	if len(fields) < 2 {
		return Result{}, false
	}

	total := decimal.Zero
	current := decimal.Zero
	matchedAny := false
	hasDigitsBefore := false

	for _, f := range fields {
		if f == "and" {
			continue
		}
		if lookups.ConfusableWithUnit[f] && hasDigitsBefore {
			return Result{}, false
		}
		if magExp, ok := lookups.OrderOfMagnitudeWords[f]; ok {
			if current.IsZero() {
				current = decimal.NewFromInt(1)
			}
			current = current.Mul(decimalPow(decimal.NewFromInt(10), magExp))
			if magExp >= 6 {
				total = total.Add(current)
				current = decimal.Zero
			}
			matchedAny = true
			continue
		}
		if v, ok := lookups.NumberWords[f]; ok {
			current = current.Add(decimal.NewFromFloat(v))
			matchedAny = true
			hasDigitsBefore = true
			continue
		}
		if v, err := decimal.NewFromString(f); err == nil {
			current = current.Add(v)
			matchedAny = true
			hasDigitsBefore = true
			continue
		}
		return Result{}, false
	}
	if !matchedAny {
		return Result{}, false
	}
	total = total.Add(current)
	return Result{Value: total}, true
}
