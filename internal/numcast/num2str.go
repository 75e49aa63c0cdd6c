package numcast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Num2Str renders a decimal value back to a plain numeric literal, the
// inverse of Str2Num's integer/localized-float branch. It never introduces
// thousands separators so that Str2Num(Num2Str(x)) == x round-trips through
// the plain-integer and localized-float strategies.
func Num2Str(v decimal.Decimal) string {
	s := v.String()
	if strings.Contains(s, ".") && reInteger.MatchString(s) {
		// "1.234" would read back as the dot-grouped integer 1234; a trailing
		// zero keeps it a decimal literal of the same value.
		s += "0"
	}
	return s
}

// addThousandsSeparators renders the integer part of a numeric string with
// comma grouping, for display purposes only (not part of the round-trip
// contract).
func addThousandsSeparators(s string) string {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var result strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		if (len(s)-i)%3 == 1 && i != len(s)-1 {
			result.WriteByte(',')
		}
		result.WriteByte(s[i])
	}

	runes := []rune(result.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	out := string(runes)
	if negative {
		return "-" + out
	}
	return out
}

// Display renders v with thousands separators in the integer part, matching
// the teacher's currency-display convention.
func Display(v decimal.Decimal) string {
	s := v.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := addThousandsSeparators(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
