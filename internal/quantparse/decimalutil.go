package quantparse

import "github.com/shopspring/decimal"

func pow10(exp int) decimal.Decimal {
	if exp == 0 {
		return decimal.NewFromInt(1)
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := decimal.NewFromInt(1)
	ten := decimal.NewFromInt(10)
	for i := 0; i < exp; i++ {
		result = result.Mul(ten)
	}
	if neg {
		result = decimal.NewFromInt(1).DivRound(result, 34)
	}
	return result
}
