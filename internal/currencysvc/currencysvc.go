// Package currencysvc implements the currency-service collaborator
// (spec.md §6): ISO 4217 validation, grounded on golang.org/x/text/currency,
// plus an offline stub conversion implementation suitable for testing and
// for callers with no live exchange-rate feed.
package currencysvc

import (
	"strings"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

var specialDrawingCodes = map[string]bool{
	"XXX": true, "XTS": true, "XUA": true, "XAG": true, "XAU": true,
}

// ValidateISO4217 reports whether code is a recognized ISO 4217 currency
// code, excluding test/special-drawing-right pseudo-codes.
func ValidateISO4217(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	if specialDrawingCodes[code] {
		return false
	}
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return false
	}
	return unit.String() == code
}

var symbolToISO = map[string]string{
	"$": "USD", "€": "EUR", "£": "GBP", "¥": "JPY",
}

// NormalizeSymbol converts a well-known currency symbol to its ISO 4217
// code. The second return value is false when symbolOrCode is not one of
// the recognized symbols.
func NormalizeSymbol(symbolOrCode string) (string, bool) {
	if code, ok := symbolToISO[symbolOrCode]; ok {
		return code, true
	}
	if len(symbolOrCode) == 3 && strings.ToUpper(symbolOrCode) == symbolOrCode && ValidateISO4217(symbolOrCode) {
		return symbolOrCode, true
	}
	return symbolOrCode, false
}

// Service is the collaborator interface the unit linker's Convert delegates
// to for currency-to-currency conversion (spec.md §6).
type Service interface {
	ConvertCurrency(value decimal.Decimal, baseYear int, baseISO4217 string, targetYear int, targetISO4217 string, operationOrder string) (decimal.Decimal, bool)
}

// FixedRateService is an offline Service backed by a static table of
// ISO4217-pair exchange rates and a yearly inflation index. It exists so the
// linker's currency-conversion path is exercisable without a live feed;
// production deployments are expected to supply their own Service.
type FixedRateService struct {
	// RatesToUSD maps an ISO 4217 code to its value in USD at RatesYear.
	RatesToUSD map[string]decimal.Decimal
	RatesYear  int
	// InflationIndex maps a year to a cumulative price index (base 1.0 at
	// RatesYear); used to adjust for a mismatched baseYear/targetYear.
	InflationIndex map[int]decimal.Decimal
}

// NewFixedRateService returns a FixedRateService seeded with a small set of
// major-currency USD rates, current as of no particular date — callers
// needing accuracy must supply their own rates.
func NewFixedRateService(year int) *FixedRateService {
	return &FixedRateService{
		RatesYear: year,
		RatesToUSD: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.NewFromFloat(1.08),
			"GBP": decimal.NewFromFloat(1.27),
			"JPY": decimal.NewFromFloat(0.0067),
			"SEK": decimal.NewFromFloat(0.095),
			"CHF": decimal.NewFromFloat(1.13),
		},
		InflationIndex: map[int]decimal.Decimal{year: decimal.NewFromInt(1)},
	}
}

// ConvertCurrency implements Service. When base and target currency are the
// same, only the inflation adjustment (if any index entries are present) is
// applied; operationOrder controls whether inflation or currency conversion
// is applied first when both years and both currencies differ.
func (s *FixedRateService) ConvertCurrency(value decimal.Decimal, baseYear int, baseISO string, targetYear int, targetISO string, operationOrder string) (decimal.Decimal, bool) {
	baseRate, ok1 := s.RatesToUSD[baseISO]
	targetRate, ok2 := s.RatesToUSD[targetISO]
	if !ok1 || !ok2 || targetRate.IsZero() {
		return decimal.Decimal{}, false
	}

	convertFX := func(v decimal.Decimal) decimal.Decimal {
		return v.Mul(baseRate).Div(targetRate)
	}
	adjustInflation := func(v decimal.Decimal) decimal.Decimal {
		baseIdx, okB := s.InflationIndex[baseYear]
		targetIdx, okT := s.InflationIndex[targetYear]
		if !okB || !okT || baseIdx.IsZero() {
			return v
		}
		return v.Mul(targetIdx).Div(baseIdx)
	}

	if operationOrder == "currency_first" {
		return adjustInflation(convertFX(value)), true
	}
	return convertFX(adjustInflation(value)), true
}
