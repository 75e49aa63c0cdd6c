package units

import (
	"github.com/shopspring/decimal"

	"github.com/quinex/quinex/internal/lookups"
)

// CurrencyConverter is the external collaborator for currency conversion
// (spec.md §6 "currency service"). Convert delegates to it whenever either
// side of a conversion is a currency URI.
type CurrencyConverter interface {
	ConvertCurrency(value decimal.Decimal, baseYear int, baseISO4217 string, targetYear int, targetISO4217 string, operationOrder string) (decimal.Decimal, bool)
}

const placeholderCentURI = "quinex:currency:placeholder_cent"

// Convert performs the side operation described in spec.md §4.3/§6.
// Physical conversion requires equal dimension vectors and zero offsets on
// both sides. Currency conversion delegates to cc and requires both years.
// PLACEHOLDER_CENT paired with another currency is treated as that currency
// divided by 100; alone, or paired with a non-currency, it fails.
func Convert(cc CurrencyConverter, value decimal.Decimal, fromURI, toURI string, fromYear, toYear *int) (decimal.Decimal, bool) {
	from, okFrom := lookups.UnitsByURI[fromURI]
	to, okTo := lookups.UnitsByURI[toURI]
	if !okFrom || !okTo {
		return decimal.Decimal{}, false
	}

	if fromURI == placeholderCentURI || toURI == placeholderCentURI {
		return convertWithCent(cc, value, fromURI, toURI, from, to, fromYear, toYear)
	}

	if from.IsCurrency && to.IsCurrency {
		if cc == nil || fromYear == nil || toYear == nil {
			return decimal.Decimal{}, false
		}
		return cc.ConvertCurrency(value, *fromYear, currencyCode(fromURI), *toYear, currencyCode(toURI), "inflation_first")
	}
	if from.IsCurrency || to.IsCurrency {
		return decimal.Decimal{}, false
	}

	if !from.DimensionVector.Equal(to.DimensionVector) {
		return decimal.Decimal{}, false
	}
	if !from.ConversionOffset.IsZero() || !to.ConversionOffset.IsZero() {
		return decimal.Decimal{}, false
	}

	base := value.Mul(from.ConversionMultiplier)
	return base.Div(to.ConversionMultiplier), true
}

func convertWithCent(cc CurrencyConverter, value decimal.Decimal, fromURI, toURI string, from, to lookups.UnitEntry, fromYear, toYear *int) (decimal.Decimal, bool) {
	hundred := decimal.NewFromInt(100)
	switch {
	case fromURI == placeholderCentURI && to.IsCurrency:
		return Convert(cc, value.Div(hundred), currencyPairedWithCent(toURI), toURI, fromYear, toYear)
	case toURI == placeholderCentURI && from.IsCurrency:
		v, ok := Convert(cc, value, fromURI, currencyPairedWithCent(fromURI), fromYear, toYear)
		if !ok {
			return decimal.Decimal{}, false
		}
		return v.Mul(hundred), true
	default:
		return decimal.Decimal{}, false
	}
}

// currencyPairedWithCent resolves PLACEHOLDER_CENT's denomination to the
// currency it was paired with; here the pairing is the other side of the
// same conversion call, so this is just an identity passthrough kept
// separate for readability at the call sites above.
func currencyPairedWithCent(uri string) string { return uri }

func currencyCode(uri string) string {
	switch uri {
	case "quinex:currency:usd":
		return "USD"
	case "quinex:currency:eur":
		return "EUR"
	case "quinex:currency:gbp":
		return "GBP"
	case "quinex:currency:jpy":
		return "JPY"
	case "quinex:currency:sek":
		return "SEK"
	case "quinex:currency:chf":
		return "CHF"
	default:
		return ""
	}
}
