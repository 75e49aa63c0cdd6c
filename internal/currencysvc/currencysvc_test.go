package currencysvc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateISO4217(t *testing.T) {
	cases := map[string]bool{
		"USD": true,
		"EUR": true,
		"XXX": false, // special drawing right pseudo-code excluded
		"ZZZ": false,
		"usd": false,
		"US":  false,
	}
	for code, want := range cases {
		if got := ValidateISO4217(code); got != want {
			t.Errorf("ValidateISO4217(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if code, ok := NormalizeSymbol("$"); !ok || code != "USD" {
		t.Errorf("NormalizeSymbol($) = (%s, %v), want (USD, true)", code, ok)
	}
	if code, ok := NormalizeSymbol("€"); !ok || code != "EUR" {
		t.Errorf("NormalizeSymbol(€) = (%s, %v), want (EUR, true)", code, ok)
	}
	if code, ok := NormalizeSymbol("CAD"); !ok || code != "CAD" {
		t.Errorf("NormalizeSymbol(CAD) = (%s, %v), want (CAD, true)", code, ok)
	}
	if _, ok := NormalizeSymbol("not-a-currency"); ok {
		t.Error("expected NormalizeSymbol to reject a non-currency token")
	}
}

func TestFixedRateServiceConvertCurrency(t *testing.T) {
	svc := NewFixedRateService(2024)
	out, ok := svc.ConvertCurrency(decimal.NewFromInt(100), 2024, "EUR", 2024, "USD", "currency_first")
	if !ok {
		t.Fatal("ConvertCurrency(EUR, USD) failed")
	}
	if out.IsNegative() || out.IsZero() {
		t.Errorf("unexpected conversion result: %s", out)
	}
}

func TestFixedRateServiceRejectsUnknownCurrency(t *testing.T) {
	svc := NewFixedRateService(2024)
	if _, ok := svc.ConvertCurrency(decimal.NewFromInt(100), 2024, "ZZZ", 2024, "USD", "currency_first"); ok {
		t.Error("expected conversion with an unknown currency to fail")
	}
}
