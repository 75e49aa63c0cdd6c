package numcast

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStr2NumInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "123", "123"},
		{"comma grouped", "4,323", "4323"},
		{"negative", "-42", "-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Str2Num(tt.input)
			if !ok {
				t.Fatalf("Str2Num(%q) failed", tt.input)
			}
			if r.Value.String() != tt.want {
				t.Errorf("Str2Num(%q) = %s, want %s", tt.input, r.Value.String(), tt.want)
			}
		})
	}
}

func TestStr2NumLocalizedFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dot decimal", "0.378", "0.378"},
		{"comma decimal", "0,378", "0.378"},
		{"european thousands", "1.234,56", "1234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Str2Num(tt.input)
			if !ok {
				t.Fatalf("Str2Num(%q) failed", tt.input)
			}
			if !r.Value.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Str2Num(%q) = %s, want %s", tt.input, r.Value.String(), tt.want)
			}
		})
	}
}

func TestStr2NumFractionSum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed positive fraction", "9 3/4", "9.75"},
		{"mixed negative fraction", "9 -3/4", "8.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Str2Num(tt.input)
			if !ok {
				t.Fatalf("Str2Num(%q) failed", tt.input)
			}
			if !r.Value.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Str2Num(%q) = %s, want %s", tt.input, r.Value.String(), tt.want)
			}
		})
	}
}

func TestStr2NumMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"million word", "344 million", "344000000"},
		{"scientific notation", "1.23*10^-4", "0.000123"},
		{"k abbreviation", "12k", "12000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Str2Num(tt.input)
			if !ok {
				t.Fatalf("Str2Num(%q) failed", tt.input)
			}
			if !r.Value.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Str2Num(%q) = %s, want %s", tt.input, r.Value.String(), tt.want)
			}
		})
	}
}

func TestStr2NumMixedWords(t *testing.T) {
	r, ok := Str2Num("one hundred and twenty three")
	if !ok {
		t.Fatal("Str2Num failed")
	}
	if !r.Value.Equal(decimal.NewFromInt(123)) {
		t.Errorf("got %s, want 123", r.Value.String())
	}
}

func TestStr2NumImprecise(t *testing.T) {
	r, ok := Str2Num("several")
	if !ok {
		t.Fatal("Str2Num failed")
	}
	if !r.IsImprecise {
		t.Errorf("expected IsImprecise=true for %q", "several")
	}
}

func TestStr2NumRoundTrip(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromInt(123456789012345),
		decimal.RequireFromString("-42.5"),
		decimal.RequireFromString("0.000123456"),
	}
	for _, v := range values {
		s := Num2Str(v)
		r, ok := Str2Num(s)
		if !ok {
			t.Fatalf("Str2Num(Num2Str(%s)) failed on %q", v, s)
		}
		if !r.Value.Equal(v) {
			t.Errorf("round trip mismatch: %s -> %q -> %s", v, s, r.Value)
		}
	}
}

func TestStr2NumRejectsGarbage(t *testing.T) {
	if _, ok := Str2Num("not a number"); ok {
		t.Error("expected failure for non-numeric text")
	}
}
