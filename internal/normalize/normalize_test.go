package normalize

import "testing"

func TestSpanSigns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plus minus slash", "12.5 +/- 3.7%", "12.5 ± 3.7%"},
		{"minus sign variant", "−0.6 to −1.2 V", "-0.6 to -1.2 V"},
		{"not equal", "x != 3", "x ≠ 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Span(tt.input); got != tt.want {
				t.Errorf("Span(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpanSuperscript(t *testing.T) {
	got := Span("10²³")
	want := "10^23"
	if got != want {
		t.Errorf("Span(superscript) = %q, want %q", got, want)
	}
}

func TestSpanPowersOfTen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"negative exponent no caret", "10-3 m", "10^-3 m"},
		{"double star", "10**3", "10^3"},
		{"scientific", "1.23e-4", "1.23*10^-4"},
		{"two digit exponent left as range bound", "10-15 min", "10-15 min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Span(tt.input); got != tt.want {
				t.Errorf("Span(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpanSplitDecimal(t *testing.T) {
	if got := Span("0. 0273"); got != "0.0273" {
		t.Errorf("Span(split decimal) = %q, want %q", got, "0.0273")
	}
}

func TestSpanLeadingZero(t *testing.T) {
	if got := Span(".27"); got != "0.27" {
		t.Errorf("Span(leading dot) = %q, want %q", got, "0.27")
	}
}

func TestSpanIdempotent(t *testing.T) {
	inputs := []string{"12.5 +/- 3.7%", "10-15 m", "−0.6 to −1.2 V", "$0.07/kWh"}
	for _, in := range inputs {
		once := Span(in)
		twice := Span(once)
		if once != twice {
			t.Errorf("Span not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
