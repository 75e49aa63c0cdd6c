package report

import (
	"fmt"
	"io"

	"github.com/quinex/quinex"
)

// TextFormatter renders a ParseResult as plain, human-readable text. This is
// the default formatter for interactive use (REPL, CLI).
type TextFormatter struct{}

func (f *TextFormatter) Name() string { return "text" }

func (f *TextFormatter) Format(w io.Writer, result quinex.ParseResult, opts Options) error {
	fmt.Fprintf(w, "%s (%s, %d quantity", result.Type, result.Success, result.NbrQuantities)
	if result.NbrQuantities != 1 {
		fmt.Fprint(w, "ies")
	}
	fmt.Fprintln(w, ")")

	for i, q := range result.NormalizedQuantities {
		fmt.Fprintf(w, "  [%d] %s\n", i, formatQuantity(q))
	}

	if opts.IncludeErrors && result.UnlikelinessScore > 0 {
		fmt.Fprintf(w, "  unlikeliness score: %d\n", result.UnlikelinessScore)
	}
	if opts.Verbose {
		for _, s := range result.Separators {
			fmt.Fprintf(w, "  separator %q: %s\n", s.Surface, s.Role)
		}
	}
	return nil
}

func formatQuantity(q quinex.NormalizedQuantity) string {
	out := ""
	if q.PrefixedModifier != nil {
		out += modifierText(q.PrefixedModifier) + " "
	}
	if q.PrefixedUnit != nil {
		out += unitText(q.PrefixedUnit) + " "
	}
	out += valueText(q.Value)
	if u := q.UncertaintyExprPreUnit; u != nil {
		out += " " + uncertaintyText(u)
	}
	if q.SuffixedUnit != nil {
		out += " " + unitText(q.SuffixedUnit)
	}
	if u := q.UncertaintyExprPostUnit; u != nil {
		out += " " + uncertaintyText(u)
	}
	if u := q.Uncertainty; u != nil {
		out += " " + uncertaintyText(u)
	}
	if q.SuffixedModifier != nil {
		out += " " + modifierText(q.SuffixedModifier)
	}
	return out
}

func valueText(v *quinex.Value) string {
	if v == nil {
		return "?"
	}
	if v.Normalized == nil {
		return v.Text
	}
	if v.Normalized.IsImprecise {
		return v.Text
	}
	if v.Normalized.NumericValue != nil {
		return v.Normalized.NumericValue.String()
	}
	return v.Text
}

func unitText(u *quinex.UnitReference) string {
	if u == nil {
		return ""
	}
	if len(u.Normalized) == 0 {
		return u.Text
	}
	out := ""
	for i, c := range u.Normalized {
		if i > 0 {
			out += "*"
		}
		out += c.URI
		if c.Exponent != 1 {
			out += fmt.Sprintf("^%d", c.Exponent)
		}
	}
	return out
}

func modifierText(m *quinex.Modifier) string {
	if m == nil {
		return ""
	}
	if m.Normalized != nil {
		return string(*m.Normalized)
	}
	return m.Text
}

func uncertaintyText(u *quinex.Uncertainty) string {
	if u == nil || u.Normalized == nil {
		if u != nil {
			return u.Text
		}
		return ""
	}
	n := u.Normalized
	return fmt.Sprintf("[%s %s..%s]", n.Type, n.Lower.String(), n.Upper.String())
}
