package report

import (
	"fmt"
	"io"

	"github.com/quinex/quinex"
)

// MarkdownFormatter formats a ParseResult as a Markdown table, suitable for
// piping into a glamour renderer for terminal display or into a report file.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Name() string { return "markdown" }

func (f *MarkdownFormatter) Format(w io.Writer, result quinex.ParseResult, opts Options) error {
	fmt.Fprintf(w, "## %s\n\n", result.Text)
	fmt.Fprintf(w, "- **type:** `%s`\n", result.Type)
	fmt.Fprintf(w, "- **success:** `%s`\n", result.Success)
	fmt.Fprintf(w, "- **quantities:** %d\n\n", result.NbrQuantities)

	if len(result.NormalizedQuantities) > 0 {
		fmt.Fprintln(w, "| # | value | unit | uncertainty | modifier |")
		fmt.Fprintln(w, "|---|---|---|---|---|")
		for i, q := range result.NormalizedQuantities {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s |\n",
				i, valueText(q.Value), unitText(pickUnit(q)), uncertaintyText(pickUncertainty(q)), modifierText(pickModifier(q)))
		}
		fmt.Fprintln(w)
	}

	if opts.IncludeErrors && result.UnlikelinessScore > 0 {
		fmt.Fprintf(w, "> unlikeliness score: %d\n", result.UnlikelinessScore)
	}
	return nil
}

func pickUnit(q quinex.NormalizedQuantity) *quinex.UnitReference {
	if q.SuffixedUnit != nil {
		return q.SuffixedUnit
	}
	return q.PrefixedUnit
}

func pickUncertainty(q quinex.NormalizedQuantity) *quinex.Uncertainty {
	if q.Uncertainty != nil {
		return q.Uncertainty
	}
	if q.UncertaintyExprPreUnit != nil {
		return q.UncertaintyExprPreUnit
	}
	return q.UncertaintyExprPostUnit
}

func pickModifier(q quinex.NormalizedQuantity) *quinex.Modifier {
	if q.PrefixedModifier != nil {
		return q.PrefixedModifier
	}
	return q.SuffixedModifier
}
