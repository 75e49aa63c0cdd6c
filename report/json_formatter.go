package report

import (
	"encoding/json"
	"io"

	"github.com/quinex/quinex"
)

// JSONFormatter formats a ParseResult as JSON for programmatic consumption.
type JSONFormatter struct{}

func (f *JSONFormatter) Name() string { return "json" }

func (f *JSONFormatter) Format(w io.Writer, result quinex.ParseResult, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if !opts.IncludeErrors {
		result.UnlikelinessScore = 0
	}
	return enc.Encode(result)
}
