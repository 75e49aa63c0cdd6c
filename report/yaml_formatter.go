package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/quinex/quinex"
)

// YAMLFormatter formats a ParseResult as YAML, mirroring JSONFormatter's
// shape for callers that prefer a YAML pipeline (e.g. feeding a parse
// result into another YAML-configured tool).
type YAMLFormatter struct{}

func (f *YAMLFormatter) Name() string { return "yaml" }

func (f *YAMLFormatter) Format(w io.Writer, result quinex.ParseResult, opts Options) error {
	if !opts.IncludeErrors {
		result.UnlikelinessScore = 0
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
