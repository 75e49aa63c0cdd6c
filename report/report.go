// Package report renders quinex.ParseResult values for CLI and REPL
// consumption, mirroring a document-formatting registry: callers pick a
// named Formatter and get consistent output across text, JSON, and markdown.
package report

import (
	"io"

	"github.com/quinex/quinex"
)

// Formatter renders a ParseResult for a particular output medium.
type Formatter interface {
	// Format writes the rendered result to w.
	Format(w io.Writer, result quinex.ParseResult, opts Options) error
	// Name is the registry key and CLI --format value for this formatter.
	Name() string
}

// Options controls formatter behavior across all formatters.
type Options struct {
	Verbose       bool // Show raw text slots alongside normalized values
	IncludeErrors bool // Include the unlikeliness diagnostic
}

var formatters = map[string]Formatter{
	"text":     &TextFormatter{},
	"json":     &JSONFormatter{},
	"markdown": &MarkdownFormatter{},
	"yaml":     &YAMLFormatter{},
	"html":     &HTMLFormatter{},
}

// GetFormatter returns the formatter registered under name, or the text
// formatter if name is empty or unknown.
func GetFormatter(name string) Formatter {
	if f, ok := formatters[name]; ok {
		return f
	}
	return formatters["text"]
}

// RegisterFormatter adds a custom formatter to the registry.
func RegisterFormatter(name string, f Formatter) {
	formatters[name] = f
}
