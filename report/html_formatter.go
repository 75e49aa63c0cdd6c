package report

import (
	"bytes"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/quinex/quinex"
)

// HTMLFormatter renders a ParseResult as an HTML document by first building
// the Markdown report, then converting it with gomarkdown. Suitable for
// `quinex parse --format=html` output piped to a file for sharing a parse
// outside a terminal.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Name() string { return "html" }

func (f *HTMLFormatter) Format(w io.Writer, result quinex.ParseResult, opts Options) error {
	var md bytes.Buffer
	if err := (&MarkdownFormatter{}).Format(&md, result, opts); err != nil {
		return err
	}

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md.Bytes())

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	_, err := w.Write(markdown.Render(doc, renderer))
	return err
}
