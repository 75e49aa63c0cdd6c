package report

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourStyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"

	"github.com/quinex/quinex/config"
)

// terminalRenderer is a cached glamour renderer, built once from the active
// theme so repeated REPL output doesn't re-initialize terminal styling.
var (
	terminalRenderer     *glamour.TermRenderer
	terminalRendererOnce sync.Once
)

// glamourStyleFromTheme overrides glamour's default dark style with the
// Md* colors from a quinex theme, preserving glamour's own margins, list
// formatting, and heading layout.
func glamourStyleFromTheme(theme config.ThemeConfig) ansi.StyleConfig {
	style := glamourStyles.DarkStyleConfig
	style.Document.Color = &theme.MdText
	style.Heading.Color = &theme.MdHeading
	style.H1.Color = &theme.Bright
	style.H1.BackgroundColor = &theme.MdH1Bg
	style.H2.Color = &theme.Bright
	style.H2.BackgroundColor = &theme.MdH2Bg
	style.Link.Color = &theme.MdLink
	style.LinkText.Color = &theme.MdLink
	style.BlockQuote.Color = &theme.MdQuote
	style.Code.Color = &theme.MdCode
	style.Code.BackgroundColor = &theme.MdCodeBg
	style.CodeBlock.StyleBlock.Color = &theme.MdCode
	return style
}

func initTerminalRenderer(theme config.ThemeConfig) *glamour.TermRenderer {
	terminalRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(glamourStyleFromTheme(theme)),
			glamour.WithColorProfile(termenv.TrueColor),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			terminalRenderer = r
		}
	})
	return terminalRenderer
}

// RenderTerminalMarkdown renders the Markdown formatter's output through
// glamour for display in an interactive terminal session. On renderer
// failure it returns the original markdown unchanged.
func RenderTerminalMarkdown(theme config.ThemeConfig, markdown string) string {
	r := initTerminalRenderer(theme)
	if r == nil {
		return markdown
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(rendered)
}
