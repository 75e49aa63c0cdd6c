package config

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-built lipgloss styles derived from theme config.
// This avoids rebuilding styles on every render call.
type Styles struct {
	Prompt     lipgloss.Style
	Input      lipgloss.Style
	Output     lipgloss.Style
	Value      lipgloss.Style
	Unit       lipgloss.Style
	Uncertainty lipgloss.Style
	Modifier   lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Help       lipgloss.Style
	Hint       lipgloss.Style
	Separator  lipgloss.Style

	// Markdown report preview styles
	MdText   lipgloss.Style
	MdH1     lipgloss.Style
	MdH2     lipgloss.Style
	MdH3Plus lipgloss.Style
	MdLink   lipgloss.Style
	MdQuote  lipgloss.Style
	MdCode   lipgloss.Style
	MdCodeBg lipgloss.Style
}

// BuildStyles creates lipgloss.Style instances from ThemeConfig.
// Call this once after loading config, then reuse the Styles struct.
func (t ThemeConfig) BuildStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Bright)),

		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Output)),

		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Output)),

		Unit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Uncertainty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Modifier: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(t.Dimmed)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Margin(1, 0),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Dimmed)).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		MdText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.MdText)),

		MdH1: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(t.MdH1Bg)).
			Foreground(lipgloss.Color(t.Bright)).
			Padding(0, 1),

		MdH2: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(t.MdH2Bg)).
			Foreground(lipgloss.Color(t.Bright)).
			Padding(0, 1),

		MdH3Plus: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.MdHeading)),

		MdLink: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(t.MdLink)),

		MdQuote: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(t.MdQuote)),

		MdCode: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.MdCode)),

		MdCodeBg: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.MdCode)).
			Background(lipgloss.Color(t.MdCodeBg)),
	}
}
