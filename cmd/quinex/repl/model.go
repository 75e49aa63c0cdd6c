// Package repl implements the quinex interactive shell: a minimal,
// scrolling history view where each line of input is parsed and its
// structured result is appended below it. No split panes, no pinned
// panel — just input -> output in a list.
package repl

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/quinex/quinex"
	"github.com/quinex/quinex/config"
	"github.com/quinex/quinex/report"
)

// HistoryEntry is a single REPL history entry. ID tags the entry so a
// session's scrollback can be replayed or diffed across runs.
type HistoryEntry struct {
	ID      string
	Input   string
	Output  string
	IsError bool
}

// Model implements tea.Model for the quinex REPL.
type Model struct {
	input   textinput.Model
	history []HistoryEntry

	navIdx int // position while browsing history with up/down, -1 = not browsing

	width  int
	height int

	quitting bool

	styles config.Styles
}

// New creates a new REPL model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = `Enter a quantity expression (e.g. "about 344 million €")`
	ti.Focus()
	ti.CharLimit = 400
	ti.Width = 70

	return Model{
		input:   ti,
		history: []HistoryEntry{},
		navIdx:  -1,
		width:   80,
		height:  24,
		styles:  config.GetStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 6
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		return m.historyUp(), nil

	case tea.KeyDown:
		return m.historyDown(), nil

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) historyUp() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.navIdx == -1 {
		m.navIdx = len(m.history) - 1
	} else if m.navIdx > 0 {
		m.navIdx--
	}
	m.input.SetValue(m.history[m.navIdx].Input)
	return m
}

func (m Model) historyDown() Model {
	if m.navIdx == -1 {
		return m
	}
	m.navIdx++
	if m.navIdx >= len(m.history) {
		m.navIdx = -1
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.navIdx].Input)
	}
	return m
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.navIdx = -1
	m.input.SetValue("")
	if text == "" {
		return m, nil
	}

	switch text {
	case "/quit", "/q":
		m.quitting = true
		return m, tea.Quit
	case "/clear":
		m.history = nil
		return m, nil
	}

	entry := HistoryEntry{ID: uuid.New().String(), Input: text}
	result, err := quinex.Parse(text, quinex.ParseOptions{})
	if err != nil {
		entry.Output = err.Error()
		entry.IsError = true
	} else {
		var buf bytes.Buffer
		if fmtErr := report.GetFormatter("markdown").Format(&buf, result, report.Options{}); fmtErr != nil {
			entry.Output = fmtErr.Error()
			entry.IsError = true
		} else {
			entry.Output = report.RenderTerminalMarkdown(config.Get().REPL.Theme, buf.String())
			entry.IsError = result.Success == quinex.SuccessFalse
		}
	}

	m.history = append(m.history, entry)
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Help.Render("quinex — type an expression, /clear to reset, /quit to exit") + "\n\n")

	for _, h := range m.history {
		b.WriteString(m.styles.Prompt.Render("> ") + m.styles.Input.Render(h.Input) + "\n")
		if h.IsError {
			b.WriteString(m.styles.Error.Render(h.Output) + "\n\n")
		} else {
			b.WriteString(indent(h.Output) + "\n\n")
		}
	}

	b.WriteString(m.input.View())
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// Run starts the REPL as an alt-screen bubbletea program.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
