package repl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quinex/quinex/config"
)

func init() {
	config.Load()
}

func TestNewModel(t *testing.T) {
	m := New()
	if m.navIdx != -1 {
		t.Errorf("navIdx = %d, want -1", m.navIdx)
	}
	if len(m.history) != 0 {
		t.Error("expected empty history on a new model")
	}
}

func TestHandleKeyCtrlC(t *testing.T) {
	m := New()
	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	result := newModel.(Model)
	if !result.quitting {
		t.Error("Ctrl+C should set quitting=true")
	}
	if cmd == nil {
		t.Error("Ctrl+C should return quit command")
	}
}

func TestSubmitParsesAndAppendsHistory(t *testing.T) {
	m := New()
	m.input.SetValue("12.5 meters")
	newModel, _ := m.submit()
	result := newModel.(Model)
	if len(result.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(result.history))
	}
	entry := result.history[0]
	if entry.Input != "12.5 meters" {
		t.Errorf("Input = %q, want %q", entry.Input, "12.5 meters")
	}
	if entry.ID == "" {
		t.Error("expected a generated entry ID")
	}
	if entry.IsError {
		t.Errorf("unexpected error output: %s", entry.Output)
	}
}

func TestSubmitClearClearsHistory(t *testing.T) {
	m := New()
	m.input.SetValue("12.5 meters")
	newModel, _ := m.submit()
	m = newModel.(Model)
	m.input.SetValue("/clear")
	newModel, _ = m.submit()
	m = newModel.(Model)
	if len(m.history) != 0 {
		t.Error("expected /clear to empty history")
	}
}

func TestSubmitQuitSetsQuitting(t *testing.T) {
	m := New()
	m.input.SetValue("/quit")
	newModel, cmd := m.submit()
	result := newModel.(Model)
	if !result.quitting {
		t.Error("/quit should set quitting=true")
	}
	if cmd == nil {
		t.Error("/quit should return a quit command")
	}
}

func TestHistoryNavigation(t *testing.T) {
	m := New()
	m.input.SetValue("1 meter")
	newModel, _ := m.submit()
	m = newModel.(Model)
	m.input.SetValue("2 meters")
	newModel, _ = m.submit()
	m = newModel.(Model)

	m = m.historyUp()
	if m.input.Value() != "2 meters" {
		t.Errorf("historyUp() input = %q, want %q", m.input.Value(), "2 meters")
	}
	m = m.historyUp()
	if m.input.Value() != "1 meter" {
		t.Errorf("historyUp() (again) input = %q, want %q", m.input.Value(), "1 meter")
	}
	m = m.historyDown()
	if m.input.Value() != "2 meters" {
		t.Errorf("historyDown() input = %q, want %q", m.input.Value(), "2 meters")
	}
	m = m.historyDown()
	if m.input.Value() != "" {
		t.Errorf("historyDown() past the end should clear input, got %q", m.input.Value())
	}
}
