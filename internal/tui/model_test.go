package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/orchestration"
)

// drive pushes the model through its stage messages synchronously by
// executing returned commands inline.
func drive(t *testing.T, m Model) Model {
	t.Helper()
	var cmds []tea.Cmd
	cmds = append(cmds, m.runStage(0))
	m.states[0] = stageRunning

	for len(cmds) > 0 {
		cmd := cmds[0]
		cmds = cmds[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch msg.(type) {
		case stageDoneMsg, assembledMsg:
			next, cmd := m.Update(msg)
			m = next.(Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return m
}

// TestModel_FullPerformance drives all four stages and expects the reveal.
func TestModel_FullPerformance(t *testing.T) {
	m := NewModel(context.Background(), orchestration.New(), 0, "test")
	m = drive(t, m)

	if !m.Done() {
		t.Fatal("model should be done after all stages")
	}
	if m.message != "Hello World!" {
		t.Errorf("message = %q, want %q", m.message, "Hello World!")
	}
	if m.ExitCode() != apperrors.ExitSuccess {
		t.Errorf("ExitCode() = %d, want success", m.ExitCode())
	}
	for i, st := range m.states {
		if st != stageDone {
			t.Errorf("stage %d state = %v, want done", i, st)
		}
	}
}

// TestModel_View verifies key view content at the end of a run.
func TestModel_View(t *testing.T) {
	m := NewModel(context.Background(), orchestration.New(), 0, "4.2.0")
	m = drive(t, m)

	view := m.View()
	for _, want := range []string{"ENTERPRISE HELLO WORLD v4.2.0", "Hello World!", "press q to exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

// TestModel_QuitKey verifies q quits.
func TestModel_QuitKey(t *testing.T) {
	m := NewModel(context.Background(), orchestration.New(), 0, "test")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}

// TestModel_PendingView verifies pending stages render before any decode.
func TestModel_PendingView(t *testing.T) {
	m := NewModel(context.Background(), orchestration.New(), 0, "test")
	view := m.View()
	for _, label := range []string{"fibonacci decoder", "church numerals", "blockchain mining", "ascii pipeline"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing stage %q", label)
		}
	}
}
