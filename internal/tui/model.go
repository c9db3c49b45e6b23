// Package tui implements the interactive dashboard mode: the four subsystems
// animate through their decodes one by one, the message is revealed in its
// box, and the run waits for a keypress before exiting. Strictly more
// ceremony than the CLI, which is saying something.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/orchestration"
)

// stageState tracks where a subsystem is in its lifecycle.
type stageState int

const (
	stagePending stageState = iota
	stageRunning
	stageDone
	stageFailed
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// stageDoneMsg reports a finished fragment decode.
type stageDoneMsg struct {
	index  int
	result orchestration.FragmentResult
}

// assembledMsg reports the final assembly outcome.
type assembledMsg struct {
	message string
	err     error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx          context.Context
	orchestrator *orchestration.Orchestrator
	stages       []orchestration.Stage
	results      []orchestration.FragmentResult
	states       []stageState
	current      int
	delay        time.Duration
	version      string

	spin    spinner.Model
	message string
	err     error
	started time.Time
	elapsed time.Duration
	width   int
}

// NewModel creates the dashboard model.
//
// Parameters:
//   - ctx: The run context.
//   - o: The orchestrator whose stages the dashboard drives.
//   - delay: The dramatic pause per subsystem.
//   - version: The application version for the header.
//
// Returns:
//   - Model: The initialized model.
func NewModel(ctx context.Context, o *orchestration.Orchestrator, delay time.Duration, version string) Model {
	stages := o.Stages()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		ctx:          ctx,
		orchestrator: o,
		stages:       stages,
		results:      make([]orchestration.FragmentResult, len(stages)),
		states:       make([]stageState, len(stages)),
		delay:        delay,
		version:      version,
		spin:         sp,
		started:      time.Now(),
	}
}

// Init starts the spinner and the first stage.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.runStage(0))
}

// runStage returns a command decoding stage i after the dramatic pause.
func (m Model) runStage(i int) tea.Cmd {
	stage := m.stages[i]
	delay := m.delay
	ctx := m.ctx
	return func() tea.Msg {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
		}
		return stageDoneMsg{index: i, result: stage.Run(ctx)}
	}
}

// assemble returns a command running the final assembly and assertion.
func (m Model) assemble() tea.Cmd {
	o := m.orchestrator
	results := m.results
	return func() tea.Msg {
		message, err := o.Assemble(results)
		return assembledMsg{message: message, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case stageDoneMsg:
		m.results[msg.index] = msg.result
		if msg.result.Err != nil {
			m.states[msg.index] = stageFailed
			m.err = msg.result.Err
			m.elapsed = time.Since(m.started)
			return m, nil
		}
		m.states[msg.index] = stageDone
		if next := msg.index + 1; next < len(m.stages) {
			m.current = next
			m.states[next] = stageRunning
			return m, m.runStage(next)
		}
		return m, m.assemble()

	case assembledMsg:
		m.elapsed = time.Since(m.started)
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.message = msg.message
		}
		return m, nil
	}

	return m, nil
}

// Done reports whether the performance has finished, in either direction.
func (m Model) Done() bool { return m.message != "" || m.err != nil }

// ExitCode maps the final state to a process exit code.
func (m Model) ExitCode() int {
	switch {
	case m.message != "":
		return apperrors.ExitSuccess
	case m.err != nil:
		return apperrors.ExitErrorMismatch
	default:
		return apperrors.ExitErrorGeneric
	}
}

// Run starts the dashboard and blocks until it exits.
//
// Parameters:
//   - ctx: The run context; cancellation quits the program.
//   - o: The orchestrator to drive.
//   - delay: The dramatic pause per subsystem.
//   - version: The application version for the header.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, o *orchestration.Orchestrator, delay time.Duration, version string) int {
	model := NewModel(ctx, o, delay, version)
	model.states[0] = stageRunning

	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitErrorGeneric
}
