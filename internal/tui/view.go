package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/viviai0214/fancy-hello-world/internal/format"
	"github.com/viviai0214/fancy-hello-world/internal/ui"
)

// Style definitions for the dashboard.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	stagePendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))

	stageDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	stageFailedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 1)
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("ENTERPRISE HELLO WORLD v%s", m.version)))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.renderStages()))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n" + ui.RenderRevealBox(m.message) + "\n")
		b.WriteString(footerStyle.Render(fmt.Sprintf(
			"delivered in %s, press q to exit", format.FormatExecutionDuration(m.elapsed))))
	} else if m.err != nil {
		b.WriteString("\n" + stageFailedStyle.Render("FATAL: "+m.err.Error()) + "\n")
		b.WriteString(footerStyle.Render("press q to exit"))
	} else {
		b.WriteString(footerStyle.Render("q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderStages renders one line per subsystem.
func (m Model) renderStages() string {
	var lines []string
	for i, stage := range m.stages {
		var line string
		switch m.states[i] {
		case stageRunning:
			line = fmt.Sprintf("%s %s", m.spin.View(), stage.Label)
		case stageDone:
			res := m.results[i]
			line = stageDoneStyle.Render(
				fmt.Sprintf("✓ %-18s %q  %s", stage.Label, res.Text,
					format.FormatExecutionDuration(res.Duration)))
		case stageFailed:
			line = stageFailedStyle.Render(fmt.Sprintf("✗ %-18s %v", stage.Label, m.results[i].Err))
		default:
			line = stagePendingStyle.Render(fmt.Sprintf("· %s", stage.Label))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
