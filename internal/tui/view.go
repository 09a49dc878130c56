package tui

import (
	"fmt"
	"strings"

	"splashgen/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the status lines, then a footer with the spinner while the
// run is in progress or the totals once it is done.
func (m AppModel) View() string {
	var b strings.Builder

	lines := m.Lines
	// Keep the footer on screen while running.
	if !m.Done && m.WindowSize.Height > 4 && len(lines) > m.WindowSize.Height-4 {
		lines = lines[len(lines)-(m.WindowSize.Height-4):]
	}
	for _, l := range lines {
		switch l.Kind {
		case LineHeader:
			fmt.Fprintf(&b, "\n %s\n\n", headerStyle.Render(l.Text))
		case LineSuccess:
			fmt.Fprintf(&b, "  %s  %s\n", successStyle.Render(model.IconSuccess), l.Text)
		case LineFailure:
			fmt.Fprintf(&b, "  %s  %s\n", failureStyle.Render(model.IconFailure), l.Text)
		}
	}

	b.WriteString("\n")
	if m.Done {
		b.WriteString(footerStyle.Render(fmt.Sprintf(" %d ok, %d failed", m.Created, m.Failed)))
		b.WriteString("\n")
		return b.String()
	}
	fmt.Fprintf(&b, " %s %s", m.Spinner.View(), m.Current)
	b.WriteString(footerStyle.Render(fmt.Sprintf("  (%d ok, %d failed, q to quit)", m.Created, m.Failed)))
	b.WriteString("\n")
	return b.String()
}
