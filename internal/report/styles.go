package report

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles used for diagnostics.
// They are bound to the output's renderer, so colour is dropped when the output is not a terminal.
type styles struct {
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	stream  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		label:   r.NewStyle().Bold(true),
		value:   r.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		success: r.NewStyle().Foreground(lipgloss.Color("2")), // Green
		failure: r.NewStyle().Foreground(lipgloss.Color("1")), // Red
		stream:  r.NewStyle().Faint(true),
	}
}
