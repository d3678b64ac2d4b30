package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	figure lipgloss.Style
	panel  lipgloss.Style
	header lipgloss.Style
	frame  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	hint   lipgloss.Style
	done   lipgloss.Style
	graph  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		figure: lipgloss.NewStyle().Foreground(t.Figure).Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(panelWidth),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		frame:  lipgloss.NewStyle().Foreground(t.Label).Bold(true),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		done:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Figure),
	}
}

// ProgressBar renders a bar filled to percent (0..1).
func ProgressBar(percent float64, width int, fill lipgloss.Style) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// Separator renders a thin rule of the given width.
func Separator(width int, style lipgloss.Style) string {
	if width < 7 {
		return style.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return style.Render(left + " ◆ " + right)
}
