package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the panel styles derived from a theme.
type styles struct {
	board    lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	status   lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
	pending  lipgloss.Style
	errStyle lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		board: lipgloss.NewStyle().Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(48),
		header:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		status:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		graph:    lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		pending:  lipgloss.NewStyle().Foreground(t.Warning).Italic(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true),
	}
}

// SliderBar renders a value within [min, max] as a fixed-width bar.
// Values outside the range are pinned to the ends; NaN shows as empty.
func SliderBar(value, min, max float64, width int) string {
	ratio := 0.0
	if max > min && !math.IsNaN(value) {
		ratio = (value - min) / (max - min)
	}
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
