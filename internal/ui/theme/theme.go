package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette — energetic, arcade-leaning
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Danger  = lipgloss.Color("#EF4444") // Red
	Text    = lipgloss.Color("#E2E8F0") // Light slate
	TextDim = lipgloss.Color("#64748B") // Slate
	Border  = lipgloss.Color("#334155") // Dark slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Bad = lipgloss.NewStyle().
		Foreground(Danger)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Bar renders a fixed-width progress bar for percent in [0,1].
func Bar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(Accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("░", width-filled))
}
