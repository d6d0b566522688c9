package root

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffd7"))
	keyStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#35ff9b"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

// badgeChip renders a badge in its own accent color, like the web chips.
func badgeChip(name, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("[" + name + "]")
}
