package table

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// SetTheme overrides the default title and border colors. Empty values
// keep the defaults.
func SetTheme(title, border string) {
	if title != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(title))
	}
	if border != "" {
		borderStyle = borderStyle.Foreground(lipgloss.Color(border))
	}
}
