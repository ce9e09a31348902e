package browser

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F")).
			Bold(true)

	dirStyle = lipgloss.NewStyle().
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// SetTheme overrides the default title, selected-entry and cursor colors.
// Empty values keep the defaults.
func SetTheme(title, selected, cursor string) {
	if title != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(title))
	}
	if selected != "" {
		selectedStyle = selectedStyle.Foreground(lipgloss.Color(selected))
	}
	if cursor != "" {
		cursorStyle = cursorStyle.Foreground(lipgloss.Color(cursor))
	}
}
