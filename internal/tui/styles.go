package tui

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Base styles, neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	// Row elements
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	emptyStarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#404858"))

	expandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0")).
			Underline(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0")).
			Italic(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e1e2a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	// Avatar tile backgrounds, picked by initials
	avatarColors = []lipgloss.Color{
		lipgloss.Color("#43e88c"),
		lipgloss.Color("#f0944a"),
		lipgloss.Color("#b8ccdf"),
		lipgloss.Color("#c084e0"),
		lipgloss.Color("#3ecce4"),
		lipgloss.Color("#d4a844"),
	}
)

// avatarStyle returns the tile style for a set of initials. The same
// initials always get the same color.
func avatarStyle(initials string) lipgloss.Style {
	h := fnv.New32a()
	_, _ = h.Write([]byte(initials))
	c := avatarColors[int(h.Sum32()%uint32(len(avatarColors)))]
	return lipgloss.NewStyle().
		Background(c).
		Foreground(lipgloss.Color("#111118")).
		Bold(true)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
