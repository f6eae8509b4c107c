package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	TopbarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8A8A8")).
			Bold(true)

	HiddenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LoseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	PushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	BlackjackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RelicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	SelectedChoiceStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	ChoiceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	ToastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))
)

func init() {
	// Dim terminals make the default black card colour unreadable; pick the
	// lighter variant up front.
	if !termenv.HasDarkBackground() {
		BlackCardStyle = BlackCardStyle.Foreground(lipgloss.Color("#000000"))
		TopbarStyle = TopbarStyle.Foreground(lipgloss.Color("#1A1A1A"))
	}
}
