package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 0, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// CountBadgeStyle shows how many jokes a run collects.
	CountBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true).
			Margin(0, 0, 1, 2)

	// ContentStyle styles joke text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the currently selected joke.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	// UnselectedStyle gives unselected jokes a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// VotesPositiveStyle colours a score above zero.
	VotesPositiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A6DA95")).
				Bold(true)

	// VotesNegativeStyle colours a score below zero.
	VotesNegativeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ED8796")).
				Bold(true)

	// VotesNeutralStyle colours a zero score.
	VotesNeutralStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D"))

	// MetadataStyle styles secondary text like vote hints.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ButtonStyle renders the "Get New Jokes" hint.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#FF6600")).
			Bold(true).
			Padding(0, 1).
			MarginLeft(2)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SpinnerStyle colours the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
)
