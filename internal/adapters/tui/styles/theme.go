package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Review list
	SourcePage = lipgloss.NewStyle().
			Bold(true)

	TargetPage = lipgloss.NewStyle().
			Foreground(Secondary)

	Anchor = lipgloss.NewStyle().
		Italic(true)

	Row = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Checked   = lipgloss.NewStyle().Foreground(Secondary).SetString("[x] ")
	Unchecked = lipgloss.NewStyle().Foreground(Muted).SetString("[ ] ")

	// Preview box for the rendered link element
	Preview = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SimilarityColor grades a similarity score from weak (amber) to strong (green)
func SimilarityColor(score float64) lipgloss.Color {
	switch {
	case score >= 0.5:
		return Secondary
	case score >= 0.3:
		return Primary
	default:
		return Warning
	}
}
