package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: cellar tones on a dark background.
var (
	Primary    = lipgloss.Color("#BE123C") // Bordeaux
	Secondary  = lipgloss.Color("#EAB308") // Straw gold
	Accent     = lipgloss.Color("#F59E0B") // Amber
	Success    = lipgloss.Color("#22C55E") // Green
	Acceptable = lipgloss.Color("#38BDF8") // Sky
	Error      = lipgloss.Color("#F43F5E") // Rose
	Text       = lipgloss.Color("#F8FAFC") // White
	TextDim    = lipgloss.Color("#94A3B8") // Slate
	BgDark     = lipgloss.Color("#140A0E") // Cellar
	BgCard     = lipgloss.Color("#26141B") // Cork
	Border     = lipgloss.Color("#4C2A36") // Oak

	WhiteWine = lipgloss.Color("#FDE68A")
	RedWine   = lipgloss.Color("#E11D48")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	SectionHeading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Picked = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Missed = lipgloss.NewStyle().
		Foreground(Success).
		Underline(true)

	Accepted = lipgloss.NewStyle().
			Foreground(Acceptable).
			Bold(true)

	AcceptMissed = lipgloss.NewStyle().
			Foreground(Acceptable)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Strikethrough(true)

	Neutral = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// WineColor returns the accent color for a white or red wine.
func WineColor(isRed bool) lipgloss.Style {
	if isRed {
		return lipgloss.NewStyle().Foreground(RedWine).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(WhiteWine).Bold(true)
}
