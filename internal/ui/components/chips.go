package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/winequiz/internal/grading"
	"github.com/abhisek/winequiz/internal/ui/theme"
)

// Chip is one selectable option label.
type Chip struct {
	Label   string
	Picked  bool
	Graded  bool
	Verdict grading.Verdict
}

// VerdictStyle returns the style for a graded option.
func VerdictStyle(v grading.Verdict) lipgloss.Style {
	switch v {
	case grading.CorrectPicked:
		return theme.Correct
	case grading.CorrectMissed:
		return theme.Missed
	case grading.AcceptablePicked:
		return theme.Accepted
	case grading.AcceptableMissed:
		return theme.AcceptMissed
	case grading.Incorrect:
		return theme.Incorrect
	default:
		return theme.Neutral
	}
}

// ChipText returns the plain text of a chip without styling.
func ChipText(c Chip) string {
	mark := "□"
	if c.Picked {
		mark = "■"
	}
	if c.Graded {
		mark = c.Verdict.Symbol()
	}
	return mark + " " + c.Label
}

// RenderChips lays chips out left to right, wrapping at width. cursor is
// the index of the focused chip, or -1 for none.
func RenderChips(chips []Chip, cursor, width int) string {
	var lines []string
	var line string
	lineWidth := 0

	for i, c := range chips {
		text := ChipText(c)
		if i == cursor {
			text = "[" + text + "]"
		} else {
			text = " " + text + " "
		}

		var style lipgloss.Style
		switch {
		case c.Graded:
			style = VerdictStyle(c.Verdict)
		case c.Picked:
			style = theme.Picked
		default:
			style = theme.Unselected
		}
		if i == cursor {
			style = style.Reverse(true)
		}

		w := lipgloss.Width(text) + 1
		if lineWidth > 0 && width > 0 && lineWidth+w > width {
			lines = append(lines, line)
			line, lineWidth = "", 0
		}
		line += style.Render(text) + " "
		lineWidth += w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
