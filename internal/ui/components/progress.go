package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/winequiz/internal/ui/theme"
)

// ScoreBar displays a correct/total ratio as a horizontal bar.
type ScoreBar struct {
	Label string
	Value int
	Total int
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, value, total, width int) ScoreBar {
	return ScoreBar{Label: label, Value: value, Total: total, Width: width}
}

// Ratio returns Value/Total clamped to [0, 1].
func (p ScoreBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Value)/float64(p.Total), 0), 1)
}

// View renders the bar followed by "value/total".
func (p ScoreBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Value, p.Total)
	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(count), 4)

	filled := int(float64(barWidth) * p.Ratio())
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
