package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/winequiz/internal/ui/theme"
)

const bannerFull = `  __        ___
  \ \      / (_)_ __   ___   __ _ _   _(_)____
   \ \ /\ / /| | '_ \ / _ \ / _' | | | | |_  /
    \ V  V / | | | | |  __/| (_| | |_| | |/ /
     \_/\_/  |_|_| |_|\___| \__, |\__,_|_/___|
                               |_|`

const bannerCompact = "W · I · N · E · Q · U · I · Z"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// renderTitle returns the banner, or a one-line fallback when compact.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	art := bannerFull
	if compact {
		art = bannerCompact
	}
	sub := theme.Subtitle.Width(cw).Render("ソムリエ試験 テイスティング練習")
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art)) + "\n" + sub
}

// renderStatsBar shows the dataset size and the current session settings.
func renderStatsBar(whites, reds int, mode, hint string, cw int) string {
	stats := fmt.Sprintf("%s  %s  %s  %s",
		theme.WineColor(false).Render(fmt.Sprintf("白 %d", whites)),
		theme.WineColor(true).Render(fmt.Sprintf("赤 %d", reds)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("モード: "+mode),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("ヒント: "+hint),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

const buttonWidth = 22

// renderButtons renders each menu item as a fixed-width button.
func renderButtons(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderCellarFrame centers content inside a rounded frame.
func renderCellarFrame(content string, width, height int) string {
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}
