package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screen"
	"github.com/abhisek/winequiz/internal/ui/components"
	"github.com/abhisek/winequiz/internal/ui/layout"
	"github.com/abhisek/winequiz/internal/ui/theme"
)

// SummaryScreen shows the graded results and notes for the active wine.
type SummaryScreen struct {
	sess *qz.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sess *qz.Session) *SummaryScreen {
	return &SummaryScreen{sess: sess}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "結果"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "戻る"},
		{Key: "a", Description: "全て答え合わせ"},
		{Key: "n", Description: "次のワイン"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "a":
			s.sess.RevealAll()
		case "n":
			s.sess.Next()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	w := s.sess.Wine()
	sum := s.sess.Summary()
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.WineColor(w.IsRed).Render(w.Label())))
	b.WriteString("\n\n")

	if sum.Categories == 0 {
		b.WriteString(center(theme.Hint.Render("まだ答え合わせした項目がありません (a で全て答え合わせ)")))
		b.WriteString("\n\n")
	} else {
		stats := fmt.Sprintf("答え合わせ: %d 項目        全問正解: %d 項目        正答率: %.0f%%",
			sum.Categories, sum.Perfect, sum.Ratio()*100)
		b.WriteString(center(theme.Body.Render(stats)))
		b.WriteString("\n")
		b.WriteString(center(components.NewScoreBar("正解", sum.CorrectPicked, sum.CorrectTotal, min(width-8, 60)).View()))
		b.WriteString("\n\n")

		b.WriteString(heading("項目別", width))
		for _, st := range s.sess.View() {
			if st.Result == nil {
				continue
			}
			t := st.Result.Tally
			line := fmt.Sprintf("  %s  %d/%d", st.Category, t.CorrectPicked, t.CorrectTotal)
			style := theme.Body
			if t.Perfect() {
				style = theme.Correct
			} else if t.CorrectTotal > 0 && t.CorrectPicked == 0 {
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
			b.WriteString(center(style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if w.Summary != "" || w.Notes != "" {
		b.WriteString(heading("ワインについて", width))
		for _, text := range []string{w.Summary, w.Notes} {
			if text == "" {
				continue
			}
			b.WriteString(center(lipgloss.NewStyle().Width(min(width-8, 72)).Foreground(theme.Text).Render(text)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(w.Confusions) > 0 {
		b.WriteString(heading("間違えやすいワイン", width))
		for _, c := range w.Confusions {
			b.WriteString(center(theme.SectionHeading.Render("vs " + c.With)))
			b.WriteString("\n")
			for _, cue := range c.Cues {
				b.WriteString(center(theme.Body.Render("・" + cue)))
				b.WriteString("\n")
			}
			for _, p := range c.Pitfalls {
				b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Render("⚠ " + p)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func heading(title string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}
