package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
	"github.com/abhisek/winequiz/internal/ui/components"
	"github.com/abhisek/winequiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	w := s.sess.Wine()

	var head strings.Builder
	head.WriteString(theme.WineColor(w.IsRed).Render("  " + w.Color().DisplayName()))
	head.WriteString("  ")
	head.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Label()))
	if s.sess.AllRevealed() {
		sum := s.sess.Summary()
		head.WriteString("  ")
		head.WriteString(theme.Hint.Render(fmt.Sprintf("正解 %d/%d", sum.CorrectPicked, sum.CorrectTotal)))
	}
	head.WriteString("\n")
	head.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	head.WriteString("\n")

	footer := ""
	if s.notice != "" {
		footer = "\n" + theme.Hint.Render("  "+s.notice)
	}

	avail := height - lipgloss.Height(head.String()) - lipgloss.Height(footer)
	body := s.renderBoard(width, avail)
	return head.String() + body + footer
}

// renderBoard renders as many category blocks as fit in height, keeping
// the focused one visible.
func (s *QuizScreen) renderBoard(width, height int) string {
	states := s.sess.View()
	if len(states) == 0 {
		return theme.Hint.Render("  このワインには出題項目がありません")
	}

	blocks := make([]string, len(states))
	var prev tasting.Section
	for i, st := range states {
		var b strings.Builder
		if i == 0 || st.Section != prev {
			b.WriteString(theme.SectionHeading.Render("  【" + string(st.Section) + "】"))
			b.WriteString("\n")
		}
		prev = st.Section
		b.WriteString(s.renderCategory(st, i == s.cat, width))
		blocks[i] = b.String()
	}

	start := 0
	for {
		used := 0
		for i := start; i <= s.cat && i < len(blocks); i++ {
			used += lipgloss.Height(blocks[i])
		}
		if used <= height || start >= s.cat {
			break
		}
		start++
	}

	var out []string
	used := 0
	for i := start; i < len(blocks); i++ {
		h := lipgloss.Height(blocks[i])
		if used+h > height && i > s.cat {
			break
		}
		out = append(out, blocks[i])
		used += h
	}
	return strings.Join(out, "\n")
}

func (s *QuizScreen) renderCategory(st qz.CategoryState, focused bool, width int) string {
	var b strings.Builder

	title := string(st.Category)
	style := theme.Unselected
	marker := "    "
	if focused {
		style = theme.Selected
		marker = "  ▸ "
	}
	b.WriteString(style.Render(marker + title))
	if st.ShowHint {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (正解 %d)", st.Hint)))
	}
	if st.Result != nil {
		t := st.Result.Tally
		mark := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  %d/%d", t.CorrectPicked, t.CorrectTotal))
		if t.Perfect() {
			mark = theme.Correct.Render(fmt.Sprintf("  %d/%d ✓", t.CorrectPicked, t.CorrectTotal))
		}
		b.WriteString(mark)
	}
	b.WriteString("\n")

	chips := make([]components.Chip, len(st.Options))
	for i, o := range st.Options {
		chips[i] = components.Chip{Label: o, Picked: st.IsPicked(o)}
		if st.Result != nil {
			chips[i].Graded = true
			chips[i].Verdict = st.Result.Verdict(o)
		}
	}
	cursor := -1
	if focused {
		cursor = s.opt
	}
	chipView := components.RenderChips(chips, cursor, max(width-8, 20))
	b.WriteString(indent(chipView, "      "))

	if st.Revealed {
		if note := st.Detail.Note; note != "" {
			b.WriteString("\n")
			b.WriteString(indent(theme.Body.Render("解説: "+note), "      "))
		}
		if tip := st.Detail.ExamTip; tip != "" {
			b.WriteString("\n")
			b.WriteString(indent(lipgloss.NewStyle().Foreground(theme.Accent).Render("試験のポイント: "+tip), "      "))
		}
	}
	return b.String()
}

func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
