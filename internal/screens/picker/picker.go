package picker

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screen"
	quizscreen "github.com/abhisek/winequiz/internal/screens/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
	"github.com/abhisek/winequiz/internal/ui/components"
	"github.com/abhisek/winequiz/internal/ui/layout"
	"github.com/abhisek/winequiz/internal/ui/theme"
)

// PickerScreen lists the dataset's wines, whites first, and starts a
// manual-mode quiz for the chosen one.
type PickerScreen struct {
	sess     *qz.Session
	wines    []tasting.WineProfile
	filter   components.FilterInput
	matches  []int // indexes into wines
	selected int   // index into matches
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen over the session's dataset.
func New(sess *qz.Session) *PickerScreen {
	ds := sess.Engine().Dataset()
	wines := append(ds.Whites(), ds.Reds()...)
	p := &PickerScreen{
		sess:   sess,
		wines:  wines,
		filter: components.NewFilterInput("品種・産地で絞り込み", 40),
	}
	p.refilter()
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return p.filter.Init()
}

func (p *PickerScreen) Title() string {
	return "ワインを選択"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "移動"},
		{Key: "Enter", Description: "出題"},
		{Key: "文字入力", Description: "絞り込み"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil
		case "down":
			if p.selected < len(p.matches)-1 {
				p.selected++
			}
			return p, nil
		case "enter":
			return p, p.choose()
		}
	}

	var cmd tea.Cmd
	before := p.filter.Value()
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.refilter()
	}
	return p, cmd
}

// Selected returns the highlighted wine.
func (p *PickerScreen) Selected() (tasting.WineProfile, bool) {
	if p.selected < 0 || p.selected >= len(p.matches) {
		return tasting.WineProfile{}, false
	}
	return p.wines[p.matches[p.selected]], true
}

func (p *PickerScreen) choose() tea.Cmd {
	w, ok := p.Selected()
	if !ok || !p.sess.SelectWine(w.ID) {
		return nil
	}
	p.sess.SetMode(qz.ModeManual)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizscreen.New(p.sess)}
	}
}

func (p *PickerScreen) refilter() {
	p.matches = p.matches[:0]
	for i, w := range p.wines {
		if p.filter.Matches(w.ID, w.Grape, w.Region, w.VintageHint, w.Summary) {
			p.matches = append(p.matches, i)
		}
	}
	p.selected = min(p.selected, max(len(p.matches)-1, 0))
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("  " + p.filter.View())
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		b.WriteString(theme.Hint.Render("  該当するワインがありません"))
		return b.String()
	}

	var lastColor tasting.Color = -1
	for i, idx := range p.matches {
		w := p.wines[idx]
		if c := w.Color(); c != lastColor {
			if lastColor != -1 {
				b.WriteString("\n")
			}
			b.WriteString(theme.WineColor(w.IsRed).Render("  " + c.DisplayName()))
			b.WriteString("\n")
			lastColor = c
		}

		label := w.Label()
		if i == p.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		if w.Summary != "" && !layout.IsCompactWidth(width) {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(w.Summary))
		}
		b.WriteString("\n")
	}
	return b.String()
}
