package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screen"
	"github.com/abhisek/winequiz/internal/screens/picker"
	quizscreen "github.com/abhisek/winequiz/internal/screens/quiz"
	"github.com/abhisek/winequiz/internal/ui/components"
	"github.com/abhisek/winequiz/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	sess       *qz.Session
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *qz.Session) *HomeScreen {
	menuLabels := []string{"ランダム出題", "ワインを選択", "終了"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			sess.SetMode(qz.ModeRandom)
			sess.RandomWine()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(sess)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(sess)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess:       sess,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "移動"},
		{Key: "Enter", Description: "決定"},
		{Key: "Ctrl+C", Description: "終了"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || layout.IsCompactWidth(width)
	cw := contentWidth(width)
	ds := h.sess.Engine().Dataset()

	hint := "ON"
	if !h.sess.ShowCountHint() {
		hint = "OFF"
	}

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(len(ds.Whites()), len(ds.Reds()), h.sess.Mode().DisplayName(), hint, cw),
		renderButtons(h.menuLabels, h.menu.Selected, cw),
	}

	return renderCellarFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}
