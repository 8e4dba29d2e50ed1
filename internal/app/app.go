package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screen"
	"github.com/abhisek/winequiz/internal/screens/home"
	"github.com/abhisek/winequiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session *qz.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *qz.Session
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(opts.Session)),
		sess:   opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) status() string {
	if m.sess == nil {
		return ""
	}
	hint := "ヒント ON"
	if !m.sess.ShowCountHint() {
		hint = "ヒント OFF"
	}
	return m.sess.Mode().DisplayName() + "｜" + hint + "  "
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "戻る"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "終了"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: no quiz session")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running program:", err)
		return err
	}
	return nil
}
