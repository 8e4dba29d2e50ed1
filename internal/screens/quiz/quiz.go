package quiz

import (
	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screen"
	"github.com/abhisek/winequiz/internal/screens/summary"
	"github.com/abhisek/winequiz/internal/ui/layout"
)

// QuizScreen is the tasting sheet for the session's active wine.
type QuizScreen struct {
	sess   *qz.Session
	cat    int // focused category index into the board
	opt    int // focused option index within the category
	notice string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Refresher = (*QuizScreen)(nil)

// New creates a QuizScreen over sess.
func New(sess *qz.Session) *QuizScreen {
	return &QuizScreen{sess: sess}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "テイスティング"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "項目"},
		{Key: "←→", Description: "選択肢"},
		{Key: "Space", Description: "選択"},
		{Key: "r/a", Description: "答え合わせ"},
		{Key: "n", Description: "次"},
		{Key: "x", Description: "リセット"},
		{Key: "h", Description: "ヒント"},
		{Key: "s", Description: "結果"},
	}
}

// Refresh re-syncs the cursor after the wine changed behind the screen.
func (s *QuizScreen) Refresh() tea.Cmd {
	s.clamp()
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.notice = ""

	board := s.sess.Board()
	if len(board) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cat > 0 {
			s.cat--
			s.opt = 0
		}
	case "down", "j":
		if s.cat < len(board)-1 {
			s.cat++
			s.opt = 0
		}
	case "left":
		if s.opt > 0 {
			s.opt--
		}
	case "right":
		if s.opt < len(board[s.cat].Options)-1 {
			s.opt++
		}
	case "space", " ", "enter":
		v := board[s.cat]
		if s.opt < len(v.Options) {
			s.sess.Toggle(v.Category, v.Options[s.opt])
		}
	case "r":
		s.sess.RevealCategory(board[s.cat].Category)
	case "a":
		s.sess.RevealAll()
	case "n":
		s.sess.Next()
		s.cat, s.opt = 0, 0
	case "x":
		s.sess.Reset()
		s.notice = "選択をリセットしました"
	case "h":
		s.sess.ToggleCountHint()
		if s.sess.ShowCountHint() {
			s.notice = "正解数ヒント: ON"
		} else {
			s.notice = "正解数ヒント: OFF"
		}
	case "s":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(s.sess)}
		}
	}

	s.clamp()
	return s, nil
}

// Focus returns the focused category and option indexes.
func (s *QuizScreen) Focus() (cat, opt int) {
	return s.cat, s.opt
}

func (s *QuizScreen) clamp() {
	board := s.sess.Board()
	if s.cat >= len(board) {
		s.cat = max(len(board)-1, 0)
		s.opt = 0
	}
	if len(board) == 0 {
		s.opt = 0
		return
	}
	if n := len(board[s.cat].Options); s.opt >= n {
		s.opt = max(n-1, 0)
	}
}
