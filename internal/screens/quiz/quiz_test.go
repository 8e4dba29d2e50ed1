package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/winequiz/internal/dataset"
	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/screens/summary"
	"github.com/abhisek/winequiz/internal/tasting"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, wineID string) (*QuizScreen, *qz.Session) {
	t.Helper()
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	engine, err := qz.NewEngine(ds, tasting.DefaultFixedTable())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	cfg := qz.DefaultConfig()
	cfg.Seed = 3
	sess, err := qz.NewSession(engine, cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !sess.SelectWine(wineID) {
		t.Fatalf("unknown bundled wine %q", wineID)
	}
	return New(sess), sess
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testScreen(t, "chardonnay-bourgogne")
	if s.Title() != "テイスティング" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuizScreen_Navigation(t *testing.T) {
	s, sess := testScreen(t, "chardonnay-bourgogne")
	board := sess.Board()

	s.Update(specialKey(tea.KeyUp))
	if cat, _ := s.Focus(); cat != 0 {
		t.Errorf("up at top moved to %d", cat)
	}

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if _, opt := s.Focus(); opt != 2 {
		t.Errorf("opt = %d, want 2", opt)
	}

	s.Update(specialKey(tea.KeyDown))
	cat, opt := s.Focus()
	if cat != 1 || opt != 0 {
		t.Errorf("after down focus = (%d, %d), want (1, 0)", cat, opt)
	}

	for range len(board) + 3 {
		s.Update(specialKey(tea.KeyDown))
	}
	if cat, _ := s.Focus(); cat != len(board)-1 {
		t.Errorf("down past end: cat = %d, want %d", cat, len(board)-1)
	}

	for range 50 {
		s.Update(specialKey(tea.KeyRight))
	}
	last := board[len(board)-1]
	if _, opt := s.Focus(); opt != len(last.Options)-1 {
		t.Errorf("right past end: opt = %d, want %d", opt, len(last.Options)-1)
	}
}

func TestQuizScreen_SpaceToggles(t *testing.T) {
	s, sess := testScreen(t, "chardonnay-bourgogne")
	first := sess.Board()[0]

	s.Update(specialKey(tea.KeySpace))
	picked := sess.Picked(first.Category)
	if len(picked) != 1 || picked[0] != first.Options[0] {
		t.Fatalf("picked = %v, want [%s]", picked, first.Options[0])
	}

	s.Update(specialKey(tea.KeySpace))
	if len(sess.Picked(first.Category)) != 0 {
		t.Error("second space should unpick")
	}
}

func TestQuizScreen_RevealKeys(t *testing.T) {
	s, sess := testScreen(t, "pinot-bourgogne")
	first := sess.Board()[0]

	s.Update(keyPress('r'))
	if !sess.Revealed(first.Category) {
		t.Error("r should reveal focused category")
	}
	if sess.AllRevealed() {
		t.Error("r should not reveal everything")
	}

	s.Update(keyPress('a'))
	if !sess.AllRevealed() {
		t.Error("a should reveal all")
	}
}

func TestQuizScreen_ResetAndHint(t *testing.T) {
	s, sess := testScreen(t, "pinot-bourgogne")
	s.Update(specialKey(tea.KeySpace))
	s.Update(keyPress('a'))

	s.Update(keyPress('x'))
	if sess.AllRevealed() {
		t.Error("x should clear reveals")
	}
	if len(sess.Picked(sess.Board()[0].Category)) != 0 {
		t.Error("x should clear picks")
	}

	s.Update(keyPress('h'))
	if sess.ShowCountHint() {
		t.Error("h should turn hints off")
	}
	if !strings.Contains(s.View(100, 40), "OFF") {
		t.Error("expected hint notice in view")
	}
}

func TestQuizScreen_NextResetsFocus(t *testing.T) {
	s, sess := testScreen(t, "pinot-bourgogne")
	sess.SetMode(qz.ModeManual)
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeySpace))

	s.Update(keyPress('n'))
	if cat, opt := s.Focus(); cat != 0 || opt != 0 {
		t.Errorf("focus after next = (%d, %d)", cat, opt)
	}
	if sess.Wine().ID != "pinot-bourgogne" {
		t.Errorf("manual next dealt %q", sess.Wine().ID)
	}
}

func TestQuizScreen_SummaryKey(t *testing.T) {
	s, _ := testScreen(t, "pinot-bourgogne")
	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed %T, want *summary.SummaryScreen", push.Screen)
	}
}

func TestQuizScreen_ViewShowsWineAndExplanations(t *testing.T) {
	s, sess := testScreen(t, "chardonnay-bourgogne")
	w := sess.Wine()

	view := s.View(120, 60)
	if !strings.Contains(view, w.Label()) {
		t.Error("expected wine label in view")
	}
	if !strings.Contains(view, "(正解") {
		t.Error("expected count hint before reveal")
	}

	var note string
	for _, v := range sess.Board() {
		if v.Detail.Note != "" {
			note = v.Detail.Note
			break
		}
	}
	if note == "" {
		t.Skip("bundled wine has no notes")
	}
	if strings.Contains(view, "解説: ") {
		t.Error("explanations must stay hidden before reveal")
	}
	sess.RevealAll()
	for range len(sess.Board()) {
		s.Update(specialKey(tea.KeyDown))
	}
	if !strings.Contains(s.View(120, 400), "解説: ") {
		t.Error("expected explanations after reveal")
	}
}

func TestQuizScreen_RefreshClamps(t *testing.T) {
	s, sess := testScreen(t, "chardonnay-bourgogne")
	for range 100 {
		s.Update(specialKey(tea.KeyDown))
	}
	sess.SelectWine("pinot-bourgogne")
	s.Refresh()
	cat, _ := s.Focus()
	if cat >= len(sess.Board()) {
		t.Errorf("cat %d out of range after refresh", cat)
	}
}
