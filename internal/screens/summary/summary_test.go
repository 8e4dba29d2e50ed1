package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/winequiz/internal/dataset"
	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/router"
	"github.com/abhisek/winequiz/internal/tasting"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSession(t *testing.T) *qz.Session {
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
	cfg.Seed = 1
	sess, err := qz.NewSession(engine, cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !sess.SelectWine("pinot-bourgogne") {
		t.Fatal("expected bundled wine pinot-bourgogne")
	}
	return sess
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSession(t))
	if s.Title() != "結果" {
		t.Errorf("Title = %q, want %q", s.Title(), "結果")
	}
}

func TestSummaryScreen_EmptyBeforeReveal(t *testing.T) {
	s := New(testSession(t))
	view := s.View(100, 30)
	if !strings.Contains(view, "まだ答え合わせした項目がありません") {
		t.Error("expected empty-state message before any reveal")
	}
}

func TestSummaryScreen_RevealAllKey(t *testing.T) {
	sess := testSession(t)
	s := New(sess)
	s.Update(keyPress('a'))
	if !sess.AllRevealed() {
		t.Fatal("expected a to reveal every category")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, string(tasting.ColorTone)) {
		t.Error("expected per-category results after reveal")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSession(t))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_NextWineStaysManual(t *testing.T) {
	sess := testSession(t)
	sess.SetMode(qz.ModeManual)
	sess.RevealAll()

	s := New(sess)
	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected pop after next")
	}
	if sess.Wine().ID != "pinot-bourgogne" {
		t.Errorf("manual next changed wine to %q", sess.Wine().ID)
	}
	if sess.AllRevealed() {
		t.Error("expected reveals cleared for the re-dealt wine")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSession(t))
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
