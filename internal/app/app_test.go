package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/winequiz/internal/dataset"
	qz "github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	engine, err := qz.NewEngine(ds, tasting.DefaultFixedTable())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sess, err := qz.NewSession(engine, qz.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return newAppModel(Options{Session: sess})
}

func TestRun_RequiresSession(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error without a session")
	}
}

func TestAppModel_EnterPushesQuiz(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected menu command")
	}
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "テイスティング" {
		t.Errorf("active = %q", m.router.Active().Title())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command on esc")
	}
}

func TestAppModel_View(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}
