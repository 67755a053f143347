package welcome

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/engine"
	"github.com/abhisek/bloompath/internal/frames"
	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(t *testing.T) (*WelcomeScreen, *int) {
	t.Helper()
	e := engine.New(conceptgraph.Default(), bank.Default(), nil)
	manager := sess.NewManager(e, frames.Default(), nil)

	callCount := 0
	factory := func(*sess.Learner) screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(manager, factory), &callCount
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFocusCycling(t *testing.T) {
	w, _ := newTestWelcome(t)

	if w.focus != fieldName {
		t.Fatalf("initial focus = %d, want name", w.focus)
	}
	w.Update(specialKey(tea.KeyTab))
	if w.focus != fieldAge {
		t.Errorf("focus after tab = %d, want age", w.focus)
	}
	w.Update(specialKey(tea.KeyTab))
	if w.focus != fieldGender {
		t.Errorf("focus after two tabs = %d, want gender", w.focus)
	}
	w.Update(specialKey(tea.KeyTab))
	if w.focus != fieldName {
		t.Errorf("focus should wrap back to name, got %d", w.focus)
	}
	w.Update(specialKey(tea.KeyUp))
	if w.focus != fieldGender {
		t.Errorf("up should wrap backwards, got %d", w.focus)
	}
}

func TestGenderSelectionBounds(t *testing.T) {
	w, _ := newTestWelcome(t)
	w.focus = fieldGender

	w.Update(specialKey(tea.KeyLeft))
	if w.gender != 0 {
		t.Errorf("left at first choice should stay, got %d", w.gender)
	}
	for i := 0; i < 10; i++ {
		w.Update(specialKey(tea.KeyRight))
	}
	if w.gender != len(genderChoices)-1 {
		t.Errorf("right should stop at last choice, got %d", w.gender)
	}
}

func TestSubmitEmptyNameShowsError(t *testing.T) {
	w, callCount := newTestWelcome(t)

	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("submit with empty name should not produce a command")
	}
	if w.errMsg == "" {
		t.Error("expected a validation error message")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}

	view := w.View(80, 24)
	if !strings.Contains(view, "name is required") {
		t.Error("validation error should be rendered")
	}
}

func TestSubmitLogsInAndReplacesScreen(t *testing.T) {
	w, callCount := newTestWelcome(t)
	w.nameInput.Model.SetValue("Asha")

	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	if !w.busy {
		t.Error("screen should be busy while logging in")
	}

	msg := cmd()
	done, ok := msg.(loginDoneMsg)
	if !ok {
		t.Fatalf("expected loginDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("login failed: %v", done.Err)
	}
	if done.Learner == nil || done.Learner.Profile.Name != "Asha" {
		t.Fatalf("unexpected learner: %+v", done.Learner)
	}

	_, cmd = w.Update(done)
	if cmd == nil {
		t.Fatal("expected a replace command after login")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replace.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestLoginErrorIsShown(t *testing.T) {
	w, callCount := newTestWelcome(t)
	w.busy = true

	w.Update(loginDoneMsg{Err: errors.New("database is locked")})
	if w.busy {
		t.Error("busy should clear after a failed login")
	}
	if w.errMsg == "" {
		t.Error("expected the login error to be shown")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}
