package practice

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/engine"
	"github.com/abhisek/bloompath/internal/frames"
	sess "github.com/abhisek/bloompath/internal/session"
)

func newTestLearner(t *testing.T) *sess.Learner {
	t.Helper()
	e := engine.New(conceptgraph.Default(), bank.Default(), nil)
	m := sess.NewManager(e, frames.Default(), nil)
	l, err := m.Login(context.Background(), sess.Profile{Name: "Asha"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return l
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFirstQuestionUsesSelector(t *testing.T) {
	s := New(newTestLearner(t))

	if s.phase != phaseQuestion || s.question == nil {
		t.Fatalf("phase = %d, question = %v", s.phase, s.question)
	}
	if len(s.choice.Options) != len(s.question.Options) {
		t.Fatalf("selector options = %d, want %d", len(s.choice.Options), len(s.question.Options))
	}
	if s.choice.Question != s.question.Text {
		t.Errorf("selector question = %q", s.choice.Question)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, s.question.Text) {
		t.Error("question text should be rendered")
	}
	if !strings.Contains(view, "A)") {
		t.Error("lettered options should be rendered")
	}
}

func TestAnswerThroughSelector(t *testing.T) {
	s := New(newTestLearner(t))
	q := s.question

	// Move the cursor to the correct option, then submit.
	for i := 0; i < correctIndex(q); i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.choice.Selected != correctIndex(q) {
		t.Fatalf("selected = %d, want %d", s.choice.Selected, correctIndex(q))
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", s.phase)
	}
	if s.chosen != q.CorrectAnswer {
		t.Errorf("chosen = %q, want %q", s.chosen, q.CorrectAnswer)
	}
	if !s.outcome.Correct {
		t.Error("outcome should be correct")
	}

	// Any key moves on to a fresh, unsubmitted selector.
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", s.phase)
	}
	if s.choice.Submitted {
		t.Error("next question should reset the selector")
	}
}

func TestCorrectIndex(t *testing.T) {
	q := &bank.Question{
		Options:       []string{"Rock", "Dog", "Water"},
		CorrectAnswer: "Dog",
	}
	if got := correctIndex(q); got != 1 {
		t.Errorf("correctIndex = %d, want 1", got)
	}
	q.CorrectAnswer = "Cloud"
	if got := correctIndex(q); got != -1 {
		t.Errorf("correctIndex for missing answer = %d, want -1", got)
	}
}
