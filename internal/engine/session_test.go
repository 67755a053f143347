package engine

import (
	"testing"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/redirect"
)

func redirectEngine(t *testing.T, mapJSON string) *Engine {
	t.Helper()
	m, err := redirect.Parse([]byte(mapJSON))
	if err != nil {
		t.Fatalf("redirect map: %v", err)
	}
	return New(conceptgraph.Default(), bank.Default(), m)
}

func TestSubmit_RequiresPending(t *testing.T) {
	s := NewSession(newDefaultEngine(t))
	if _, err := s.Submit("Rock"); err != ErrNoPendingQuestion {
		t.Fatalf("got %v, want ErrNoPendingQuestion", err)
	}

	s.NextQuestion()
	if _, err := s.Submit("Rock"); err != nil {
		t.Fatalf("submit with pending question: %v", err)
	}
	// Pending is consumed by Submit.
	if _, err := s.Submit("Rock"); err != ErrNoPendingQuestion {
		t.Fatalf("second submit: got %v, want ErrNoPendingQuestion", err)
	}
}

func TestRedirectOverride_Honored(t *testing.T) {
	e := redirectEngine(t, `{
		"Which of the following is *not* a living thing?": {
			"if_incorrect": "Serve (Q2.0)"
		}
	}`)
	s := NewSession(e)

	q := s.NextQuestion()
	if q.ID != "Q1.0" {
		t.Fatalf("got %q, want Q1.0", q.ID)
	}
	out, err := s.Submit("Dog")
	if err != nil {
		t.Fatal(err)
	}
	if out.RedirectQuestionID != "Q2.0" {
		t.Fatalf("redirect: got %q, want Q2.0", out.RedirectQuestionID)
	}

	next := s.NextQuestion()
	if next == nil || next.ID != "Q2.0" {
		t.Fatalf("override not honored: got %v", next)
	}
}

func TestRedirectOverride_ConsumedOnce(t *testing.T) {
	e := redirectEngine(t, `{
		"Which of the following is *not* a living thing?": {
			"if_incorrect": "serve Q2.0"
		}
	}`)
	s := NewSession(e)

	s.NextQuestion()
	if _, err := s.Submit("Dog"); err != nil {
		t.Fatal(err)
	}
	s.NextQuestion() // consumes override -> Q2.0
	if _, err := s.Submit("Food"); err != nil {
		t.Fatal(err)
	}

	// Default flow resumes: back to the first eligible concept's question.
	q := s.NextQuestion()
	if q == nil || q.ID == "Q2.0" {
		t.Fatalf("override must be consumed once, got %v", q)
	}
}

func TestRedirectOverride_SkippedWhenTargetSeen(t *testing.T) {
	e := redirectEngine(t, `{
		"A leafless tree stands still during winter. Which observation best supports that it is still alive?": {
			"if_correct": "serve Q1.0"
		}
	}`)
	s := NewSession(e)

	q := s.NextQuestion() // Q1.0
	if _, err := s.Submit(q.CorrectAnswer); err != nil {
		t.Fatal(err)
	}
	q = s.NextQuestion() // Q1.3 (fallthrough to Applying)
	if q.ID != "Q1.3" {
		t.Fatalf("got %q, want Q1.3", q.ID)
	}
	out, err := s.Submit(q.CorrectAnswer)
	if err != nil {
		t.Fatal(err)
	}
	if out.RedirectQuestionID != "Q1.0" {
		t.Fatalf("redirect: got %q", out.RedirectQuestionID)
	}

	// Q1.0 was already seen, so the override degrades to default flow.
	next := s.NextQuestion()
	if next != nil && next.ID == "Q1.0" {
		t.Fatal("seen question must not be re-served via override")
	}
}

func TestRedirectOverride_SkippedWhenTargetUnknown(t *testing.T) {
	e := redirectEngine(t, `{
		"Which of the following is *not* a living thing?": {
			"if_incorrect": "serve Q99.9"
		}
	}`)
	s := NewSession(e)

	s.NextQuestion()
	out, err := s.Submit("Dog")
	if err != nil {
		t.Fatal(err)
	}
	if out.RedirectQuestionID != "Q99.9" {
		t.Fatalf("outcome carries the raw advisory id, got %q", out.RedirectQuestionID)
	}

	// Unknown target: default selection proceeds.
	q := s.NextQuestion()
	if q == nil || q.ID != "Q1.0" {
		t.Fatalf("got %v, want default re-selection of Q1.0's concept", q)
	}
}

func TestSessions_IsolatedPerLearner(t *testing.T) {
	reg := NewSessions(newDefaultEngine(t))

	alice := reg.Get("alice")
	bob := reg.Get("bob")
	if alice == bob {
		t.Fatal("learners must not share sessions")
	}
	if reg.Get("alice") != alice {
		t.Fatal("repeat lookup must return the same session")
	}

	q := alice.NextQuestion()
	if _, err := alice.Submit(q.CorrectAnswer); err != nil {
		t.Fatal(err)
	}
	if bob.History.Len() != 0 {
		t.Error("one learner's answers leaked into another's history")
	}

	reg.Drop("alice")
	if reg.Get("alice") == alice {
		t.Error("dropped session should be recreated fresh")
	}
}
