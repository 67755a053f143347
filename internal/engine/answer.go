package engine

import (
	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/history"
	"github.com/abhisek/bloompath/internal/mastery"
)

// Outcome reports the result of applying a submitted answer.
type Outcome struct {
	// ConceptID is the concept the answered question belongs to.
	ConceptID string

	// Correct is true when the chosen option exactly matched the
	// question's correct answer.
	Correct bool

	// NewLevel is the concept's level after the update, bloom.None when
	// the concept reached mastery.
	NewLevel bloom.Level

	// Mastered is true when this answer triggered the concept's mastery
	// (taxonomy ceiling reached).
	Mastered bool

	// RedirectQuestionID carries an advisory override from the
	// redirection map: the caller may serve this question next.
	// Empty when no directive applies.
	RedirectQuestionID string
}

// ApplyAnswer scores a submitted answer and updates the learner's state.
//
// A chosen option outside the question's declared options is scored as
// incorrect, never an error. Attempts and history are always updated.
// On correct, the level advances to the next global taxonomy level after
// the question's level, or the concept is mastered if the question was at
// the taxonomy ceiling. On incorrect, the level resets to the taxonomy
// base. The redirection map is consulted last; a missing or non-serve
// directive yields no override.
//
// Calling with a nil question is a contract violation: ErrNoPendingQuestion
// is returned and no state changes.
func (e *Engine) ApplyAnswer(q *bank.Question, chosen string, st *mastery.Store, hist *history.Log) (Outcome, error) {
	if q == nil {
		return Outcome{}, ErrNoPendingQuestion
	}

	correct := q.IsCorrect(chosen)

	rec := st.Get(q.ConceptTag)
	rec.Attempts++
	hist.Append(q.Text, chosen, correct)

	out := Outcome{
		ConceptID: q.ConceptTag,
		Correct:   correct,
	}

	if correct {
		if next, ok := bloom.Next(q.BloomLevel); ok {
			// Progression uses the global taxonomy order; selection's
			// fallthrough lands on the next level the concept declares.
			rec.Level = next
		} else {
			rec.MarkMastered()
			out.Mastered = true
		}
		if d := e.redirects.OnCorrect(q.Text); d.IsServe() {
			out.RedirectQuestionID = d.QuestionID
		}
	} else {
		// Mastery is one-way: an already-mastered concept stays mastered.
		if !rec.Mastered {
			rec.Level = bloom.Base()
		}
		if d := e.redirects.OnIncorrect(q.Text); d.IsServe() {
			out.RedirectQuestionID = d.QuestionID
		}
	}

	out.NewLevel = rec.Level
	return out, nil
}
