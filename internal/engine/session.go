package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/history"
	"github.com/abhisek/bloompath/internal/mastery"
)

// Session owns one learner's mutable state: mastery store, history,
// the pending question, and the redirect override. Each session is used by
// a single logical thread of control; concurrent learners hold independent
// sessions (see Sessions).
type Session struct {
	ID      string
	Store   *mastery.Store
	History *history.Log

	engine     *Engine
	pending    *bank.Question
	overrideID string
}

// NewSession creates a fresh session against the engine's configuration.
func NewSession(e *Engine) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Store:   mastery.NewStore(e.graph),
		History: history.NewLog(),
		engine:  e,
	}
}

// NextConcept returns the current eligible concept for this session.
func (s *Session) NextConcept() (string, bool) {
	return s.engine.NextConcept(s.Store)
}

// NextQuestion selects the question to present and records it as pending.
//
// A redirect override recorded by the previous Submit is honored first,
// but only if the target question exists, has not been seen, and its
// concept is not mastered; otherwise default selection proceeds. The
// override is consumed either way.
func (s *Session) NextQuestion() *bank.Question {
	if id := s.overrideID; id != "" {
		s.overrideID = ""
		if q, ok := s.engine.bank.ByID(id); ok &&
			!s.History.Seen(q.Text) && !s.Store.IsMastered(q.ConceptTag) {
			s.pending = &q
			return s.pending
		}
	}

	s.pending = s.engine.ChooseQuestion(s.Store, s.History)
	return s.pending
}

// Pending returns the question awaiting an answer, or nil.
func (s *Session) Pending() *bank.Question {
	return s.pending
}

// Submit applies the learner's answer to the pending question. The pending
// question is consumed; any redirect override in the outcome is recorded
// for the next NextQuestion call. Returns ErrNoPendingQuestion if no
// question is pending.
func (s *Session) Submit(chosen string) (Outcome, error) {
	out, err := s.engine.ApplyAnswer(s.pending, chosen, s.Store, s.History)
	if err != nil {
		return Outcome{}, err
	}
	s.pending = nil
	s.overrideID = out.RedirectQuestionID
	return out, nil
}

// Complete reports whether every concept in the graph is mastered.
func (s *Session) Complete() bool {
	_, ok := s.engine.NextConcept(s.Store)
	return !ok
}

// Reset restores the session to its initial state for re-practice.
func (s *Session) Reset() {
	s.engine.Reset(s.Store, s.History)
	s.pending = nil
	s.overrideID = ""
}

// Sessions keys live sessions by learner identity. There is no global
// mutable mastery state: each learner gets an isolated Session.
type Sessions struct {
	engine *Engine

	mu        sync.Mutex
	byLearner map[string]*Session
}

// NewSessions creates a session registry for the given engine.
func NewSessions(e *Engine) *Sessions {
	return &Sessions{
		engine:    e,
		byLearner: make(map[string]*Session),
	}
}

// Get returns the learner's session, creating one on first reference.
func (r *Sessions) Get(learnerID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byLearner[learnerID]; ok {
		return s
	}
	s := NewSession(r.engine)
	r.byLearner[learnerID] = s
	return s
}

// Drop removes a learner's session.
func (r *Sessions) Drop(learnerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byLearner, learnerID)
}
