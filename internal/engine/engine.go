// Package engine implements the adaptive selection engine: eligibility
// resolution over the concept graph, question selection with Bloom-level
// fallthrough and history deduplication, answer application, and the
// redirection override flow.
package engine

import (
	"errors"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/history"
	"github.com/abhisek/bloompath/internal/mastery"
	"github.com/abhisek/bloompath/internal/redirect"
)

// ErrNoPendingQuestion signals that ApplyAnswer was called without a
// question. This is a caller-contract violation; no state is mutated.
var ErrNoPendingQuestion = errors.New("engine: no question pending")

// Engine holds the shared, read-only configuration: graph, bank, and
// redirection map. It carries no per-learner state and is safe for
// concurrent use across sessions.
type Engine struct {
	graph     *conceptgraph.Graph
	bank      *bank.Bank
	redirects *redirect.Map
}

// New creates an engine over a validated graph/bank pairing.
// redirects may be nil, meaning no overrides.
func New(graph *conceptgraph.Graph, b *bank.Bank, redirects *redirect.Map) *Engine {
	return &Engine{graph: graph, bank: b, redirects: redirects}
}

// Graph returns the engine's concept graph.
func (e *Engine) Graph() *conceptgraph.Graph {
	return e.graph
}

// Bank returns the engine's question bank.
func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

// NextConcept returns the first concept, in the graph's declared order,
// that is not mastered and has all prerequisites mastered. The second
// return is false when every concept is mastered.
func (e *Engine) NextConcept(st *mastery.Store) (string, bool) {
	mastered := st.MasteredSet()
	for _, c := range e.graph.Concepts() {
		if !mastered[c.ID] && e.graph.IsUnlocked(c.ID, mastered) {
			return c.ID, true
		}
	}
	return "", false
}

// ChooseQuestion picks the next unanswered question for the current
// eligible concept.
//
// The concept's record level is initialized to the concept's first declared
// level if unset or not valid for the concept. Selection then walks the
// concept's declared levels from the current level onward, returning the
// first bank question (stable bank order) whose text has not been seen.
// When every level from the current one onward is exhausted, the concept is
// marked mastered, its level cleared, and nil is returned.
//
// Returns nil without touching any record when no concept is eligible.
func (e *Engine) ChooseQuestion(st *mastery.Store, hist *history.Log) *bank.Question {
	conceptID, ok := e.NextConcept(st)
	if !ok {
		return nil
	}

	c, err := e.graph.Get(conceptID)
	if err != nil {
		return nil
	}

	rec := st.Get(conceptID)
	if rec.Level == "" || !c.HasLevel(rec.Level) {
		rec.Level = c.FirstLevel()
	}

	for _, level := range c.LevelsFrom(rec.Level) {
		for _, q := range e.bank.ForConceptLevel(conceptID, level) {
			if !hist.Seen(q.Text) {
				return &q
			}
		}
	}

	// Every question from the current level onward has been answered:
	// mastery by exhaustion, independent of correctness.
	rec.MarkMastered()
	return nil
}

// Reset clears the mastery store and history back to their defaults.
func (e *Engine) Reset(st *mastery.Store, hist *history.Log) {
	st.Reset()
	hist.Reset()
}
