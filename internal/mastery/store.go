package mastery

import (
	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/conceptgraph"
)

// Store holds the mastery records for one learner session, keyed by
// concept ID. It is owned by exactly one session and is not safe for
// concurrent use; concurrent learners each hold their own Store.
type Store struct {
	graph   *conceptgraph.Graph
	records map[string]*Record
}

// NewStore creates an empty store bound to a concept graph. The graph
// supplies each concept's default starting level for lazy record creation.
func NewStore(graph *conceptgraph.Graph) *Store {
	return &Store{
		graph:   graph,
		records: make(map[string]*Record),
	}
}

// Get returns the record for a concept, creating it at its defaults
// (first declared Bloom level, zero attempts, not mastered) on first
// reference.
func (s *Store) Get(conceptID string) *Record {
	if r, ok := s.records[conceptID]; ok {
		return r
	}
	r := &Record{Level: s.defaultLevel(conceptID)}
	s.records[conceptID] = r
	return r
}

// Peek returns the record for a concept without creating one.
func (s *Store) Peek(conceptID string) (*Record, bool) {
	r, ok := s.records[conceptID]
	return r, ok
}

// IsMastered reports whether a concept has reached mastery. Unreferenced
// concepts are not mastered; no record is created.
func (s *Store) IsMastered(conceptID string) bool {
	r, ok := s.records[conceptID]
	return ok && r.Mastered
}

// MasteredSet returns the set of mastered concept IDs.
func (s *Store) MasteredSet() map[string]bool {
	result := make(map[string]bool)
	for id, r := range s.records {
		if r.Mastered {
			result[id] = true
		}
	}
	return result
}

// MasteredCount returns the number of mastered concepts.
func (s *Store) MasteredCount() int {
	n := 0
	for _, r := range s.records {
		if r.Mastered {
			n++
		}
	}
	return n
}

// TotalAttempts returns the attempt count summed over all concepts.
func (s *Store) TotalAttempts() int {
	n := 0
	for _, r := range s.records {
		n += r.Attempts
	}
	return n
}

// Reset recreates all records at their defaults. There is no partial reset.
func (s *Store) Reset() {
	s.records = make(map[string]*Record)
}

// Graph returns the concept graph this store is bound to.
func (s *Store) Graph() *conceptgraph.Graph {
	return s.graph
}

func (s *Store) defaultLevel(conceptID string) bloom.Level {
	if s.graph != nil {
		if c, err := s.graph.Get(conceptID); err == nil {
			return c.FirstLevel()
		}
	}
	return bloom.Base()
}
