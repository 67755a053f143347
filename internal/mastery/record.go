package mastery

import "github.com/abhisek/bloompath/internal/bloom"

// Record tracks one learner's state for a single concept.
type Record struct {
	// Level is the Bloom level the learner is currently being tested at,
	// or bloom.None once the concept is mastered.
	Level bloom.Level

	// Attempts counts submissions against this concept.
	Attempts int

	// Mastered is a one-way terminal flag. Once true the concept is
	// permanently excluded from eligibility and selection until a full
	// reset.
	Mastered bool
}

// MarkMastered sets the terminal flag and clears the level.
func (r *Record) MarkMastered() {
	r.Mastered = true
	r.Level = bloom.None
}
