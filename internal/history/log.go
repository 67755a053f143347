package history

// Entry records one presented question and the learner's response.
type Entry struct {
	QuestionText string `json:"question_text"`
	ChosenAnswer string `json:"chosen_answer"`
	Correct      bool   `json:"correct"`
}

// Log is the append-only answer history for one learner session.
// Entries are never mutated or removed except by a full Reset.
type Log struct {
	entries []Entry
	seen    map[string]bool
}

// NewLog creates an empty history log.
func NewLog() *Log {
	return &Log{seen: make(map[string]bool)}
}

// Append records a presented question and its outcome.
func (l *Log) Append(questionText, chosenAnswer string, correct bool) {
	l.entries = append(l.entries, Entry{
		QuestionText: questionText,
		ChosenAnswer: chosenAnswer,
		Correct:      correct,
	})
	l.seen[questionText] = true
}

// Seen reports whether a question text has already been presented.
func (l *Log) Seen(questionText string) bool {
	return l.seen[questionText]
}

// Entries returns the history in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// CorrectCount returns how many entries were answered correctly.
func (l *Log) CorrectCount() int {
	n := 0
	for _, e := range l.entries {
		if e.Correct {
			n++
		}
	}
	return n
}

// Reset clears the log.
func (l *Log) Reset() {
	l.entries = nil
	l.seen = make(map[string]bool)
}

// SnapshotData returns the entries for persistence.
func (l *Log) SnapshotData() []Entry {
	return l.Entries()
}

// LoadSnapshot replaces the log contents with persisted entries and
// rebuilds the seen index.
func (l *Log) LoadSnapshot(entries []Entry) {
	l.Reset()
	for _, e := range entries {
		l.Append(e.QuestionText, e.ChosenAnswer, e.Correct)
	}
}
