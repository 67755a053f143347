package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Login and response events live in separate
// tables, so per-table auto-increment IDs can't establish cross-type
// ordering. The shared counter assigns a single increasing sequence to
// every event regardless of type, which also anchors snapshots: events
// with sequence > snapshot.sequence happened after the snapshot.
//
// The mutex serializes within the process; the RETURNING clause makes
// the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sqlx.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sqlx.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// LoginEventData captures one learner login.
type LoginEventData struct {
	Learner string
}

// ResponseEventData captures one answered question.
type ResponseEventData struct {
	Learner            string
	SessionID          string
	ConceptID          string
	QuestionID         string
	QuestionText       string
	BloomLevel         string
	Chosen             string
	Correct            bool
	Mastered           bool
	RedirectQuestionID string
}

// ResponseEvent is a stored response event row.
type ResponseEvent struct {
	ID                 int64     `db:"id"`
	EventID            string    `db:"event_id"`
	Sequence           int64     `db:"sequence"`
	Learner            string    `db:"learner"`
	SessionID          string    `db:"session_id"`
	ConceptID          string    `db:"concept_id"`
	QuestionID         string    `db:"question_id"`
	QuestionText       string    `db:"question_text"`
	BloomLevel         string    `db:"bloom_level"`
	Chosen             string    `db:"chosen"`
	Correct            bool      `db:"correct"`
	Mastered           bool      `db:"mastered"`
	RedirectQuestionID string    `db:"redirect_question_id"`
	Timestamp          time.Time `db:"timestamp"`
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// EventRepo provides append and query access to the event log.
type EventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

// AppendLogin records a learner login event.
func (r *EventRepo) AppendLogin(ctx context.Context, data LoginEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO login_events (event_id, sequence, learner, timestamp)
		 VALUES (?, ?, ?, ?)`,
		uuid.NewString(), seqNum, data.Learner, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save login event: %w", err)
	}
	return nil
}

// AppendResponse records an answered-question event.
func (r *EventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO response_events (
			event_id, sequence, learner, session_id, concept_id,
			question_id, question_text, bloom_level, chosen,
			correct, mastered, redirect_question_id, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seqNum, data.Learner, data.SessionID, data.ConceptID,
		data.QuestionID, data.QuestionText, data.BloomLevel, data.Chosen,
		data.Correct, data.Mastered, data.RedirectQuestionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

// Responses returns a learner's response events in sequence order.
func (r *EventRepo) Responses(ctx context.Context, learner string, opts QueryOpts) ([]ResponseEvent, error) {
	query := `SELECT * FROM response_events WHERE learner = ? AND sequence > ? ORDER BY sequence`
	args := []any{learner, opts.After}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	var events []ResponseEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}
	return events, nil
}

// Accuracy returns the fraction of a learner's responses that were correct,
// or 0 if the learner has no responses.
func (r *EventRepo) Accuracy(ctx context.Context, learner string) (float64, error) {
	var row struct {
		Total   int `db:"total"`
		Correct int `db:"correct"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT COUNT(*) AS total, COALESCE(SUM(correct), 0) AS correct
		 FROM response_events WHERE learner = ?`, learner)
	if err != nil {
		return 0, fmt.Errorf("query accuracy: %w", err)
	}
	if row.Total == 0 {
		return 0, nil
	}
	return float64(row.Correct) / float64(row.Total), nil
}

// LoginCount returns the number of recorded logins for a learner.
func (r *EventRepo) LoginCount(ctx context.Context, learner string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM login_events WHERE learner = ?`, learner)
	if err != nil {
		return 0, fmt.Errorf("query login count: %w", err)
	}
	return n, nil
}
