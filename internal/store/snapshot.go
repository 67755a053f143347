package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/bloompath/internal/frames"
	"github.com/abhisek/bloompath/internal/history"
	"github.com/abhisek/bloompath/internal/mastery"
)

// SnapshotData captures the full state of one learner at a point in time.
type SnapshotData struct {
	Version int                           `json:"version"`
	Profile ProfileData                   `json:"profile"`
	Mastery map[string]mastery.RecordData `json:"mastery,omitempty"`
	History []history.Entry               `json:"history,omitempty"`
	Frames  map[string]frames.FrameLog    `json:"frames,omitempty"`
}

// ProfileData is the learner profile stored inside snapshots.
type ProfileData struct {
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int64
	Learner   string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages per-learner state snapshots.
type SnapshotRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

// Save stores a new snapshot for a learner, stamped with the next global
// sequence number.
func (r *SnapshotRepo) Save(ctx context.Context, learner string, data SnapshotData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	data.Version = SnapshotVersion
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (learner, sequence, timestamp, data) VALUES (?, ?, ?, ?)`,
		learner, seqNum, time.Now().UTC(), string(blob))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the learner's most recent snapshot, or nil if none exist.
func (r *SnapshotRepo) Latest(ctx context.Context, learner string) (*Snapshot, error) {
	var row struct {
		ID        int64     `db:"id"`
		Learner   string    `db:"learner"`
		Sequence  int64     `db:"sequence"`
		Timestamp time.Time `db:"timestamp"`
		Data      string    `db:"data"`
	}
	err := r.db.GetContext(ctx, &row,
		`SELECT id, learner, sequence, timestamp, data FROM snapshots
		 WHERE learner = ? ORDER BY sequence DESC LIMIT 1`, learner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Learner:   row.Learner,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

// Learners returns the names of all learners with at least one snapshot.
func (r *SnapshotRepo) Learners(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		`SELECT DISTINCT learner FROM snapshots ORDER BY learner`)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}
	return names, nil
}

// Prune deletes all but the learner's N most recent snapshots.
func (r *SnapshotRepo) Prune(ctx context.Context, learner string, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE learner = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE learner = ?
			ORDER BY sequence DESC LIMIT ?
		)`, learner, learner, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Delete removes all snapshots for a learner.
func (r *SnapshotRepo) Delete(ctx context.Context, learner string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE learner = ?`, learner)
	if err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
