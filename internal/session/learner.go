package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/bloompath/internal/engine"
	"github.com/abhisek/bloompath/internal/frames"
	"github.com/abhisek/bloompath/internal/store"
)

// snapshotKeep is how many snapshots are retained per learner.
const snapshotKeep = 10

// Manager creates learner sessions against a shared engine, course, and
// optional store. A nil store means in-memory only: nothing is persisted
// and logins start fresh.
type Manager struct {
	engine   *engine.Engine
	course   *frames.Course
	db       *store.Store
	sessions *engine.Sessions
	trackers map[string]*frames.Tracker
}

// NewManager wires a session manager. db may be nil.
func NewManager(e *engine.Engine, course *frames.Course, db *store.Store) *Manager {
	return &Manager{
		engine:   e,
		course:   course,
		db:       db,
		sessions: engine.NewSessions(e),
		trackers: make(map[string]*frames.Tracker),
	}
}

// Learner is one logged-in learner: their profile, learning walk, and
// practice session, bridged to the store.
type Learner struct {
	Profile  Profile
	Practice *engine.Session
	Learning *frames.Tracker

	mgr       *Manager
	startedAt time.Time
}

// Login validates the profile, restores the learner's latest snapshot if
// one exists, and records a login event. Within one process run, repeat
// logins under the same name reattach to the live practice session and
// learning walk.
func (m *Manager) Login(ctx context.Context, p Profile) (*Learner, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := p.Key()
	tracker, ok := m.trackers[key]
	if !ok {
		tracker = frames.NewTracker(m.course)
		m.trackers[key] = tracker
	}

	l := &Learner{
		Profile:   p,
		Practice:  m.sessions.Get(key),
		Learning:  tracker,
		mgr:       m,
		startedAt: time.Now(),
	}

	if m.db == nil {
		return l, nil
	}

	snap, err := m.db.SnapshotRepo().Latest(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("restore learner %q: %w", key, err)
	}
	if snap != nil {
		l.Practice.Store.LoadSnapshot(snap.Data.Mastery)
		l.Practice.History.LoadSnapshot(snap.Data.History)
		l.Learning.LoadSnapshot(snap.Data.Frames)
		if p.Age == 0 {
			l.Profile.Age = snap.Data.Profile.Age
		}
		if p.Gender == "" {
			l.Profile.Gender = snap.Data.Profile.Gender
		}
	}

	if err := m.db.EventRepo().AppendLogin(ctx, store.LoginEventData{Learner: p.Key()}); err != nil {
		warnf("failed to log login event: %v", err)
	}
	return l, nil
}

// SubmitAnswer submits a practice answer, records a response event, and
// snapshots the learner's state. Persistence failures are warned, not
// returned; the interaction itself never depends on the database.
func (l *Learner) SubmitAnswer(ctx context.Context, chosen string) (engine.Outcome, error) {
	q := l.Practice.Pending()
	out, err := l.Practice.Submit(chosen)
	if err != nil {
		return out, err
	}

	if l.mgr.db != nil && q != nil {
		data := store.ResponseEventData{
			Learner:            l.Profile.Key(),
			SessionID:          l.Practice.ID,
			ConceptID:          q.ConceptTag,
			QuestionID:         q.ID,
			QuestionText:       q.Text,
			BloomLevel:         string(q.BloomLevel),
			Chosen:             chosen,
			Correct:            out.Correct,
			Mastered:           out.Mastered,
			RedirectQuestionID: out.RedirectQuestionID,
		}
		if err := l.mgr.db.EventRepo().AppendResponse(ctx, data); err != nil {
			warnf("failed to log response event: %v", err)
		}
		l.snapshot(ctx)
	}
	return out, nil
}

// AnswerFrame answers the current learning frame's question. Nothing is
// persisted here: completion is staged in the tracker and only becomes
// snapshot state once AdvanceFrame commits it.
func (l *Learner) AnswerFrame(optionIndex int) (frames.AnswerResult, error) {
	return l.Learning.Answer(optionIndex)
}

// AdvanceFrame moves past the current learning frame and snapshots the
// updated learning log.
func (l *Learner) AdvanceFrame(ctx context.Context) error {
	if err := l.Learning.Advance(); err != nil {
		return err
	}
	if l.mgr.db != nil {
		l.snapshot(ctx)
	}
	return nil
}

// PracticeUnlocked reports whether adaptive practice is available: every
// main learning frame must be completed first.
func (l *Learner) PracticeUnlocked() bool {
	return l.Learning.Complete()
}

// ResetPractice clears the learner's practice state and persists the
// cleared snapshot.
func (l *Learner) ResetPractice(ctx context.Context) {
	l.Practice.Reset()
	if l.mgr.db != nil {
		l.snapshot(ctx)
	}
}

// snapshot persists the learner's current state, pruning old snapshots.
// Failures are warned to stderr.
func (l *Learner) snapshot(ctx context.Context) {
	repo := l.mgr.db.SnapshotRepo()
	data := store.SnapshotData{
		Profile: store.ProfileData{
			Name:   l.Profile.Name,
			Age:    l.Profile.Age,
			Gender: l.Profile.Gender,
		},
		Mastery: l.Practice.Store.SnapshotData(),
		History: l.Practice.History.SnapshotData(),
		Frames:  l.Learning.SnapshotData(),
	}
	if err := repo.Save(ctx, l.Profile.Key(), data); err != nil {
		warnf("failed to save snapshot: %v", err)
		return
	}
	if err := repo.Prune(ctx, l.Profile.Key(), snapshotKeep); err != nil {
		warnf("failed to prune snapshots: %v", err)
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
