package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/bloompath/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceOrderingAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	if err := events.AppendLogin(ctx, LoginEventData{Learner: "asha"}); err != nil {
		t.Fatal(err)
	}
	if err := events.AppendResponse(ctx, ResponseEventData{
		Learner:      "asha",
		SessionID:    "s1",
		ConceptID:    "Living organisms",
		QuestionID:   "Q1.0",
		QuestionText: "Which among the following is a living organism?",
		BloomLevel:   "Prerequisite",
		Chosen:       "Tree",
		Correct:      true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := events.AppendLogin(ctx, LoginEventData{Learner: "asha"}); err != nil {
		t.Fatal(err)
	}

	resp, err := events.Responses(ctx, "asha", QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp) != 1 {
		t.Fatalf("responses: got %d, want 1", len(resp))
	}
	// Login, response, login received sequences 1, 2, 3.
	if resp[0].Sequence != 2 {
		t.Errorf("response sequence = %d, want 2", resp[0].Sequence)
	}
	if resp[0].EventID == "" {
		t.Error("response event should carry a uuid")
	}

	n, err := events.LoginCount(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("login count = %d, want 2", n)
	}
}

func TestResponsesFilteredByLearner(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for _, learner := range []string{"asha", "ravi", "asha"} {
		err := events.AppendResponse(ctx, ResponseEventData{
			Learner: learner, SessionID: "s1", ConceptID: "Living organisms",
			QuestionID: "Q1.0", QuestionText: "q", BloomLevel: "Prerequisite",
			Chosen: "Tree", Correct: true,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	resp, err := events.Responses(ctx, "asha", QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp) != 2 {
		t.Fatalf("asha responses: got %d, want 2", len(resp))
	}
	for _, e := range resp {
		if e.Learner != "asha" {
			t.Errorf("leaked event for learner %q", e.Learner)
		}
	}
}

func TestAccuracy(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	acc, err := events.Accuracy(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0 {
		t.Errorf("accuracy with no responses = %v, want 0", acc)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := events.AppendResponse(ctx, ResponseEventData{
			Learner: "asha", SessionID: "s1", ConceptID: "c",
			QuestionID: "q", QuestionText: "t", BloomLevel: "Prerequisite",
			Chosen: "x", Correct: correct,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	acc, err = events.Accuracy(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for unknown learner")
	}

	data := SnapshotData{
		Profile: ProfileData{Name: "asha", Age: 12},
		Mastery: map[string]mastery.RecordData{
			"Living organisms": {Level: "Applying", Attempts: 3},
		},
	}
	if err := repo.Save(ctx, "asha", data); err != nil {
		t.Fatal(err)
	}

	snap, err = repo.Latest(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if snap.Data.Profile.Name != "asha" {
		t.Errorf("profile name = %q", snap.Data.Profile.Name)
	}
	rec := snap.Data.Mastery["Living organisms"]
	if rec.Level != "Applying" || rec.Attempts != 3 {
		t.Errorf("mastery record = %+v", rec)
	}
}

func TestSnapshotLatestWinsAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for age := 10; age <= 14; age++ {
		err := repo.Save(ctx, "asha", SnapshotData{Profile: ProfileData{Name: "asha", Age: age}})
		if err != nil {
			t.Fatal(err)
		}
	}

	snap, err := repo.Latest(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Data.Profile.Age != 14 {
		t.Errorf("latest age = %d, want 14", snap.Data.Profile.Age)
	}

	if err := repo.Prune(ctx, "asha", 2); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := s.DB().Get(&count, `SELECT COUNT(*) FROM snapshots WHERE learner = ?`, "asha"); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("after prune: %d snapshots, want 2", count)
	}

	// The most recent snapshot survives pruning.
	snap, err = repo.Latest(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Data.Profile.Age != 14 {
		t.Errorf("latest after prune = %d, want 14", snap.Data.Profile.Age)
	}
}

func TestSnapshotLearners(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for _, name := range []string{"ravi", "asha", "ravi"} {
		if err := repo.Save(ctx, name, SnapshotData{Profile: ProfileData{Name: name}}); err != nil {
			t.Fatal(err)
		}
	}

	names, err := repo.Learners(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "asha" || names[1] != "ravi" {
		t.Errorf("learners = %v", names)
	}
}
