package mastery

import (
	"testing"

	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/conceptgraph"
)

func TestGet_LazyDefaults(t *testing.T) {
	s := NewStore(conceptgraph.Default())

	r := s.Get("Living organisms")
	if r.Level != bloom.Prerequisite {
		t.Errorf("default level: got %q, want the concept's first declared level", r.Level)
	}
	if r.Attempts != 0 || r.Mastered {
		t.Errorf("fresh record: got %+v", r)
	}

	// Same pointer on repeat access.
	r.Attempts = 3
	if s.Get("Living organisms").Attempts != 3 {
		t.Error("Get should return the same record on repeat access")
	}
}

func TestGet_UnknownConceptFallsBackToBase(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	r := s.Get("not in graph")
	if r.Level != bloom.Base() {
		t.Errorf("got %q, want taxonomy base", r.Level)
	}
}

func TestIsMastered_DoesNotCreate(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	if s.IsMastered("Metabolism") {
		t.Error("unreferenced concept reported mastered")
	}
	if _, ok := s.Peek("Metabolism"); ok {
		t.Error("IsMastered must not create a record")
	}
}

func TestMasteredSetAndCounts(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	s.Get("Living organisms").MarkMastered()
	r := s.Get("Life processes")
	r.Attempts = 2

	set := s.MasteredSet()
	if len(set) != 1 || !set["Living organisms"] {
		t.Errorf("mastered set: got %v", set)
	}
	if s.MasteredCount() != 1 {
		t.Errorf("mastered count: got %d", s.MasteredCount())
	}
	if s.TotalAttempts() != 2 {
		t.Errorf("total attempts: got %d", s.TotalAttempts())
	}
}

func TestMarkMastered_ClearsLevel(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	r := s.Get("Living organisms")
	r.MarkMastered()
	if !r.Mastered || r.Level != bloom.None {
		t.Errorf("after MarkMastered: %+v", r)
	}
}

func TestReset(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	s.Get("Living organisms").MarkMastered()
	s.Get("Metabolism").Attempts = 5

	s.Reset()

	if s.MasteredCount() != 0 || s.TotalAttempts() != 0 {
		t.Error("reset should clear all records")
	}
	// Records recreate at defaults afterwards.
	if s.Get("Living organisms").Level != bloom.Prerequisite {
		t.Error("records should recreate at defaults after reset")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	s.Get("Living organisms").MarkMastered()
	r := s.Get("Metabolism")
	r.Level = bloom.Remembering
	r.Attempts = 4

	data := s.SnapshotData()

	restored := NewStore(conceptgraph.Default())
	restored.LoadSnapshot(data)

	if !restored.IsMastered("Living organisms") {
		t.Error("mastery lost in round trip")
	}
	got, ok := restored.Peek("Metabolism")
	if !ok {
		t.Fatal("Metabolism record lost in round trip")
	}
	if got.Level != bloom.Remembering || got.Attempts != 4 {
		t.Errorf("restored record: %+v", got)
	}
}

func TestLoadSnapshot_InvalidLevel(t *testing.T) {
	s := NewStore(conceptgraph.Default())
	s.LoadSnapshot(map[string]RecordData{
		"Metabolism": {Level: "Transcending", Attempts: 1},
	})
	got, _ := s.Peek("Metabolism")
	if got.Level != bloom.None {
		t.Errorf("invalid persisted level should load as unset, got %q", got.Level)
	}
}
