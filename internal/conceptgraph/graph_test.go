package conceptgraph

import (
	"testing"

	"github.com/abhisek/bloompath/internal/bloom"
)

func TestDefault_Get(t *testing.T) {
	g := Default()
	c, err := g.Get("Living organisms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsRoot() {
		t.Error("Living organisms should be a root concept")
	}
	if c.FirstLevel() != bloom.Prerequisite {
		t.Errorf("first level: got %q, want %q", c.FirstLevel(), bloom.Prerequisite)
	}
}

func TestDefault_NotFound(t *testing.T) {
	_, err := Default().Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent concept, got nil")
	}
}

func TestDefault_Shape(t *testing.T) {
	g := Default()
	if g.Len() != 8 {
		t.Errorf("got %d concepts, want 8", g.Len())
	}
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "Living organisms" {
		t.Errorf("roots: got %v, want [Living organisms]", roots)
	}
	deps := g.Dependents("Metabolism")
	if len(deps) != 2 {
		t.Errorf("Metabolism dependents: got %d, want 2", len(deps))
	}
}

func TestDeclaredOrderPreserved(t *testing.T) {
	concepts := Default().Concepts()
	if concepts[0].ID != "Living organisms" {
		t.Errorf("first concept: got %q", concepts[0].ID)
	}
	if concepts[len(concepts)-1].ID != "Metabolism in multicellular organisms" {
		t.Errorf("last concept: got %q", concepts[len(concepts)-1].ID)
	}
}

func TestEligible_FreshStore(t *testing.T) {
	g := Default()
	eligible := g.Eligible(nil)
	if len(eligible) != 1 {
		t.Fatalf("fresh session: got %d eligible concepts, want 1 (the root)", len(eligible))
	}
	if eligible[0].ID != "Living organisms" {
		t.Errorf("got %q, want Living organisms", eligible[0].ID)
	}
}

func TestEligible_AfterRootMastered(t *testing.T) {
	g := Default()
	mastered := map[string]bool{"Living organisms": true}
	eligible := g.Eligible(mastered)

	// Declared order: Unicellular, Multicellular, Life processes unlock.
	wantIDs := []string{"Unicellular organisms", "Multicellular organisms", "Life processes"}
	if len(eligible) != len(wantIDs) {
		t.Fatalf("got %d eligible, want %d", len(eligible), len(wantIDs))
	}
	for i, want := range wantIDs {
		if eligible[i].ID != want {
			t.Errorf("eligible[%d]: got %q, want %q", i, eligible[i].ID, want)
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	g := Default()
	if g.IsUnlocked("Metabolism", map[string]bool{"Living organisms": true}) {
		t.Error("Metabolism should stay locked until Life processes is mastered")
	}
	if !g.IsUnlocked("Metabolism", map[string]bool{"Life processes": true}) {
		t.Error("Metabolism should unlock once Life processes is mastered")
	}
	if g.IsUnlocked("nonexistent", nil) {
		t.Error("unknown concept should never be unlocked")
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := Default()
	order := g.TopologicalOrder()
	pos := make(map[string]int, len(order))
	for i, c := range order {
		pos[c.ID] = i
	}
	for _, c := range g.Concepts() {
		for _, prereq := range c.Prerequisites {
			if pos[prereq] >= pos[c.ID] {
				t.Errorf("prerequisite %q appears after %q in topo order", prereq, c.ID)
			}
		}
	}
}

func TestNew_RejectsCycle(t *testing.T) {
	_, err := New([]Concept{
		{ID: "a", Prerequisites: []string{"b"}, BloomLevels: []bloom.Level{bloom.Remembering}},
		{ID: "b", Prerequisites: []string{"a"}, BloomLevels: []bloom.Level{bloom.Remembering}},
		{ID: "root", BloomLevels: []bloom.Level{bloom.Remembering}},
	})
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
}

func TestNew_RejectsDanglingPrerequisite(t *testing.T) {
	_, err := New([]Concept{
		{ID: "a", Prerequisites: []string{"ghost"}, BloomLevels: []bloom.Level{bloom.Remembering}},
	})
	if err == nil {
		t.Fatal("expected dangling prerequisite error, got nil")
	}
}

func TestNew_RejectsBadLevels(t *testing.T) {
	tests := []struct {
		name   string
		levels []bloom.Level
	}{
		{"empty", nil},
		{"unknown", []bloom.Level{bloom.Level("Guessing")}},
		{"out of order", []bloom.Level{bloom.Applying, bloom.Remembering}},
		{"duplicate", []bloom.Level{bloom.Remembering, bloom.Remembering}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Concept{{ID: "a", BloomLevels: tt.levels}})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLevelsFrom(t *testing.T) {
	c := Concept{
		ID:          "Metabolism",
		BloomLevels: []bloom.Level{bloom.Prerequisite, bloom.Remembering, bloom.Analyzing},
	}

	got := c.LevelsFrom(bloom.Remembering)
	if len(got) != 2 || got[0] != bloom.Remembering || got[1] != bloom.Analyzing {
		t.Errorf("LevelsFrom(Remembering): got %v", got)
	}

	// A level not in the concept's list falls back to the full list.
	got = c.LevelsFrom(bloom.Understanding)
	if len(got) != 3 {
		t.Errorf("LevelsFrom(Understanding): got %v, want full list", got)
	}
}

func TestParse_ContentPack(t *testing.T) {
	data := []byte(`
concepts:
  - id: "Counting"
    bloom_levels: [Remembering, Understanding]
  - id: "Addition"
    prerequisites: ["Counting"]
    bloom_levels: [Remembering, Applying]
`)
	g, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("got %d concepts, want 2", g.Len())
	}
	c, err := g.Get("Addition")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Prerequisites) != 1 || c.Prerequisites[0] != "Counting" {
		t.Errorf("Addition prerequisites: got %v", c.Prerequisites)
	}
}

func TestParse_InvalidPack(t *testing.T) {
	if _, err := Parse([]byte("concepts: [")); err == nil {
		t.Error("expected YAML error for malformed pack")
	}
	if _, err := Parse([]byte("concepts: []")); err == nil {
		t.Error("expected validation error for empty pack")
	}
}
