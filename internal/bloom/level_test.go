package bloom

import "testing"

func TestTaxonomyOrder(t *testing.T) {
	levels := Taxonomy()
	if len(levels) != 7 {
		t.Fatalf("got %d levels, want 7", len(levels))
	}
	if levels[0] != Prerequisite {
		t.Errorf("base: got %q, want %q", levels[0], Prerequisite)
	}
	if levels[len(levels)-1] != Creating {
		t.Errorf("ceiling: got %q, want %q", levels[len(levels)-1], Creating)
	}
	for i, l := range levels {
		if Index(l) != i {
			t.Errorf("Index(%q): got %d, want %d", l, Index(l), i)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		in     Level
		want   Level
		wantOK bool
	}{
		{Prerequisite, Remembering, true},
		{Remembering, Understanding, true},
		{Understanding, Applying, true},
		{Applying, Analyzing, true},
		{Analyzing, Evaluating, true},
		{Evaluating, Creating, true},
		{Creating, None, false},
		{Level("Bogus"), None, false},
		{None, None, false},
	}
	for _, tt := range tests {
		got, ok := Next(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Next(%q): got (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, l := range Taxonomy() {
		if !IsValid(l) {
			t.Errorf("IsValid(%q) = false, want true", l)
		}
	}
	if IsValid(None) {
		t.Error("IsValid(None) = true, want false")
	}
	if IsValid(Level("remembering")) {
		t.Error("levels are case-sensitive; lowercase should be invalid")
	}
}

func TestCompare(t *testing.T) {
	if Compare(Prerequisite, Creating) >= 0 {
		t.Error("Prerequisite should sort before Creating")
	}
	if Compare(Applying, Applying) != 0 {
		t.Error("equal levels should compare 0")
	}
	if Compare(None, Prerequisite) >= 0 {
		t.Error("unknown level should sort first")
	}
}
