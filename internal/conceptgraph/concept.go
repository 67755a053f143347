package conceptgraph

import "github.com/abhisek/bloompath/internal/bloom"

// Concept represents a single unit of knowledge in the graph.
type Concept struct {
	// ID is the unique concept name. It doubles as the key used by the
	// question bank's concept tags and by mastery records.
	ID string `yaml:"id"`

	// Prerequisites lists concept IDs that must all be mastered before
	// this concept becomes eligible for practice.
	Prerequisites []string `yaml:"prerequisites"`

	// BloomLevels is the ordered progression path within this concept,
	// a subsequence of the global taxonomy order.
	BloomLevels []bloom.Level `yaml:"bloom_levels"`
}

// FirstLevel returns the concept's first declared Bloom level.
func (c Concept) FirstLevel() bloom.Level {
	if len(c.BloomLevels) == 0 {
		return bloom.None
	}
	return c.BloomLevels[0]
}

// HasLevel reports whether l appears in the concept's declared level list.
func (c Concept) HasLevel(l bloom.Level) bool {
	for _, cl := range c.BloomLevels {
		if cl == l {
			return true
		}
	}
	return false
}

// LevelsFrom returns the declared levels starting at l (inclusive), in
// declared order. If l is not in the list, the full list is returned so
// selection can fall through from the concept's first level.
func (c Concept) LevelsFrom(l bloom.Level) []bloom.Level {
	for i, cl := range c.BloomLevels {
		if cl == l {
			return c.BloomLevels[i:]
		}
	}
	return c.BloomLevels
}

// IsRoot reports whether the concept has no prerequisites.
func (c Concept) IsRoot() bool {
	return len(c.Prerequisites) == 0
}
