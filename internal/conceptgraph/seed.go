package conceptgraph

import "github.com/abhisek/bloompath/internal/bloom"

// seedConcepts is the built-in Grade 10 biology "Life Processes" graph.
// Declaration order matters: it defines the eligibility traversal order.
var seedConcepts = []Concept{
	{
		ID:          "Living organisms",
		BloomLevels: []bloom.Level{bloom.Prerequisite, bloom.Applying},
	},
	{
		ID:            "Unicellular organisms",
		Prerequisites: []string{"Living organisms"},
		BloomLevels:   []bloom.Level{bloom.Remembering},
	},
	{
		ID:            "Multicellular organisms",
		Prerequisites: []string{"Living organisms"},
		BloomLevels:   []bloom.Level{bloom.Remembering},
	},
	{
		ID:            "Life processes",
		Prerequisites: []string{"Living organisms"},
		BloomLevels:   []bloom.Level{bloom.Understanding},
	},
	{
		ID:            "Movement in living organisms",
		Prerequisites: []string{"Life processes"},
		BloomLevels:   []bloom.Level{bloom.Understanding, bloom.Applying},
	},
	{
		ID:            "Metabolism",
		Prerequisites: []string{"Life processes"},
		BloomLevels:   []bloom.Level{bloom.Prerequisite, bloom.Remembering, bloom.Analyzing},
	},
	{
		ID:            "Metabolism in unicellular organisms",
		Prerequisites: []string{"Metabolism"},
		BloomLevels:   []bloom.Level{bloom.Remembering, bloom.Applying},
	},
	{
		ID:            "Metabolism in multicellular organisms",
		Prerequisites: []string{"Metabolism"},
		BloomLevels:   []bloom.Level{bloom.Understanding},
	},
}

// defaultGraph is built once at init. The seed is maintained by hand, so a
// validation failure here is a programming error.
var defaultGraph = func() *Graph {
	g, err := New(seedConcepts)
	if err != nil {
		panic(err)
	}
	return g
}()

// Default returns the built-in concept graph.
func Default() *Graph {
	return defaultGraph
}
