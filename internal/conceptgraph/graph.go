package conceptgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the concept DAG with precomputed indices. It is immutable
// after construction and safe for concurrent reads across learner sessions.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	roots      []Concept
	dependents map[string][]string
	topoOrder  []Concept
	topoIndex  map[string]int
}

// New constructs a validated graph from a slice of concepts.
// The declared slice order is preserved and defines the engine's
// deterministic eligibility traversal order.
func New(concepts []Concept) (*Graph, error) {
	if err := validateConcepts(concepts); err != nil {
		return nil, err
	}
	return build(concepts), nil
}

// build constructs the graph indices, including topological order
// (Kahn's algorithm). Assumes the concept set has already been validated.
func build(concepts []Concept) *Graph {
	g := &Graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	// Reverse edges.
	for i := range g.concepts {
		for _, prereqID := range g.concepts[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.concepts[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(concepts))
	for i := range concepts {
		inDegree[concepts[i].ID] = len(concepts[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Concept
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, c := range g.topoOrder {
		g.topoIndex[c.ID] = i
	}

	for i := range g.concepts {
		if g.concepts[i].IsRoot() {
			g.roots = append(g.roots, g.concepts[i])
		}
	}

	return g
}

// Get returns a concept by ID, or an error if not found.
func (g *Graph) Get(id string) (Concept, error) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return *c, nil
}

// Has reports whether the graph contains the given concept ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Concepts returns all concepts in declared order.
func (g *Graph) Concepts() []Concept {
	return slices.Clone(g.concepts)
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Roots returns all concepts with no prerequisites.
func (g *Graph) Roots() []Concept {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite concepts for an ID.
func (g *Graph) Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns concepts that directly depend on the given ID.
func (g *Graph) Dependents(id string) []Concept {
	depIDs := g.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// IsUnlocked reports whether every prerequisite of the concept is in the
// mastered set.
func (g *Graph) IsUnlocked(id string, mastered map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// Eligible returns all concepts that are unlocked but not yet mastered,
// in declared order.
func (g *Graph) Eligible(mastered map[string]bool) []Concept {
	var result []Concept
	for i := range g.concepts {
		c := g.concepts[i]
		if !mastered[c.ID] && g.IsUnlocked(c.ID, mastered) {
			result = append(result, c)
		}
	}
	return result
}

// TopologicalOrder returns all concepts in a valid topological order.
func (g *Graph) TopologicalOrder() []Concept {
	return slices.Clone(g.topoOrder)
}
