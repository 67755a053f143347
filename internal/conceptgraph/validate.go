package conceptgraph

import (
	"fmt"
	"strings"

	"github.com/abhisek/bloompath/internal/bloom"
)

// validateConcepts performs all structural checks on the given concept set.
// Returns a combined error describing all problems found, or nil if valid.
func validateConcepts(concepts []Concept) error {
	var errs []string

	if len(concepts) == 0 {
		return fmt.Errorf("concept graph validation failed:\n  graph has no concepts")
	}

	idSet := make(map[string]bool, len(concepts))

	// Duplicate IDs.
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, "concept with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	// Dangling prerequisites and self-references.
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if prereqID == c.ID {
				errs = append(errs, fmt.Sprintf("concept %q lists itself as a prerequisite", c.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Bloom level lists: nonempty, valid levels, no duplicates,
	// taxonomy-ordered (each concept list is a subsequence of the
	// global order).
	for _, c := range concepts {
		if len(c.BloomLevels) == 0 {
			errs = append(errs, fmt.Sprintf("concept %q declares no bloom levels", c.ID))
			continue
		}
		prev := -1
		for _, l := range c.BloomLevels {
			idx := bloom.Index(l)
			if idx < 0 {
				errs = append(errs, fmt.Sprintf("concept %q declares unknown bloom level %q", c.ID, l))
				continue
			}
			if idx == prev {
				errs = append(errs, fmt.Sprintf("concept %q declares bloom level %q twice", c.ID, l))
			} else if idx < prev {
				errs = append(errs, fmt.Sprintf("concept %q bloom levels out of taxonomy order at %q", c.ID, l))
			}
			prev = idx
		}
	}

	// Cycle detection via Kahn's algorithm.
	inDegree := make(map[string]int, len(concepts))
	adjList := make(map[string][]string)
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(concepts) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, c := range concepts {
		if c.IsRoot() {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root concepts found (at least one concept must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
