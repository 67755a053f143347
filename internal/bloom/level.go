package bloom

// Level represents a cognitive difficulty tier in Bloom's taxonomy.
type Level string

const (
	Prerequisite  Level = "Prerequisite"
	Remembering   Level = "Remembering"
	Understanding Level = "Understanding"
	Applying      Level = "Applying"
	Analyzing     Level = "Analyzing"
	Evaluating    Level = "Evaluating"
	Creating      Level = "Creating"
)

// None is the cleared level value, used once a concept is mastered.
const None Level = ""

// taxonomy is the global level order. Concept-local level lists are
// subsequences of this order; progression after a correct answer always
// steps through it.
var taxonomy = []Level{
	Prerequisite,
	Remembering,
	Understanding,
	Applying,
	Analyzing,
	Evaluating,
	Creating,
}

// taxonomyIndex maps each level to its position in the global order.
var taxonomyIndex = func() map[Level]int {
	m := make(map[Level]int, len(taxonomy))
	for i, l := range taxonomy {
		m[l] = i
	}
	return m
}()

// Taxonomy returns all levels in global order.
func Taxonomy() []Level {
	out := make([]Level, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Base returns the first level of the taxonomy, the remedial target after
// an incorrect answer.
func Base() Level {
	return taxonomy[0]
}

// Ceiling returns the last level of the taxonomy.
func Ceiling() Level {
	return taxonomy[len(taxonomy)-1]
}

// IsValid reports whether l is a taxonomy level.
func IsValid(l Level) bool {
	_, ok := taxonomyIndex[l]
	return ok
}

// Index returns l's position in the global order, or -1 if l is not a
// taxonomy level.
func Index(l Level) int {
	i, ok := taxonomyIndex[l]
	if !ok {
		return -1
	}
	return i
}

// Next returns the level strictly after l in the global order.
// The second return is false when l is the ceiling or not a taxonomy level.
func Next(l Level) (Level, bool) {
	i, ok := taxonomyIndex[l]
	if !ok || i+1 >= len(taxonomy) {
		return None, false
	}
	return taxonomy[i+1], true
}

// Compare orders two levels by taxonomy position. Unknown levels sort first.
func Compare(a, b Level) int {
	ai, bi := Index(a), Index(b)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}
