package bank

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/conceptgraph"
)

// key indexes questions by (concept, level).
type key struct {
	concept string
	level   bloom.Level
}

// Bank is a fixed, validated collection of questions. It is immutable after
// construction and safe for concurrent reads.
type Bank struct {
	questions []Question
	byID      map[string]*Question
	byText    map[string]*Question
	byTag     map[key][]Question
}

// New constructs a validated bank paired with the graph it serves.
// An inconsistent graph/bank pairing (unknown concept tags, unknown levels,
// duplicate texts) is a configuration error detected here, never mid-session.
func New(questions []Question, graph *conceptgraph.Graph) (*Bank, error) {
	if err := validateQuestions(questions, graph); err != nil {
		return nil, err
	}

	b := &Bank{
		questions: questions,
		byID:      make(map[string]*Question, len(questions)),
		byText:    make(map[string]*Question, len(questions)),
		byTag:     make(map[key][]Question),
	}
	for i := range b.questions {
		q := &b.questions[i]
		b.byID[q.ID] = q
		b.byText[q.Text] = q
		k := key{concept: q.ConceptTag, level: q.BloomLevel}
		b.byTag[k] = append(b.byTag[k], *q)
	}
	return b, nil
}

// Questions returns all questions in stable declaration order.
func (b *Bank) Questions() []Question {
	return slices.Clone(b.questions)
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// ByID returns the question with the given ID.
func (b *Bank) ByID(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// ByText returns the question with the given prompt text.
func (b *Bank) ByText(text string) (Question, bool) {
	q, ok := b.byText[text]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// ForConceptLevel returns all questions tagged with the given concept and
// level, in stable declaration order.
func (b *Bank) ForConceptLevel(conceptID string, level bloom.Level) []Question {
	return slices.Clone(b.byTag[key{concept: conceptID, level: level}])
}

// validateQuestions performs all structural checks on the question set.
func validateQuestions(questions []Question, graph *conceptgraph.Graph) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	idSet := make(map[string]bool, len(questions))
	textSet := make(map[string]bool, len(questions))

	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
		} else if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		// Text doubles as the dedup/redirect key, so it must be unique.
		if q.Text == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty text", q.ID))
		} else if textSet[q.Text] {
			errs = append(errs, fmt.Sprintf("duplicate question text: %q", q.Text))
		}
		textSet[q.Text] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q needs at least 2 options, got %d", q.ID, len(q.Options)))
		}
		if !q.HasOption(q.CorrectAnswer) {
			errs = append(errs, fmt.Sprintf("question %q correct answer %q not among options", q.ID, q.CorrectAnswer))
		}
		if !bloom.IsValid(q.BloomLevel) {
			errs = append(errs, fmt.Sprintf("question %q has unknown bloom level %q", q.ID, q.BloomLevel))
		}
		if graph != nil && !graph.Has(q.ConceptTag) {
			errs = append(errs, fmt.Sprintf("question %q tagged with unknown concept %q", q.ID, q.ConceptTag))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
