package bank

import "github.com/abhisek/bloompath/internal/bloom"

// Question is a single multiple-choice question in the bank.
type Question struct {
	// ID is the unique question identifier (e.g. "Q1.0").
	ID string `yaml:"id"`

	// Text is the prompt. It is also the natural key used for history
	// deduplication and redirection lookup, so it must be unique bank-wide.
	Text string `yaml:"text"`

	// Options is the ordered list of answer choices.
	Options []string `yaml:"options"`

	// CorrectAnswer must exactly match one of Options.
	CorrectAnswer string `yaml:"correct_answer"`

	// BloomLevel is the taxonomy level this question exercises.
	BloomLevel bloom.Level `yaml:"bloom_level"`

	// ConceptTag is the ID of the concept this question belongs to.
	ConceptTag string `yaml:"concept_tag"`
}

// HasOption reports whether choice is one of the question's declared options.
func (q Question) HasOption(choice string) bool {
	for _, o := range q.Options {
		if o == choice {
			return true
		}
	}
	return false
}

// IsCorrect reports whether choice exactly matches the correct answer.
// A choice outside the declared options is simply incorrect.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}
