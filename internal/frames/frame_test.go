package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Option
	}{
		{
			name: "full colon form",
			raw:  "ans: Rock, result: Correct, next_step: main_frame_2, feedback: Well done",
			want: Option{Answer: "Rock", Result: "Correct", NextStep: "main_frame_2", Feedback: "Well done"},
		},
		{
			name: "equals separators and quoting",
			raw:  `ans = "Dog", result = Wrong, next_step = remedial_frame_1, feedback = {Think again}`,
			want: Option{Answer: "Dog", Result: "Wrong", NextStep: "remedial_frame_1", Feedback: "Think again"},
		},
		{
			name: "mixed case keys",
			raw:  "Ans: Cow, Result: wrong, Next_Step: remedial_frame_2, Feedback: Not quite",
			want: Option{Answer: "Cow", Result: "wrong", NextStep: "remedial_frame_2", Feedback: "Not quite"},
		},
		{
			name: "missing fields stay empty",
			raw:  "ans: Man",
			want: Option{Answer: "Man"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOption(tt.raw))
		})
	}
}

func TestOption_IsCorrect(t *testing.T) {
	assert.True(t, Option{Result: "Correct"}.IsCorrect())
	assert.True(t, Option{Result: "correct"}.IsCorrect())
	assert.True(t, Option{Result: " CORRECT "}.IsCorrect())
	assert.False(t, Option{Result: "Wrong"}.IsCorrect())
	assert.False(t, Option{}.IsCorrect())
}

func TestOption_IsTerminal(t *testing.T) {
	assert.True(t, Option{NextStep: ""}.IsTerminal())
	assert.True(t, Option{NextStep: "complete"}.IsTerminal())
	assert.True(t, Option{NextStep: "Complete"}.IsTerminal())
	assert.False(t, Option{NextStep: "main_frame_2"}.IsTerminal())
}
