// Package frames implements the branching programmed-instruction learning
// phase: linear main frames with remedial branches, loaded from an authored
// workbook. Completing every main frame unlocks adaptive practice.
package frames

import (
	"regexp"
	"strings"
)

// Source identifies which workbook sheet a frame came from.
type Source string

const (
	SourceMain     Source = "Main_frame"
	SourceRemedial Source = "Remedial_frame"
)

// Frame is one instruction page.
type Frame struct {
	Name      string
	Heading   string
	Content   string
	Notes     string
	KeyFocus  string
	ExtraInfo string
	Video     string
	Scenario  string
	Question  string
	Options   []Option
	Source    Source
}

// IsMain reports whether this is a main-path frame.
func (f Frame) IsMain() bool {
	return f.Source == SourceMain
}

// Option is one decoded answer choice on a frame's review question.
type Option struct {
	Answer   string
	Result   string
	NextStep string
	Feedback string
}

// IsCorrect reports whether choosing this option counts as correct.
func (o Option) IsCorrect() bool {
	return strings.EqualFold(strings.TrimSpace(o.Result), "correct")
}

// IsTerminal reports whether this option's next step ends the course.
func (o Option) IsTerminal() bool {
	next := strings.TrimSpace(o.NextStep)
	return next == "" || strings.EqualFold(next, "complete")
}

// optionFieldRe extracts one packed key/value field. Authors write options
// as `ans: Dog, result: Wrong, next_step: remedial_frame_1, feedback: ...`
// with inconsistent casing, separators, and stray quoting, so matching is
// deliberately forgiving.
var optionFieldRe = map[string]*regexp.Regexp{
	"ans":       regexp.MustCompile(`(?is)ans\s*[:=]\s*(.*?)(,|$)`),
	"result":    regexp.MustCompile(`(?is)result\s*[:=]\s*(.*?)(,|$)`),
	"next_step": regexp.MustCompile(`(?is)next_step\s*[:=]\s*(.*?)(,|$)`),
	"feedback":  regexp.MustCompile(`(?is)feedback\s*[:=]\s*(.*?)(,|$)`),
}

// ParseOption decodes a packed option string. Missing fields stay empty.
func ParseOption(raw string) Option {
	field := func(key string) string {
		m := optionFieldRe[key].FindStringSubmatch(raw)
		if m == nil {
			return ""
		}
		return strings.Trim(m[1], " \"{}")
	}
	return Option{
		Answer:   field("ans"),
		Result:   field("result"),
		NextStep: field("next_step"),
		Feedback: field("feedback"),
	}
}
