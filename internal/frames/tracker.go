package frames

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCourseComplete signals an answer or advance on a finished course.
var ErrCourseComplete = errors.New("frames: course already complete")

// FrameLog tracks one frame's completion state for a learner.
type FrameLog struct {
	Completed bool `json:"completed"`
	Attempts  int  `json:"attempts"`
}

// AnswerResult reports the effect of choosing an option.
type AnswerResult struct {
	Correct  bool
	Feedback string
	// RemedialFrame is set when an incorrect choice branched to a
	// remedial frame.
	RemedialFrame string
	// CourseComplete is set when a correct choice's next step ends the
	// course.
	CourseComplete bool
}

// Tracker walks one learner through a course: current frame, active
// remedial branch, and per-frame completion log. Owned by a single
// learner session.
type Tracker struct {
	course      *Course
	current     string
	remedial    string
	pendingNext string
	complete    bool
	log         map[string]*FrameLog
}

// NewTracker starts a walk at the course's first main frame.
func NewTracker(course *Course) *Tracker {
	return &Tracker{
		course:  course,
		current: course.Start(),
		log:     make(map[string]*FrameLog),
	}
}

// Current returns the frame to display: the active remedial frame if a
// branch is in progress, the current main frame otherwise.
func (t *Tracker) Current() (Frame, bool) {
	if t.complete {
		return Frame{}, false
	}
	name := t.current
	if t.remedial != "" {
		name = t.remedial
	}
	return t.course.Get(name)
}

// Course returns the course this tracker walks.
func (t *Tracker) Course() *Course {
	return t.course
}

// InRemedial reports whether a remedial branch is active.
func (t *Tracker) InRemedial() bool {
	return t.remedial != ""
}

// Complete reports whether every main frame has been completed.
func (t *Tracker) Complete() bool {
	return t.complete
}

// Answer applies the learner's chosen option on the current main frame.
// A correct option stages its next step for Advance; an incorrect option
// activates the remedial branch named by the option.
func (t *Tracker) Answer(optionIndex int) (AnswerResult, error) {
	if t.complete {
		return AnswerResult{}, ErrCourseComplete
	}
	frame, ok := t.course.Get(t.current)
	if !ok {
		return AnswerResult{}, fmt.Errorf("frames: current frame %q not found", t.current)
	}
	if optionIndex < 0 || optionIndex >= len(frame.Options) {
		return AnswerResult{}, fmt.Errorf("frames: option index %d out of range", optionIndex)
	}

	opt := frame.Options[optionIndex]
	res := AnswerResult{Correct: opt.IsCorrect(), Feedback: opt.Feedback}

	if !res.Correct {
		t.remedial = opt.NextStep
		res.RemedialFrame = opt.NextStep
		return res, nil
	}

	t.pendingNext = strings.TrimSpace(opt.NextStep)
	if opt.IsTerminal() {
		res.CourseComplete = true
	}
	return res, nil
}

// Advance moves past the current main frame after a correct answer,
// marking it completed. If the staged next step is terminal, the course
// completes.
func (t *Tracker) Advance() error {
	if t.complete {
		return ErrCourseComplete
	}

	fl := t.frameLog(t.current)
	fl.Completed = true
	fl.Attempts++

	next := t.pendingNext
	t.pendingNext = ""
	if next == "" || strings.EqualFold(next, "complete") {
		t.complete = true
		return nil
	}
	if _, ok := t.course.Get(next); !ok {
		return fmt.Errorf("frames: next frame %q not found", next)
	}
	t.current = next
	return nil
}

// ReturnToMain leaves the remedial branch and re-presents the owning main
// frame so the learner can try its question again.
func (t *Tracker) ReturnToMain() {
	t.remedial = ""
}

// CompletedMain returns the number of completed main frames.
func (t *Tracker) CompletedMain() int {
	n := 0
	for _, name := range t.course.MainFrames() {
		if fl, ok := t.log[name]; ok && fl.Completed {
			n++
		}
	}
	return n
}

// Progress returns completed main frames as a fraction of the total,
// capped at 1.
func (t *Tracker) Progress() float64 {
	total := len(t.course.MainFrames())
	if total == 0 {
		return 0
	}
	p := float64(t.CompletedMain()) / float64(total)
	if p > 1 {
		return 1
	}
	return p
}

// SnapshotData exports the learning log for persistence.
func (t *Tracker) SnapshotData() map[string]FrameLog {
	out := make(map[string]FrameLog, len(t.log))
	for name, fl := range t.log {
		out[name] = *fl
	}
	return out
}

// LoadSnapshot restores the learning log and repositions the walk at the
// first incomplete main frame.
func (t *Tracker) LoadSnapshot(data map[string]FrameLog) {
	t.log = make(map[string]*FrameLog, len(data))
	for name, fl := range data {
		copied := fl
		t.log[name] = &copied
	}

	t.remedial = ""
	t.pendingNext = ""
	t.complete = true
	for _, name := range t.course.MainFrames() {
		if fl, ok := t.log[name]; !ok || !fl.Completed {
			t.current = name
			t.complete = false
			return
		}
	}
}

func (t *Tracker) frameLog(name string) *FrameLog {
	if fl, ok := t.log[name]; ok {
		return fl
	}
	fl := &FrameLog{}
	t.log[name] = fl
	return fl
}
