// Package learn renders the guided learning walk: main frames with a
// review question each, and remedial detours after wrong answers.
package learn

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/frames"
	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/components"
	"github.com/abhisek/bloompath/internal/ui/layout"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// phase is the learn screen's display state.
type phase int

const (
	phaseFrame    phase = iota // frame content + question
	phaseFeedback              // option feedback after an answer
	phaseRemedial              // remedial detour frame
	phaseDone                  // all main frames complete
)

// LearnScreen walks the learner through the course frames.
type LearnScreen struct {
	learner *sess.Learner
	phase   phase
	choice  components.MultiChoice
	result  frames.AnswerResult
	errMsg  string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates the learn screen.
func New(learner *sess.Learner) *LearnScreen {
	s := &LearnScreen{learner: learner}
	if learner.Learning.Complete() {
		s.phase = phaseDone
		return s
	}
	s.loadFrame()
	return s
}

// loadFrame rebuilds the option selector for the current frame.
func (s *LearnScreen) loadFrame() {
	frame, ok := s.learner.Learning.Current()
	if !ok {
		s.phase = phaseDone
		return
	}

	answers := make([]string, len(frame.Options))
	correct := -1
	for i, opt := range frame.Options {
		answers[i] = opt.Answer
		if correct < 0 && opt.IsCorrect() {
			correct = i
		}
	}
	s.choice = components.NewMultiChoice(frame.Question, answers, correct)
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

// Learner exposes the logged-in learner for the header.
func (s *LearnScreen) Learner() *sess.Learner {
	return s.learner
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback, phaseRemedial:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseFrame:
		return s.updateFrame(kmsg)
	case phaseFeedback:
		return s.advanceFromFeedback()
	case phaseRemedial:
		s.learner.Learning.ReturnToMain()
		s.phase = phaseFrame
		s.loadFrame()
		return s, nil
	}
	return s, nil
}

func (s *LearnScreen) updateFrame(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if _, ok := s.learner.Learning.Current(); !ok {
		s.phase = phaseDone
		return s, nil
	}

	s.choice, _ = s.choice.Update(kmsg)
	if !s.choice.Submitted {
		return s, nil
	}

	res, err := s.learner.AnswerFrame(s.choice.ChosenIndex)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.result = res
	s.phase = phaseFeedback
	return s, nil
}

// advanceFromFeedback moves on after the learner has read the feedback.
func (s *LearnScreen) advanceFromFeedback() (screen.Screen, tea.Cmd) {
	if !s.result.Correct {
		s.phase = phaseRemedial
		return s, nil
	}

	if err := s.learner.AdvanceFrame(context.Background()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.learner.Learning.Complete() {
		s.phase = phaseDone
	} else {
		s.phase = phaseFrame
		s.loadFrame()
	}
	return s, nil
}

func (s *LearnScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}

	switch s.phase {
	case phaseDone:
		return s.renderDone(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	}
	return s.renderFrame(width, height)
}

func (s *LearnScreen) renderFrame(width, height int) string {
	frame, ok := s.learner.Learning.Current()
	if !ok {
		return s.renderDone(width, height)
	}

	contentWidth := width - 12
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 20 {
		contentWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(contentWidth)

	var sections []string

	heading := theme.Title.Render(frame.Heading)
	if frame.Source == frames.SourceRemedial {
		heading = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("↺ " + frame.Heading)
	}
	sections = append(sections, heading)

	if tr := s.learner.Learning; !tr.InRemedial() {
		done := tr.CompletedMain()
		total := len(tr.Course().MainFrames())
		sections = append(sections, theme.Subtitle.Render(
			fmt.Sprintf("frame %d of %d", done+1, total)))
	}
	sections = append(sections, "")

	if frame.Content != "" {
		sections = append(sections, wrap.Foreground(theme.Text).Render(frame.Content))
	}
	if frame.Scenario != "" {
		sections = append(sections, "")
		sections = append(sections, wrap.Foreground(theme.Secondary).Italic(true).Render(frame.Scenario))
	}
	if frame.KeyFocus != "" {
		sections = append(sections, "")
		sections = append(sections, wrap.Foreground(theme.Accent).Render("Key idea: "+frame.KeyFocus))
	}
	if frame.Notes != "" {
		sections = append(sections, wrap.Foreground(theme.TextDim).Render(frame.Notes))
	}

	if s.phase == phaseFrame && len(frame.Options) > 0 {
		sections = append(sections, "")
		sections = append(sections, s.choice.View())
	} else if s.phase == phaseRemedial || frame.Source == frames.SourceRemedial {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key to return and try again"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LearnScreen) renderFeedback(width, height int) string {
	var sections []string

	if s.result.Correct {
		sections = append(sections, theme.Correct.Render("Correct!"))
	} else {
		sections = append(sections, theme.Incorrect.Render("Not quite"))
	}
	if s.result.Feedback != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Width(min(width-12, 64)).
			Foreground(theme.Text).
			Render(s.result.Feedback))
	}
	sections = append(sections, "")
	if s.result.Correct {
		sections = append(sections, theme.Hint.Render("press any key to continue"))
	} else {
		sections = append(sections, theme.Hint.Render("press any key for a quick review"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LearnScreen) renderDone(width, height int) string {
	content := strings.Join([]string{
		theme.Correct.Render("Learning complete!"),
		"",
		theme.Body.Render("Every frame is done. Practice is now unlocked."),
		"",
		theme.Hint.Render("press Esc to head back"),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
