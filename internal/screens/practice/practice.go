// Package practice runs the adaptive question loop: eligible concept,
// Bloom-levelled question, answer, feedback, and the occasional redirect.
package practice

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/bank"
	"github.com/abhisek/bloompath/internal/engine"
	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/components"
	"github.com/abhisek/bloompath/internal/ui/layout"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// phase is the practice screen's display state.
type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseComplete
)

// PracticeScreen drives one learner's practice loop.
type PracticeScreen struct {
	learner  *sess.Learner
	phase    phase
	question *bank.Question
	choice   components.MultiChoice
	chosen   string
	outcome  engine.Outcome
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen and selects the first question.
func New(learner *sess.Learner) *PracticeScreen {
	s := &PracticeScreen{learner: learner}
	s.nextQuestion()
	return s
}

// nextQuestion pulls the next question from the engine. Selection can
// return nil while a concept tips into mastery by exhaustion, so it is
// retried until a question arrives or everything is mastered.
func (s *PracticeScreen) nextQuestion() {
	practice := s.learner.Practice
	for {
		if q := practice.NextQuestion(); q != nil {
			s.question = q
			s.choice = components.NewMultiChoice(q.Text, q.Options, correctIndex(q))
			s.phase = phaseQuestion
			return
		}
		if practice.Complete() {
			s.question = nil
			s.phase = phaseComplete
			return
		}
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// Learner exposes the logged-in learner for the header.
func (s *PracticeScreen) Learner() *sess.Learner {
	return s.learner
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "Practice again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseQuestion:
		return s.updateQuestion(kmsg)
	case phaseFeedback:
		s.nextQuestion()
		return s, nil
	case phaseComplete:
		if kmsg.String() == "r" || kmsg.String() == "R" {
			s.learner.ResetPractice(context.Background())
			s.nextQuestion()
		}
		return s, nil
	}
	return s, nil
}

func (s *PracticeScreen) updateQuestion(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.question == nil {
		return s, nil
	}

	s.choice, _ = s.choice.Update(kmsg)
	if !s.choice.Submitted {
		return s, nil
	}

	s.chosen = s.question.Options[s.choice.ChosenIndex]
	out, err := s.learner.SubmitAnswer(context.Background(), s.chosen)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.outcome = out
	s.phase = phaseFeedback
	return s, nil
}

// correctIndex locates the correct answer within the question's options.
func correctIndex(q *bank.Question) int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}

	switch s.phase {
	case phaseComplete:
		return s.renderComplete(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *PracticeScreen) renderQuestion(width, height int) string {
	q := s.question
	if q == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("selecting a question..."))
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Concept: %s", q.ConceptTag))

	sum := s.learner.BuildSummary()
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level: %s   Answered: %d   Correct: %d",
			q.BloomLevel, sum.QuestionsServed, sum.Correct))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}

func (s *PracticeScreen) renderFeedback(width, height int) string {
	var sections []string

	// The submitted choice view highlights the correct answer in green
	// and a wrong pick in red.
	sections = append(sections, s.choice.View())

	if s.outcome.Correct {
		sections = append(sections, theme.Correct.Render("Correct!"))
		if s.outcome.Mastered {
			sections = append(sections, "")
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render(fmt.Sprintf("★ %q mastered!", s.outcome.ConceptID)))
		} else if s.outcome.NewLevel != "" {
			sections = append(sections, "")
			sections = append(sections, theme.Subtitle.Render(
				fmt.Sprintf("moving up to %s", s.outcome.NewLevel)))
		}
	} else {
		sections = append(sections, theme.Incorrect.Render("Not quite"))
		sections = append(sections, theme.Subtitle.Render("back to basics on this concept"))
	}

	if s.outcome.RedirectQuestionID != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("taking a detour based on that answer..."))
	}

	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("press any key for the next question"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PracticeScreen) renderComplete(width, height int) string {
	sum := s.learner.BuildSummary()

	var accuracy string
	if sum.QuestionsServed > 0 {
		accuracy = fmt.Sprintf("%d%%", int(sum.Accuracy*100))
	} else {
		accuracy = "n/a"
	}

	content := strings.Join([]string{
		theme.Correct.Render("All concepts mastered!"),
		"",
		theme.Body.Render(fmt.Sprintf("Questions answered: %d", sum.QuestionsServed)),
		theme.Body.Render(fmt.Sprintf("Correct: %d (%s)", sum.Correct, accuracy)),
		theme.Body.Render(fmt.Sprintf("Concepts mastered: %d of %d", sum.MasteredCount, sum.TotalConcepts)),
		"",
		theme.Hint.Render("press R to practice again, Esc to head back"),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
