package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	"github.com/abhisek/bloompath/internal/screens/conceptmap"
	"github.com/abhisek/bloompath/internal/screens/history"
	"github.com/abhisek/bloompath/internal/screens/learn"
	"github.com/abhisek/bloompath/internal/screens/practice"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/components"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// HomeScreen is the hub after login: learning, practice, and progress.
type HomeScreen struct {
	learner *sess.Learner
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for a logged-in learner.
func New(learner *sess.Learner) *HomeScreen {
	h := &HomeScreen{learner: learner}
	h.menu = components.NewMenu(h.buildMenu())
	return h
}

// buildMenu assembles the menu. Practice stays disabled until every main
// learning frame is completed.
func (h *HomeScreen) buildMenu() []components.MenuItem {
	learner := h.learner
	return []components.MenuItem{
		{Label: "LEARN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(learner)}
			}
		}},
		{Label: "PRACTICE", Disabled: !learner.PracticeUnlocked(), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(learner)}
			}
		}},
		{Label: "CONCEPT MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: conceptmap.New(learner)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(learner)}
			}
		}},
		{Label: "LOG OUT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The practice gate may have opened while the learn screen was up;
	// rebuild so the menu reflects it, keeping the cursor position.
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildMenu())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sum := h.learner.BuildSummary()

	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Hello, %s!", h.learner.Profile.Name))
	sections = append(sections, greeting)
	sections = append(sections, "")

	barWidth := width / 2
	if barWidth > 48 {
		barWidth = 48
	}

	var learnPct float64
	if sum.LearningTotal > 0 {
		learnPct = float64(sum.LearningDone) / float64(sum.LearningTotal)
	}
	learnBar := components.NewProgressBar("Learning", learnPct, true, barWidth)
	sections = append(sections, learnBar.View())

	var masteryPct float64
	if sum.TotalConcepts > 0 {
		masteryPct = float64(sum.MasteredCount) / float64(sum.TotalConcepts)
	}
	masteryBar := components.NewProgressBar("Mastery ", masteryPct, true, barWidth)
	sections = append(sections, masteryBar.View())

	if !h.learner.PracticeUnlocked() {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Finish the learning frames to unlock practice."))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Learner exposes the logged-in learner for the header.
func (h *HomeScreen) Learner() *sess.Learner {
	return h.learner
}
