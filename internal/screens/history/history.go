// Package history shows this session's answer log and the learner's
// per-concept progress.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/components"
	"github.com/abhisek/bloompath/internal/ui/layout"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// maxEntries caps how many recent answers are listed.
const maxEntries = 15

// HistoryScreen displays the answer log and concept progress bars.
type HistoryScreen struct {
	learner *sess.Learner
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(learner *sess.Learner) *HistoryScreen {
	return &HistoryScreen{learner: learner}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// Learner exposes the logged-in learner for the header.
func (s *HistoryScreen) Learner() *sess.Learner {
	return s.learner
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, s.renderProgress(width))
	sections = append(sections, "")
	sections = append(sections, s.renderLog(width))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderProgress draws one bar per concept: position within its declared
// Bloom levels, full for mastered concepts.
func (s *HistoryScreen) renderProgress(width int) string {
	st := s.learner.Practice.Store
	graph := st.Graph()

	barWidth := width / 2
	if barWidth > 56 {
		barWidth = 56
	}

	labelWidth := 0
	for _, c := range graph.Concepts() {
		if len(c.ID) > labelWidth {
			labelWidth = len(c.ID)
		}
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Concept progress"))
	b.WriteString("\n\n")

	for _, c := range graph.Concepts() {
		var pct float64
		if st.IsMastered(c.ID) {
			pct = 1
		} else if rec, ok := st.Peek(c.ID); ok && rec.Level != bloom.None {
			if idx, ok := levelIndex(c.BloomLevels, rec.Level); ok {
				pct = float64(idx) / float64(len(c.BloomLevels))
			}
		}

		label := fmt.Sprintf("%-*s", labelWidth, c.ID)
		bar := components.NewProgressBar(label, pct, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens s to at most max runes, so multi-byte question text
// is never cut mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func levelIndex(levels []bloom.Level, l bloom.Level) (int, bool) {
	for i, candidate := range levels {
		if candidate == l {
			return i, true
		}
	}
	return 0, false
}

// renderLog lists the most recent answers, newest first.
func (s *HistoryScreen) renderLog(width int) string {
	entries := s.learner.Practice.History.Entries()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Recent answers"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("no answers yet this session"))
		return b.String()
	}

	textWidth := width/2 - 14
	if textWidth < 24 {
		textWidth = 24
	}

	start := len(entries) - maxEntries
	if start < 0 {
		start = 0
	}
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]

		mark := theme.Correct.Render("✓")
		if !e.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		text := truncate(e.QuestionText, textWidth)
		line := fmt.Sprintf("%s %s", mark, theme.Body.Render(text))
		line += theme.Hint.Render(fmt.Sprintf("  (%s)", e.ChosenAnswer))
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
