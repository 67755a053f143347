// Package conceptmap lists every concept with its prerequisite state,
// current Bloom level, and mastery.
package conceptmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/conceptgraph"
	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/layout"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// conceptState is the display state of one concept row.
type conceptState int

const (
	stateLocked conceptState = iota
	stateReady
	stateInProgress
	stateMastered
)

type row struct {
	concept conceptgraph.Concept
	state   conceptState
	level   string
	depth   int
}

// ConceptMapScreen shows the learner's position in the concept graph.
type ConceptMapScreen struct {
	learner  *sess.Learner
	rows     []row
	selected int
}

var _ screen.Screen = (*ConceptMapScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptMapScreen)(nil)

// New creates the concept map screen.
func New(learner *sess.Learner) *ConceptMapScreen {
	s := &ConceptMapScreen{learner: learner}
	s.rebuild()
	return s
}

// rebuild derives the rows from the current mastery state, in the graph's
// declared order with prerequisite depth for indentation.
func (s *ConceptMapScreen) rebuild() {
	st := s.learner.Practice.Store
	graph := st.Graph()
	mastered := st.MasteredSet()

	depth := make(map[string]int)
	for _, c := range graph.TopologicalOrder() {
		d := 0
		for _, p := range c.Prerequisites {
			if depth[p]+1 > d {
				d = depth[p] + 1
			}
		}
		depth[c.ID] = d
	}

	s.rows = s.rows[:0]
	for _, c := range graph.Concepts() {
		r := row{concept: c, depth: depth[c.ID]}
		rec, _ := st.Peek(c.ID)
		switch {
		case mastered[c.ID]:
			r.state = stateMastered
		case !graph.IsUnlocked(c.ID, mastered):
			r.state = stateLocked
		case rec != nil && rec.Attempts > 0:
			r.state = stateInProgress
			r.level = string(rec.Level)
		default:
			r.state = stateReady
		}
		s.rows = append(s.rows, r)
	}
}

func (s *ConceptMapScreen) Init() tea.Cmd {
	return nil
}

func (s *ConceptMapScreen) Title() string {
	return "Concept Map"
}

// Learner exposes the logged-in learner for the header.
func (s *ConceptMapScreen) Learner() *sess.Learner {
	return s.learner
}

func (s *ConceptMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConceptMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *ConceptMapScreen) View(width, height int) string {
	var b strings.Builder

	for i, r := range s.rows {
		indent := strings.Repeat("  ", r.depth)

		var marker, label string
		style := theme.Unselected
		switch r.state {
		case stateMastered:
			marker = "●"
			label = "mastered"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case stateInProgress:
			marker = "◐"
			label = r.level
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		case stateReady:
			marker = "○"
			label = "ready"
		case stateLocked:
			marker = "◇"
			label = "locked"
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		line := fmt.Sprintf("%s%s %s", indent, marker, r.concept.ID)
		if label != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  · " + label)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
			style = style.Bold(true)
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}

	// Detail card for the selected concept.
	if s.selected < len(s.rows) {
		c := s.rows[s.selected].concept
		detail := fmt.Sprintf("Levels: %s", joinLevels(c))
		if len(c.Prerequisites) > 0 {
			detail += "\nRequires: " + strings.Join(c.Prerequisites, ", ")
		}
		b.WriteString("\n")
		b.WriteString(theme.Card.Render(detail))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func joinLevels(c conceptgraph.Concept) string {
	parts := make([]string, len(c.BloomLevels))
	for i, l := range c.BloomLevels {
		parts[i] = string(l)
	}
	return strings.Join(parts, " → ")
}
