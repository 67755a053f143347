package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	"github.com/abhisek/bloompath/internal/screens/home"
	"github.com/abhisek/bloompath/internal/screens/welcome"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/layout"
)

// learnerProvider is implemented by screens that carry a logged-in
// learner, so the header can show who it is.
type learnerProvider interface {
	Learner() *sess.Learner
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the login screen.
func newAppModel(manager *sess.Manager) AppModel {
	welcomeScreen := welcome.New(manager, func(l *sess.Learner) screen.Screen {
		return home.New(l)
	})
	return AppModel{
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var learnerName string
	var mastered, total int
	if lp, ok := active.(learnerProvider); ok {
		if l := lp.Learner(); l != nil {
			sum := l.BuildSummary()
			learnerName = l.Profile.Name
			mastered = sum.MasteredCount
			total = sum.TotalConcepts
		}
	}

	header := layout.RenderHeader(title, learnerName, mastered, total, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(manager *sess.Manager) error {
	p := tea.NewProgram(newAppModel(manager))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
