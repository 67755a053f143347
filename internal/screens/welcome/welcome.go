package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bloompath/internal/router"
	"github.com/abhisek/bloompath/internal/screen"
	sess "github.com/abhisek/bloompath/internal/session"
	"github.com/abhisek/bloompath/internal/ui/components"
	"github.com/abhisek/bloompath/internal/ui/layout"
	"github.com/abhisek/bloompath/internal/ui/theme"
)

// field indices for the login form.
const (
	fieldName = iota
	fieldAge
	fieldGender
	fieldCount
)

var genderChoices = []string{"", "female", "male", "other"}

type loginDoneMsg struct {
	Learner *sess.Learner
	Err     error
}

// WelcomeScreen is the login form shown at startup. It collects the
// learner profile and hands a logged-in learner to the home screen.
type WelcomeScreen struct {
	manager     *sess.Manager
	homeFactory func(*sess.Learner) screen.Screen

	nameInput components.TextInput
	ageInput  components.TextInput
	gender    int
	focus     int
	errMsg    string
	busy      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the login screen. homeFactory builds the screen shown after
// a successful login.
func New(manager *sess.Manager, homeFactory func(*sess.Learner) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		manager:     manager,
		homeFactory: homeFactory,
		nameInput:   components.NewTextInput("Your name...", false, 30),
		ageInput:    components.NewTextInput("Age", true, 3),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.nameInput.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		w.busy = false
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		home := w.homeFactory(msg.Learner)
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }

	case tea.KeyMsg:
		if w.busy {
			return w, nil
		}
		switch msg.String() {
		case "tab", "down":
			w.focus = (w.focus + 1) % fieldCount
			return w, nil
		case "shift+tab", "up":
			w.focus = (w.focus + fieldCount - 1) % fieldCount
			return w, nil
		case "left":
			if w.focus == fieldGender && w.gender > 0 {
				w.gender--
			}
			return w, nil
		case "right":
			if w.focus == fieldGender && w.gender < len(genderChoices)-1 {
				w.gender++
			}
			return w, nil
		case "enter":
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	switch w.focus {
	case fieldName:
		w.nameInput, cmd = w.nameInput.Update(msg)
	case fieldAge:
		w.ageInput, cmd = w.ageInput.Update(msg)
	}
	return w, cmd
}

// submit validates the form and logs the learner in.
func (w *WelcomeScreen) submit() tea.Cmd {
	profile := sess.Profile{
		Name:   strings.TrimSpace(w.nameInput.Value()),
		Gender: genderChoices[w.gender],
	}
	if age, err := w.ageInput.NumericValue(); err == nil {
		profile.Age = age
	}

	if err := profile.Validate(); err != nil {
		w.nameInput.Submit(profile.Name != "")
		w.ageInput.Submit(profile.Age >= 0 && profile.Age <= 120)
		w.errMsg = err.Error()
		return nil
	}

	w.errMsg = ""
	w.busy = true
	manager := w.manager
	return func() tea.Msg {
		learner, err := manager.Login(context.Background(), profile)
		return loginDoneMsg{Learner: learner, Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("Learn it. Practice it. Master it."))
	sections = append(sections, "")

	sections = append(sections, w.renderField("Name", w.nameInput.View(), w.focus == fieldName))
	sections = append(sections, w.renderField("Age", w.ageInput.View(), w.focus == fieldAge))
	sections = append(sections, w.renderField("Gender", w.renderGender(), w.focus == fieldGender))

	if w.busy {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("logging in..."))
	}
	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderField(label, value string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(8)
	if focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(label) + "  " + value
}

func (w *WelcomeScreen) renderGender() string {
	var parts []string
	for i, g := range genderChoices {
		label := g
		if label == "" {
			label = "skip"
		}
		if i == w.gender {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}
