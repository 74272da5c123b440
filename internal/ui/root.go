package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mistweaverco/skeleton/internal/lib/version"
	"github.com/mistweaverco/skeleton/internal/modal"
	"github.com/mistweaverco/skeleton/internal/render"
	"github.com/mistweaverco/skeleton/internal/view"
)

type keyMap struct {
	Quit  key.Binding
	About key.Binding
}

var keys = keyMap{
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	About: key.NewBinding(key.WithKeys("?")),
}

// model hosts the App view full screen
type model struct {
	root          *view.Node
	renderer      *lipgloss.Renderer
	width, height int
	keys          keyMap
	about         modal.Modal
	quitting      bool
}

func initialModel(r *lipgloss.Renderer) model {
	return model{
		root:     view.App(),
		renderer: r,
		keys:     keys,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.about, _ = m.about.Update(msg)
		return m, nil
	case tea.KeyMsg:
		if m.about.Open() && msg.Type != tea.KeyCtrlC {
			m.about, _ = m.about.Update(msg)
			return m, nil
		}
		if key.Matches(msg, m.keys.About) {
			m.about = modal.New("About", aboutMessage()).WithSize(m.width, m.height)
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.about.Open() {
		return m.about.View(m.renderer)
	}
	return render.NewTerminal(m.renderer, m.width, m.height).Render(m.root)
}

func aboutMessage() string {
	return fmt.Sprintf("skeleton %s\n\n%s", version.VERSION, view.Tagline)
}

// programRunner starts a Bubble Tea program; replaced in tests
var programRunner = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// Show runs the interactive view until the user quits, styling with r.
// A nil renderer uses lipgloss' default for stdout.
func Show(r *lipgloss.Renderer) error {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	_, err := programRunner(initialModel(r), tea.WithAltScreen())
	return err
}
