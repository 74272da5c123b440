package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define key mappings
type keyMap struct {
	Close key.Binding
}

var keys = keyMap{
	Close: key.NewBinding(key.WithKeys("esc", "enter", "?")),
}

var borderColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

// Modal is a dismissable box drawn over the screen.
// The zero value is a closed modal.
type Modal struct {
	Title   string
	Message string
	width   int
	height  int
	keys    keyMap
}

func New(title, msg string) Modal {
	return Modal{
		Title:   title,
		Message: msg,
		keys:    keys,
	}
}

// WithSize returns a copy of the modal sized for the screen
func (m Modal) WithSize(width, height int) Modal {
	m.width = width
	m.height = height
	return m
}

// Open reports whether the modal has content to show
func (m Modal) Open() bool {
	return m.Message != ""
}

func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) {
			return Modal{}, nil // Returning an empty modal closes it.
		}
	}

	return m, nil
}

// View draws the modal centered on a screen of the last known size,
// using r for styling
func (m Modal) View(r *lipgloss.Renderer) string {
	if !m.Open() {
		return ""
	}

	lines := strings.Split(m.Message, "\n")
	if m.Title != "" {
		lines = append([]string{m.Title}, lines...)
	}
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}
	boxWidth += 4 // padding
	if m.width > 0 && boxWidth > m.width-2 {
		boxWidth = max(m.width-2, 1)
	}

	parts := make([]string, 0, 3)
	if m.Title != "" {
		parts = append(parts, r.NewStyle().Bold(true).Render(m.Title))
	}
	parts = append(parts, r.NewStyle().Width(boxWidth-4).Align(lipgloss.Center).Render(m.Message))
	parts = append(parts, r.NewStyle().Faint(true).MarginTop(1).Render("[esc] close"))

	box := r.NewStyle().
		Width(boxWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
