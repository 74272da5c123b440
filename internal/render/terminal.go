package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mistweaverco/skeleton/internal/view"
	"github.com/muesli/termenv"
)

var highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

// Terminal renders a display tree as styled terminal text.
// Width and Height describe the viewport; zero means unknown, in which
// case the content is not placed.
type Terminal struct {
	renderer *lipgloss.Renderer
	Width    int
	Height   int
}

// NewTerminal returns a Terminal drawing with r.
// A nil renderer produces plain output.
func NewTerminal(r *lipgloss.Renderer, width, height int) *Terminal {
	if r == nil {
		r = NewPlainRenderer(io.Discard)
	}
	return &Terminal{renderer: r, Width: width, Height: height}
}

// NewPlainRenderer returns a lipgloss renderer that never emits escape codes
func NewPlainRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// NewColorRenderer returns a lipgloss renderer that always emits colors,
// regardless of what w is connected to
func NewColorRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func (t *Terminal) Render(root *view.Node) string {
	if root == nil {
		return ""
	}
	return t.render(root)
}

func (t *Terminal) render(n *view.Node) string {
	style := t.style(n)
	if n.Kind != view.KindContainer {
		return style.Render(n.Text)
	}

	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		parts = append(parts, t.render(child))
	}

	align := lipgloss.Left
	if n.HasClass("text-center") {
		align = lipgloss.Center
	}
	block := style.Render(lipgloss.JoinVertical(align, parts...))

	if n.HasClass("place-items-center") && t.Width > 0 {
		height := lipgloss.Height(block)
		if n.HasClass("min-h-dvh") {
			height = max(height, t.Height)
		}
		block = t.renderer.Place(t.Width, height, lipgloss.Center, lipgloss.Center, block)
	}
	return block
}

// style maps the node's utility classes onto a lipgloss style.
// Classes without a terminal equivalent (font sizes, grid) are ignored.
func (t *Terminal) style(n *view.Node) lipgloss.Style {
	s := t.renderer.NewStyle()
	if n.Kind == view.KindHeading {
		s = s.Foreground(highlight)
	}
	for _, class := range n.Classes {
		switch {
		case class == "font-bold":
			s = s.Bold(true)
		case class == "italic":
			s = s.Italic(true)
		case class == "underline":
			s = s.Underline(true)
		case strings.HasPrefix(class, "opacity-"):
			if v, err := strconv.Atoi(strings.TrimPrefix(class, "opacity-")); err == nil && v < 100 {
				s = s.Faint(true)
			}
		case strings.HasPrefix(class, "mt-"):
			s = s.MarginTop(rows(strings.TrimPrefix(class, "mt-")))
		case strings.HasPrefix(class, "mb-"):
			s = s.MarginBottom(rows(strings.TrimPrefix(class, "mb-")))
		}
	}
	return s
}

// rows converts a spacing step (quarter rem) to terminal rows, rounding up
func rows(step string) int {
	v, err := strconv.Atoi(step)
	if err != nil || v <= 0 {
		return 0
	}
	return (v + 1) / 2
}

// Strip removes ANSI escape sequences so rendered output can be searched
func Strip(s string) string {
	return ansi.Strip(s)
}
