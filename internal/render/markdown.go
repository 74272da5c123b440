package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mistweaverco/skeleton/internal/view"
	"github.com/muesli/termenv"
)

const defaultWidth = 80

// DarkStyle is the glamour style used when colors are forced
const DarkStyle = "dark"

// Markdown renders the tree as a markdown document, one block per text node
func Markdown(root *view.Node) string {
	var blocks []string
	root.Walk(func(n *view.Node) bool {
		switch n.Kind {
		case view.KindGlyph:
			blocks = append(blocks, n.Text)
		case view.KindHeading:
			level, _ := strconv.Atoi(strings.TrimPrefix(n.Tag(), "h"))
			blocks = append(blocks, strings.Repeat("#", level)+" "+n.Text)
		case view.KindCaption:
			blocks = append(blocks, "_"+n.Text+"_")
		}
		return true
	})
	return strings.Join(blocks, "\n\n") + "\n"
}

// StyleMarkdown renders markdown for the terminal with glamour.
// An empty style lets glamour pick one from stdout; a named standard
// style ("dark", "light") always emits colors.
func StyleMarkdown(markdown string, width int, style string) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts,
			glamour.WithStandardStyle(style),
			glamour.WithColorProfile(termenv.TrueColor),
		)
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return rendered, nil
}
