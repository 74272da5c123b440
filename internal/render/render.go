package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mistweaverco/skeleton/internal/config"
	"github.com/mistweaverco/skeleton/internal/view"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Options controls a single Render call
type Options struct {
	Format config.Format
	Width  int
	Height int
	// Renderer styles text output; nil renders without escape codes
	Renderer *lipgloss.Renderer
	// Styled passes markdown through glamour
	Styled bool
	// MarkdownStyle names the glamour style; empty picks one from stdout
	MarkdownStyle string
	// Fragment renders html without the surrounding document
	Fragment bool
}

// Render writes root to w in the requested format
func Render(w io.Writer, root *view.Node, opts Options) error {
	switch opts.Format {
	case config.FormatText, "":
		out := NewTerminal(opts.Renderer, opts.Width, opts.Height).Render(root)
		_, err := io.WriteString(w, out+"\n")
		return err
	case config.FormatHTML:
		return WriteHTML(w, root, !opts.Fragment)
	case config.FormatMarkdown:
		out := Markdown(root)
		if opts.Styled {
			styled, err := StyleMarkdown(out, opts.Width, opts.MarkdownStyle)
			if err != nil {
				return err
			}
			out = styled
		}
		_, err := io.WriteString(w, out)
		return err
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(root); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}
