package skeleton

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/mistweaverco/skeleton/internal/config"
	"github.com/mistweaverco/skeleton/internal/render"
)

// indirections for testability
var (
	isTerminalFn   = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
	isStdinTermFn  = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	terminalSizeFn = terminalSize
)

// isInteractive reports whether both stdin and stdout are terminals
func isInteractive() bool {
	return isTerminalFn() && isStdinTermFn()
}

// shouldUseColors determines if colors should be used based on color mode and TTY status
func shouldUseColors() bool {
	switch cfg.Flags.Color {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	case config.ColorModeAuto:
		fallthrough
	default:
		return isTerminalFn()
	}
}

// newRenderer returns the lipgloss renderer for output written to w
func newRenderer(w io.Writer) *lipgloss.Renderer {
	if !shouldUseColors() {
		return render.NewPlainRenderer(w)
	}
	if !isTerminalFn() {
		return render.NewColorRenderer(w)
	}
	return lipgloss.NewRenderer(w)
}

// terminalSize returns the size of the terminal on stdout, or zeros
func terminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 0, 0
	}
	return w, h
}
