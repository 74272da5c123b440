package skeleton

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/mistweaverco/skeleton/internal/config"
	"github.com/mistweaverco/skeleton/internal/lib/files"
	"github.com/mistweaverco/skeleton/internal/render"
	"github.com/mistweaverco/skeleton/internal/view"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the view once",
	Long: `Render the view once and print it, or write it to a file.

Formats:
  text      the terminal view (default)
  html      a complete HTML document
  markdown  markdown, styled when printed to a color terminal
  json      the display tree`,
	Example: `  skeleton render
  skeleton render --format html --output public/index.html
  skeleton render -f html --fragment
  skeleton render -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout(), cfg.GetConfigFlags())
	},
}

func init() {
	renderCmd.Flags().VarP(&cfg.Flags.Format, "format", "f", "output format: text, html, markdown or json")
	cobra.CheckErr(renderCmd.RegisterFlagCompletionFunc("format", formatCompletion))
	renderCmd.Flags().StringVarP(&cfg.Flags.Output, "output", "o", "", "write to this file instead of stdout")
	renderCmd.Flags().BoolVar(&cfg.Flags.Force, "force", false, "replace the output file if it exists")
	renderCmd.Flags().IntVar(&cfg.Flags.Width, "width", 0, "viewport width for text output (default: terminal width)")
	renderCmd.Flags().IntVar(&cfg.Flags.Height, "height", 0, "viewport height for text output")
	renderCmd.Flags().BoolVar(&cfg.Flags.Fragment, "fragment", false, "html: write only the view element, without the document around it")
}

// confirmOverwriteFn asks whether an existing file may be replaced
var confirmOverwriteFn = confirmOverwrite

func confirmOverwrite(path string) (bool, error) {
	var replace bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Replace it?", path)).
		Affirmative("Replace").
		Negative("Keep").
		Value(&replace).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirming overwrite: %w", err)
	}
	return replace, nil
}

func runRender(stdout io.Writer, flags config.ConfigFlags) error {
	toFile := flags.Output != "" && flags.Output != "-"

	opts := render.Options{
		Format: flags.Format,
		Width:    flags.Width,
		Height:   flags.Height,
		Fragment: flags.Fragment,
	}
	if !toFile {
		if opts.Width == 0 && isTerminalFn() {
			opts.Width, _ = terminalSizeFn()
		}
		opts.Renderer = newRenderer(stdout)
		opts.Styled = shouldUseColors()
		if opts.Styled && !isTerminalFn() {
			// glamour would detect the pipe and drop the colors
			opts.MarkdownStyle = render.DarkStyle
		}
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, view.App(), opts); err != nil {
		return err
	}

	if !toFile {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	overwrite := flags.Force
	if !overwrite && files.FileExists(flags.Output) {
		if !isInteractiveFn() {
			return fmt.Errorf("%w: %s (use --force to replace it)", files.ErrExists, flags.Output)
		}
		replace, err := confirmOverwriteFn(flags.Output)
		if err != nil {
			return err
		}
		if !replace {
			log.Info("Keeping existing file", "path", flags.Output)
			return nil
		}
		overwrite = true
	}

	if err := files.WriteFile(flags.Output, buf.Bytes(), overwrite); err != nil {
		return err
	}
	slog.Debug("rendered view", "format", opts.Format, "path", flags.Output, "bytes", buf.Len())
	return nil
}
