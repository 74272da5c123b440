package skeleton

import (
	"fmt"
	"os"

	"github.com/mistweaverco/skeleton/internal/config"
	"github.com/mistweaverco/skeleton/internal/lib/version"
	"github.com/mistweaverco/skeleton/internal/ui"
	"github.com/spf13/cobra"
)

var cfg = config.NewConfig(config.Config{
	Flags: config.ConfigFlags{
		Color:  config.ColorModeAuto,
		Format: config.FormatText,
	},
})

var rootCmd = &cobra.Command{
	Use:          "skeleton",
	Short:        "Skeleton is a starter app that says hello",
	Long:         "Skeleton is a starter application showing a single static view. Run it in a terminal for the full-screen view, or use the render command to print it as text, HTML, markdown or JSON.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Flags.Version {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.VERSION)
			return err
		}
		if isInteractiveFn() {
			return uiShowFn(newRenderer(os.Stdout))
		}
		// Not attached to a terminal: print the view once instead
		flags := cfg.GetConfigFlags()
		flags.Format = config.FormatText
		flags.Output = ""
		return runRender(cmd.OutOrStdout(), flags)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		osExit(1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.PersistentFlags().BoolVar(&cfg.Flags.Version, "version", false, "version")
	rootCmd.PersistentFlags().Var(&cfg.Flags.Color, "color", "when to use colors: auto, always or never")
	cobra.CheckErr(rootCmd.RegisterFlagCompletionFunc("color", colorCompletion))
}

// osExit is a variable to allow overriding in tests
var osExit = os.Exit

// indirections for testability
var (
	isInteractiveFn = isInteractive
	uiShowFn        = ui.Show
)
