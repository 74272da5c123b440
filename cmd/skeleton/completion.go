package skeleton

import (
	"strings"

	"github.com/mistweaverco/skeleton/internal/config"
	"github.com/spf13/cobra"
)

// formatCompletion completes --format values
func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	completions := make([]string, 0, len(config.Formats))
	for _, format := range config.Formats {
		if strings.HasPrefix(string(format), toComplete) {
			completions = append(completions, string(format))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// colorCompletion completes --color values
func colorCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := []config.ColorMode{config.ColorModeAuto, config.ColorModeAlways, config.ColorModeNever}
	completions := make([]string, 0, len(modes))
	for _, mode := range modes {
		if strings.HasPrefix(string(mode), toComplete) {
			completions = append(completions, string(mode))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
