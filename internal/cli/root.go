// Package cli implements the adaptive command line tool: inspect data shapes,
// preview strategy decisions, and explore the selectors interactively.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adaptive",
	Short: "Inspect data shapes and preview adaptive presentation decisions",
	Long: `adaptive analyzes structured data and decides how it should be laid
out for a given device, screen width, and interaction style.

Feed it a JSON sample or an OpenAPI schema to see the derived analysis, or ask
for a concrete layout/expansion strategy for a simulated device.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(strategyCmd)
	rootCmd.AddCommand(interactiveCmd)
}
