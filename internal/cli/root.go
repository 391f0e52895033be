// Package cli provides the docmerge command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the docmerge command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docmerge",
		Short: "Docstring inheritance tools",
		Long: "docmerge parses NumPy-style and Google-style docstrings, merges child\n" +
			"docstrings with their ancestors section by section, and renders the result.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newApplyCommand())

	return rootCmd
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
