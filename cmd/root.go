// Package cmd contains the CLI commands for the fmlint application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// cfgFile holds the global --config flag state.
var cfgFile string

// verbose holds the global --verbose flag state.
var verbose bool

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command instance with all subcommands
// attached. This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmlint",
		Short: "Validate frontmatter metadata across a Markdown guidance corpus",
		Long: "fmlint checks the metadata block of every Markdown document under a\n" +
			"content root against a fixed field schema and reports per-file and\n" +
			"aggregate results. A non-zero exit code means at least one document\n" +
			"failed validation, which makes the tool suitable as a CI gate.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: fmlint.yaml in the working directory)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a status line for valid files too")

	cmd.AddCommand(NewValidateCmd(defaultRunnerFactory))
	cmd.AddCommand(NewRulesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
