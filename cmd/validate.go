package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alguides/fmlint/internal/audit"
	"github.com/alguides/fmlint/internal/config"
	"github.com/alguides/fmlint/internal/fsys"
	"github.com/alguides/fmlint/internal/lock"
	"github.com/alguides/fmlint/internal/report"
	"github.com/alguides/fmlint/internal/rules"
	"github.com/alguides/fmlint/internal/suggest"
)

// Runner abstracts the audit service for command wiring and tests.
type Runner interface {
	Run(ctx context.Context) (*audit.RunResult, error)
}

// RunnerFactory builds a Runner for a content root and rule set.
type RunnerFactory func(root string, rs rules.RuleSet) Runner

// defaultRunnerFactory wires the filesystem adapters into the audit
// service.
func defaultRunnerFactory(root string, rs rules.RuleSet) Runner {
	return audit.NewService(
		&fsys.OSLister{Root: root},
		&fsys.OSContentReader{Root: root},
		rs,
	)
}

// NewValidateCmd creates the validate command with the given factory.
func NewValidateCmd(factory RunnerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate [path]",
		Short:        "Validate frontmatter in all Markdown files under a root",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: `  # Validate the default content root
  fmlint validate

  # Validate a specific directory, printing valid files too
  fmlint validate ./areas --verbose

  # Print suggested frontmatter for failing files
  fmlint validate --fix

  # Machine-readable output for CI
  fmlint validate --format json

  # Also write the JSON report to a file
  fmlint validate --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			root := cfg.Root
			if len(args) > 0 {
				root = args[0]
			}
			return runValidate(cmd, factory, cfg, root)
		},
	}

	cmd.Flags().Bool("fix", false, "Print suggested frontmatter for failing files (never writes to sources)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: text, json")
	cmd.Flags().StringP("output", "o", "", "Write the JSON report to a file")
	cmd.Flags().String("root", config.DefaultRoot, "Content root to scan")

	return cmd
}

func runValidate(cmd *cobra.Command, factory RunnerFactory, cfg *config.Config, root string) error {
	runner := factory(root, cfg.RuleSet())
	result, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), report.Mode(cfg.Format))
	opts := report.Options{Verbose: cfg.Verbose}
	if cfg.Fix {
		opts.Suggest = suggest.Render
	}
	renderer.Run(result, opts)

	if cfg.Output != "" {
		if err := writeReportFile(cmd.Context(), cfg.Output, result); err != nil {
			return err
		}
	}

	if result.Summary.Invalid > 0 {
		return &ValidationFailedError{Invalid: result.Summary.Invalid}
	}
	return nil
}

// writeReportFile writes the JSON report to path under an advisory lock.
// Only the report file is written; source documents are never touched.
func writeReportFile(ctx context.Context, path string, result *audit.RunResult) error {
	l := lock.NewFromPath(path)
	if err := l.TryLock(ctx); err != nil {
		return err
	}
	defer func() { _ = l.Unlock() }()

	data, err := json.MarshalIndent(report.NewJSONRun(result), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
