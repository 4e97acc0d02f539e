package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alguides/fmlint/internal/config"
	"github.com/alguides/fmlint/internal/report"
)

// NewRulesCmd creates the rules command, which prints the rule tables
// that a validation run would enforce after config merging.
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rules",
		Short:        "Show the active validation rule tables",
		SilenceUsage: true,
		Example: `  # Show the rules as YAML
  fmlint rules

  # Show the rules as JSON
  fmlint rules --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			rs := cfg.RuleSet()
			if report.Mode(cfg.Format) == report.ModeJSON {
				renderer := report.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), report.ModeJSON)
				renderer.JSON(rs)
				return nil
			}

			data, err := yaml.Marshal(rs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: text, json")

	return cmd
}
