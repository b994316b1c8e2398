package commands

import (
	"github.com/spf13/cobra"
	"github.com/wflang/docvet/internal/app"
	"github.com/wflang/docvet/internal/wiring"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	var opts app.Options
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate documentation examples",
		Long: `Validate documentation examples through the layered pipeline
(parse, analyze, type-check, lint, execute), skipping files whose cached
validation is still fresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			a, err := wiring.BuildApp(configPath, verbose, c.stdout)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "Validate a single category (path prefix)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Validate a single file (manifest path)")
	cmd.Flags().BoolVar(&opts.CI, "ci", false, "CI mode: never write the cache")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Ignore the cache and revalidate everything")
	cmd.Flags().BoolVar(&opts.UpdateManifest, "update-manifest", false, "Update the manifest with results (reserved)")
	cmd.Flags().BoolVar(&opts.Report, "report", false, "Write the JSON validation report")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose output")

	return cmd
}
