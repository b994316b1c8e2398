// Package commands implements the CLI commands for the docvet tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wflang/docvet/internal/adapters/config"
)

// CLI represents the command line interface for docvet.
type CLI struct {
	rootCmd *cobra.Command
	stdout  io.Writer
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "docvet",
		Short:         "Validate documentation examples against the wfl toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")

	c := &CLI{
		rootCmd: rootCmd,
		stdout:  os.Stdout,
	}

	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetStdout redirects validation output. Used for testing.
func (c *CLI) SetStdout(w io.Writer) {
	c.stdout = w
	c.rootCmd.SetOut(w)
}
