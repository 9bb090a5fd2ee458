// Package commands implements the CLI commands for the condasnap tool.
package commands

import (
	"context"

	"github.com/condatools/condasnap/internal/app"
	"github.com/condatools/condasnap/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for condasnap.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "condasnap",
		Short: "Capture and restore conda environments",
		Long: `condasnap serializes a named conda environment into three redundant
descriptors and recreates an equivalent environment from any one of them:

  <basename>.txt     explicit lock list, pinned to exact package builds
  <basename>.yml     full declarative export of the dependency closure
  <basename>_fh.yml  declarative export of only the user-requested packages

Exit codes for save: 0 when every export strategy succeeds; when at least one
strategy fails the exit code is 8 or-ed with a mask of the failed strategies
(bit 0 explicit, bit 1 full, bit 2 from-history). Fatal errors exit with 1.`,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSaveCmd())
	rootCmd.AddCommand(c.newRestoreCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
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
