package commands

import (
	"github.com/condatools/condasnap/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <descriptor-file> <new-environment-name>",
		Short: "Create a new environment from a capture descriptor",
		Long: `Restore accepts any of the three descriptor kinds and detects which one it
was given.

An explicit lock list recreates the exact package builds of the capture. When
a pinned build is unavailable for this platform the restore fails and names
the missing packages; it never substitutes different builds.

A declarative descriptor is resolved freshly on this host. Transitive
dependency versions may differ from the captured environment; that is the
expected, weaker reproducibility guarantee of the declarative formats.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			timeout, _ := cmd.Flags().GetDuration("timeout")
			return c.app.Restore(cmd.Context(), args[0], args[1], app.RestoreOptions{
				Timeout: timeout,
			})
		},
	}
	cmd.Flags().DurationP("timeout", "t", app.DefaultTimeout, "Timeout for the environment creation")
	return cmd
}
