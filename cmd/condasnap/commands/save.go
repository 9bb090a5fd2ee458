package commands

import (
	"github.com/condatools/condasnap/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <environment-name>",
		Short: "Serialize an environment with every export strategy",
		Long: `Save writes three descriptors for the named environment into the output
directory. The strategies are independent: a failing export is reported and
the remaining strategies still run, so a partial capture is a valid result.

A manifest file <basename>.manifest.json with per-artifact checksums is
written alongside the descriptors for later verification.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on: a failure is operational, not
			// a usage error.
			cmd.SilenceUsage = true

			outputDir, _ := cmd.Flags().GetString("output-dir")
			basename, _ := cmd.Flags().GetString("basename")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			return c.app.Capture(cmd.Context(), args[0], app.CaptureOptions{
				OutputDir: outputDir,
				Basename:  basename,
				Timeout:   timeout,
			})
		},
	}
	cmd.Flags().StringP("output-dir", "o", ".", "Directory the descriptors are written to")
	cmd.Flags().StringP("basename", "b", "", "File name prefix for the descriptors (defaults to the environment name)")
	cmd.Flags().DurationP("timeout", "t", app.DefaultTimeout, "Timeout per export strategy")
	return cmd
}
