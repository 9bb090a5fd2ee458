package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <basename>",
		Short: "Check capture artifacts against their manifest checksums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			outputDir, _ := cmd.Flags().GetString("output-dir")
			return c.app.Verify(cmd.Context(), args[0], outputDir)
		},
	}
	cmd.Flags().StringP("output-dir", "o", ".", "Directory the descriptors were written to")
	return cmd
}
