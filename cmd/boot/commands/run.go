package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Initialize every component of the manifest and run its hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := manifestPath(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Run(cmd.Context(), cmd.OutOrStdout(), path)
			return err
		},
	}
}
