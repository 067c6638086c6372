package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the resolved load order without constructing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := manifestPath(cmd)
			if err != nil {
				return err
			}
			return c.app.Plan(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}
}
