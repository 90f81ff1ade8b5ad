package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "Print the asset index of the base and the active tap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := c.app.Assets(cmd.Context(), c.options())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), assets)
		},
	}
}
