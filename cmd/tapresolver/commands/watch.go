package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/tapresolver/internal/engine/resolver"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the module resolver config on every config change",
		Long: "Prints the module resolver config as one JSON line, then prints it again " +
			"whenever a keg or tap config file changes. Runs until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			return c.app.Watch(cmd.Context(), c.options(), func(cfg resolver.ModuleResolverConfig) {
				if err := enc.Encode(cfg); err != nil && c.logger != nil {
					c.logger.Error(err)
				}
			})
		},
	}
}
