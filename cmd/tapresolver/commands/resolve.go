package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tapresolver/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <contentType/name>...",
		Short: "Resolve content references to file paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imports, _ := cmd.Flags().GetBool("import")
			from, _ := cmd.Flags().GetString("from")

			var (
				results []app.Resolution
				err     error
			)
			if imports {
				results, err = c.app.ResolveImports(cmd.Context(), c.options(), from, args)
			} else {
				results, err = c.app.Resolve(cmd.Context(), c.options(), args)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintln(out, r.Path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("import", false, "Treat arguments as import sources and rewrite them like the web bundler hook")
	cmd.Flags().String("from", "", "File the imports are resolved from (with --import)")
	return cmd
}
