package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/tapresolver/internal/ui/output"
	"go.trai.ch/tapresolver/internal/ui/style"
)

// aliasColumnGap separates the alias name from its target.
const aliasColumnGap = 2

func (c *CLI) newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List the static and dynamic aliases of the active tap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := c.app.Aliases(cmd.Context(), c.options())
			if err != nil {
				return err
			}
			return writeAliases(cmd.OutOrStdout(), set)
		},
	}
}

// writeAliases renders set as a borderless two column table. Static aliases
// come first in name order, then dynamic aliases with their content type.
func writeAliases(w io.Writer, set domain.AliasSet) error {
	rows := make([][]string, 0, len(set.Static)+len(set.Dynamic))
	for _, name := range set.Static.Names() {
		rows = append(rows, []string{name, set.Static[name]})
	}
	for _, d := range set.Dynamic {
		rows = append(rows, []string{d.Name + "/*", "<" + d.ContentType + ">"})
	}
	if len(rows) == 0 {
		return nil
	}

	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
	nameStyle := r.NewStyle().Foreground(style.Iris).PaddingRight(aliasColumnGap)
	targetStyle := r.NewStyle()

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return nameStyle
			}
			return targetStyle
		}).
		Rows(rows...)

	for _, line := range strings.Split(t.String(), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
