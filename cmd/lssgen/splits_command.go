package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSplitsCommand(ctx *commandContext) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "splits",
		Short: "List known split definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ctx.registry(cmd.Context())
			if err != nil {
				return err
			}

			defs := reg.Definitions()
			if search != "" {
				defs = reg.Search(search)
			}

			out := cmd.OutOrStdout()
			if len(defs) == 0 {
				fmt.Fprintf(out, "No splits match %q\n", search)
				return nil
			}

			rows := make([][]string, 0, len(defs))
			for i, def := range defs {
				rows = append(rows, []string{strconv.Itoa(i + 1), def.ID, def.Name, def.Description})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "ID", "Name", "Description"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive filter on id or name")
	return cmd
}
