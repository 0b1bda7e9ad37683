package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, group := range cat.Directory().Groups {
				for _, def := range group.Categories {
					rows = append(rows, []string{group.Heading, def.FileName, def.DisplayName, def.RouteNotesURL})
				}
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No categories")
				return nil
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Group", "Category", "Name", "Route Notes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
