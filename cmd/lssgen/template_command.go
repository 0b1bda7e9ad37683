package main

import (
	"bytes"

	"github.com/spf13/cobra"
)

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "template <category>",
		Short: "Print the configuration template of a category",
		Long:  "Print the configuration JSON of a category. Edit it and pass it back with generate --input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			data, err := cat.Template(args[0])
			if err != nil {
				return err
			}
			if !bytes.HasSuffix(data, []byte("\n")) {
				data = append(data, '\n')
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
