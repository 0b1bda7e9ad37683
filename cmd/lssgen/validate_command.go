package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hk-split-maker/lssgen/converter"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var source configurationSource

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a configuration converts, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.resolve(cmd, ctx)
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := converter.BuildDocument(cfg, reg); err != nil {
				return fmt.Errorf("validate %q: %w", cfg.CategoryName, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "OK %s: %d segments\n", cfg.CategoryName, len(cfg.SplitIDs))
			for _, msg := range converter.CollectWarnings(cfg).Messages(cfg.CategoryName) {
				fmt.Fprintf(out, "warning: %s\n", msg)
			}
			return nil
		},
	}

	source.bind(cmd)
	return cmd
}
