package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hk-split-maker/lssgen/converter"
	"github.com/hk-split-maker/lssgen/formatter"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		source   configurationSource
		output   string
		toStdout bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a splits file for a category or configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != converter.FormatXML && format != converter.FormatJSON {
				return fmt.Errorf("unsupported format %q (want xml or json)", format)
			}
			if toStdout && output != "" {
				return fmt.Errorf("--stdout and --output cannot be combined")
			}

			logger := ctx.log().With(slog.String("source", source.label(ctx.config.Generate.DefaultCategory)))

			cfg, err := source.resolve(cmd, ctx)
			if err != nil {
				return err
			}
			reg, err := ctx.registry(cmd.Context())
			if err != nil {
				return err
			}

			converter.CollectWarnings(cfg).LogAll(logger, cfg.CategoryName)

			data, err := converter.NewConverter(reg).Convert(cfg, format)
			if err != nil {
				return fmt.Errorf("generate %q: %w", cfg.CategoryName, err)
			}

			if toStdout {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			name := formatter.FileName(cfg.CategoryName, cfg.Variables.Glitch)
			if format == converter.FormatJSON {
				name = formatter.SuggestFileName(cfg.CategoryName, cfg.Variables.Glitch) + ".json"
			}
			target := outputPath(output, ctx.config.Generate.OutputDir, name)
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write splits file: %w", err)
			}

			logger.Info("splits file written",
				slog.String("path", target),
				slog.Int("segments", len(cfg.SplitIDs)),
				slog.String("format", format),
			)
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	source.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default: generate.outputDir)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the result instead of writing a file")
	cmd.Flags().StringVarP(&format, "format", "f", converter.FormatXML, "Output format: xml or json")
	return cmd
}

// outputPath resolves --output: an existing directory receives the suggested
// file name, anything else is taken as the file path.
func outputPath(output, defaultDir, name string) string {
	if output == "" {
		return filepath.Join(defaultDir, name)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, name)
	}
	return output
}
