package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hk-split-maker/lssgen/converter"
)

// stdinPath selects standard input as the configuration source
const stdinPath = "-"

// configurationSource names where a configuration comes from: a catalog
// category or a file the user edited.
type configurationSource struct {
	category string
	input    string
}

func (s *configurationSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.category, "category", "k", "", "Category from the catalog (default from config)")
	cmd.Flags().StringVarP(&s.input, "input", "i", "", "Configuration JSON file, or - for stdin")
	cmd.MarkFlagsMutuallyExclusive("category", "input")
}

// label is used in log lines and messages
func (s *configurationSource) label(defaultCategory string) string {
	if s.input == stdinPath {
		return "stdin"
	}
	if s.input != "" {
		return s.input
	}
	if s.category != "" {
		return s.category
	}
	return defaultCategory
}

// resolve reads and validates the configuration
func (s *configurationSource) resolve(cmd *cobra.Command, ctx *commandContext) (converter.Configuration, error) {
	if s.input != "" {
		data, err := readInput(cmd.InOrStdin(), s.input)
		if err != nil {
			return converter.Configuration{}, err
		}
		cfg, err := converter.ParseConfiguration(data)
		if err != nil {
			return converter.Configuration{}, fmt.Errorf("%s: %w", s.label(""), err)
		}
		return cfg, nil
	}

	name := strings.TrimSpace(s.category)
	if name == "" {
		name = ctx.config.Generate.DefaultCategory
	}
	cat, err := ctx.catalog()
	if err != nil {
		return converter.Configuration{}, err
	}
	return cat.Configuration(name)
}

// readInput reads a configuration from a local file path or from stdin
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	return data, nil
}
