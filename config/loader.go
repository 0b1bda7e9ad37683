package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hk-split-maker/lssgen/assets"
	"github.com/hk-split-maker/lssgen/catalog"
)

// SearchPaths are tried in order when no explicit path is given
var SearchPaths = []string{"lssgen.yml", "config.yml"}

// Default returns the configuration used when no file sets a value
func Default() AppConfig {
	return AppConfig{
		Assets: AssetsConfig{
			Splits:     assets.SplitsPath,
			Directory:  assets.DirectoryPath,
			Categories: assets.CategoriesDir,
		},
		Generate: GenerateConfig{
			DefaultCategory: catalog.DefaultCategory,
			OutputDir:       ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadAppConfig loads and validates the application configuration.
// With an explicit path the file must exist. Otherwise SearchPaths are tried
// and defaults are used when none exists.
func LoadAppConfig(path string) (AppConfig, error) {
	paths := SearchPaths
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
