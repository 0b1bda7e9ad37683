package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadAppConfig_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppConfig_SearchPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("generate:\n  defaultCategory: aluba\n"), 0o644))

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, "aluba", cfg.Generate.DefaultCategory)
	assert.Equal(t, ".", cfg.Generate.OutputDir, "unset values keep defaults")
}

func TestLoadAppConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	content := `
assets:
  dir: /srv/lssgen
  splits: splits.yml
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/lssgen", cfg.Assets.Dir)
	assert.Equal(t, "splits.yml", cfg.Assets.Splits)
	assert.Equal(t, "categories", cfg.Assets.Categories)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadAppConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid yaml":     "invalid: yaml: content: [[[",
		"bad log level":    "logging:\n  level: verbose\n",
		"bad log format":   "logging:\n  format: xml\n",
		"empty splits":     "assets:\n  splits: \"\"\n",
		"empty output dir": "generate:\n  outputDir: \"\"\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyFile(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
