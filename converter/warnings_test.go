package converter

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectWarnings(t *testing.T) {
	t.Run("clean configuration", func(t *testing.T) {
		w := CollectWarnings(exampleConfig())
		assert.True(t, w.Empty())
		assert.Empty(t, w.Messages("Any%"))
	})

	t.Run("duplicates", func(t *testing.T) {
		cfg := exampleConfig()
		cfg.SplitIDs = []string{"a", "b", "a", "a", "b", "b"}

		w := CollectWarnings(cfg)
		assert.Equal(t, 4, w.Count(WarningDuplicateSplitID))
		assert.Equal(t, []string{"a", "a", "b"}, w.Examples(WarningDuplicateSplitID), "at most three examples")
	})

	t.Run("glitch level", func(t *testing.T) {
		cfg := exampleConfig()
		cfg.Variables.Glitch = "All Glitches"

		w := CollectWarnings(cfg)
		assert.Equal(t, 1, w.Count(WarningGlitchNotEmbedded))

		cfg.Variables.Glitch = GlitchVariableValue
		assert.Zero(t, CollectWarnings(cfg).Count(WarningGlitchNotEmbedded))
	})

	t.Run("no segments", func(t *testing.T) {
		cfg := exampleConfig()
		cfg.SplitIDs = nil

		w := CollectWarnings(cfg)
		assert.Equal(t, []string{WarningNoSegments}, w.Types())
	})
}

func TestWarningAggregator_LogAll(t *testing.T) {
	cfg := exampleConfig()
	cfg.SplitIDs = []string{"a", "a"}
	cfg.Variables.Glitch = "No Main Menu Storage"
	w := CollectWarnings(cfg)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w.LogAll(logger, cfg.CategoryName)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "warning="+WarningDuplicateSplitID)
	assert.Contains(t, lines[1], "warning="+WarningGlitchNotEmbedded)
	assert.Contains(t, lines[1], "No Main Menu Storage")
	assert.Contains(t, lines[0], "level=WARN")
}
