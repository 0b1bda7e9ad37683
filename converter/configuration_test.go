package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfiguration(t *testing.T) {
	input := `{
		"splitIds": ["MothwingCloak", "MantisClaw", "MothwingCloak"],
		"ordered": true,
		"endTriggeringAutosplit": true,
		"categoryName": "All Skills",
		"gameName": "Hollow Knight",
		"variables": {
			"platform": "PC",
			"patch": "1.4.3.2",
			"glitch": "All Glitches"
		}
	}`

	cfg, err := ParseConfiguration([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"MothwingCloak", "MantisClaw", "MothwingCloak"}, cfg.SplitIDs)
	assert.True(t, cfg.Ordered)
	assert.True(t, cfg.EndTriggeringAutosplit)
	assert.Equal(t, "All Skills", cfg.CategoryName)
	assert.Equal(t, "Hollow Knight", cfg.GameName)
	assert.Equal(t, Variables{Platform: "PC", Patch: "1.4.3.2", Glitch: "All Glitches"}, cfg.Variables)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfiguration_OptionalParts(t *testing.T) {
	t.Run("variables omitted", func(t *testing.T) {
		cfg, err := ParseConfiguration([]byte(`{"splitIds":["a"],"ordered":true,"endTriggeringAutosplit":true,"categoryName":"Any%","gameName":"g"}`))
		require.NoError(t, err)
		assert.Equal(t, Variables{}, cfg.Variables)
	})

	t.Run("empty split list is allowed", func(t *testing.T) {
		cfg, err := ParseConfiguration([]byte(`{"splitIds":[],"ordered":true,"endTriggeringAutosplit":true,"categoryName":"Any%","gameName":"g"}`))
		require.NoError(t, err)
		assert.Empty(t, cfg.SplitIDs)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		_, err := ParseConfiguration([]byte(`{"splitIds":["a"],"ordered":true,"endTriggeringAutosplit":true,"categoryName":"Any%","gameName":"g","comment":"x"}`))
		assert.NoError(t, err)
	})

	t.Run("false flags are kept", func(t *testing.T) {
		cfg, err := ParseConfiguration([]byte(`{"splitIds":["a"],"ordered":false,"endTriggeringAutosplit":false,"categoryName":"Any%","gameName":"g"}`))
		require.NoError(t, err)
		assert.False(t, cfg.Ordered)
		assert.False(t, cfg.EndTriggeringAutosplit)
	})
}

func TestParseConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{"empty document", ``, ""},
		{"not json", `splitIds: [a]`, ""},
		{"truncated", `{"splitIds": ["a"]`, ""},
		{"missing splitIds", `{"ordered":true,"endTriggeringAutosplit":true,"categoryName":"c","gameName":"g"}`, "splitIds"},
		{"null splitIds", `{"splitIds":null,"ordered":true,"endTriggeringAutosplit":true,"categoryName":"c","gameName":"g"}`, "splitIds"},
		{"missing ordered", `{"splitIds":["a"],"endTriggeringAutosplit":true,"categoryName":"c","gameName":"g"}`, "ordered"},
		{"missing endTriggeringAutosplit", `{"splitIds":["a"],"ordered":true,"categoryName":"c","gameName":"g"}`, "endTriggeringAutosplit"},
		{"missing categoryName", `{"splitIds":["a"],"ordered":true,"endTriggeringAutosplit":true,"gameName":"g"}`, "categoryName"},
		{"empty gameName", `{"splitIds":["a"],"ordered":true,"endTriggeringAutosplit":true,"categoryName":"c","gameName":""}`, "gameName"},
		{"ordered not a bool", `{"splitIds":["a"],"ordered":"yes","endTriggeringAutosplit":true,"categoryName":"c","gameName":"g"}`, "ordered"},
		{"splitIds not an array", `{"splitIds":"a","ordered":true,"endTriggeringAutosplit":true,"categoryName":"c","gameName":"g"}`, "splitIds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfiguration([]byte(tt.input))
			require.Error(t, err)

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr), "expected *ConfigurationError, got %T", err)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.ErrorIs(t, err, ErrConfiguration)
			if tt.wantField != "" {
				assert.Contains(t, err.Error(), tt.wantField)
			}
		})
	}
}

func TestConfiguration_Validate(t *testing.T) {
	cfg := Configuration{CategoryName: "Any%"}

	err := cfg.Validate()

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "gameName", cerr.Field)
	assert.Equal(t, "is required", cerr.Reason)
}
