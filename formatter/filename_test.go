package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestFileName(t *testing.T) {
	tests := []struct {
		name     string
		category string
		glitch   string
		want     string
	}{
		{"simple", "4 Mask Shards", "", "4_mask_shards"},
		{"percent sign", "Any%", "", "any"},
		{"quotes dropped", `Pantheon "Hall" Of Gods' Run`, "", "pantheon_hall_of_gods_run"},
		{"outer separators trimmed", "  --Aluba%--  ", "", "aluba"},
		{"runs collapsed", "All   Skills / No Dash", "", "all_skills_no_dash"},
		{"non ascii replaced", "Pokémon Any%", "", "pok_mon_any"},
		{"no main menu storage", "All Skills", GlitchNoMainMenuStorage, "all_skills-nmms"},
		{"all glitches", "All Skills", GlitchAllGlitches, "all_skills-ag"},
		{"no major glitches has no suffix", "All Skills", "No Major Glitches", "all_skills"},
		{"unknown glitch has no suffix", "All Skills", "Some Glitches", "all_skills"},
		{"empty category", "", "", "splits"},
		{"nothing left after sanitizing", "%%%", GlitchAllGlitches, "splits-ag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestFileName(tt.category, tt.glitch))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "4_mask_shards-nmms.lss", FileName("4 Mask Shards", GlitchNoMainMenuStorage))
}
