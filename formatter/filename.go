package formatter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Glitch levels that change the suggested file name
const (
	GlitchNoMainMenuStorage = "No Main Menu Storage"
	GlitchAllGlitches       = "All Glitches"
)

const fallbackFileName = "splits"

var glitchSuffixes = map[string]string{
	GlitchNoMainMenuStorage: "-nmms",
	GlitchAllGlitches:       "-ag",
}

// SuggestFileName derives a file name stem from a category name and glitch
// level: lowercased, quotes dropped, every other character outside [a-z0-9]
// replaced with '_', outer '_' trimmed and runs of '_' collapsed. No Major
// Glitches (and anything unrecognised) gets no suffix.
func SuggestFileName(categoryName, glitch string) string {
	stem := sanitize(categoryName)
	if stem == "" {
		stem = fallbackFileName
	}
	return stem + glitchSuffixes[glitch]
}

// FileName is SuggestFileName plus the .lss extension
func FileName(categoryName, glitch string) string {
	return SuggestFileName(categoryName, glitch) + ".lss"
}

func sanitize(name string) string {
	lower := cases.Lower(language.Und).String(name)

	var b strings.Builder
	b.Grow(len(lower))
	lastUnderscore := false
	for _, r := range lower {
		switch {
		case r == '\'' || r == '"':
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
