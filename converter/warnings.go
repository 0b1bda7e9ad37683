package converter

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningDuplicateSplitID  = "duplicate_split_id"
	WarningGlitchNotEmbedded = "glitch_not_embedded"
	WarningNoSegments        = "no_segments"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal findings about a configuration and
// outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// CollectWarnings inspects cfg for legal but suspicious input. It never
// fails; conversion errors are reported by BuildDocument.
func CollectWarnings(cfg Configuration) *WarningAggregator {
	w := NewWarningAggregator()

	if len(cfg.SplitIDs) == 0 {
		w.Add(WarningNoSegments, cfg.CategoryName)
	}

	seen := make(map[string]bool, len(cfg.SplitIDs))
	for _, id := range cfg.SplitIDs {
		if seen[id] {
			w.Add(WarningDuplicateSplitID, id)
		}
		seen[id] = true
	}

	if g := cfg.Variables.Glitch; g != "" && g != GlitchVariableValue {
		w.Add(WarningGlitchNotEmbedded, g)
	}
	return w
}

// Add records a warning occurrence with an example value
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns how often warningType was recorded
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Examples returns up to three recorded examples for warningType
func (w *WarningAggregator) Examples(warningType string) []string {
	if info := w.warnings[warningType]; info != nil {
		return append([]string(nil), info.examples...)
	}
	return nil
}

// Types returns the recorded warning types in sorted order
func (w *WarningAggregator) Types() []string {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Empty reports whether nothing was recorded
func (w *WarningAggregator) Empty() bool { return len(w.warnings) == 0 }

// Messages returns one human-readable line per warning type
func (w *WarningAggregator) Messages(categoryName string) []string {
	types := w.Types()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, w.formatWarningMessage(t, categoryName, w.warnings[t]))
	}
	return out
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(logger *slog.Logger, categoryName string) {
	for _, t := range w.Types() {
		info := w.warnings[t]
		logger.Warn(w.formatWarningMessage(t, categoryName, info),
			slog.String("warning", t),
			slog.Int("count", info.count),
		)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, categoryName string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningDuplicateSplitID:
		description = "repeated split ids"
		action = "Writing one segment per occurrence"
	case WarningGlitchNotEmbedded:
		description = "a requested glitch level other than " + GlitchVariableValue
		action = "Only the file name reflects it; the glitch variable stays " + GlitchVariableValue
	case WarningNoSegments:
		description = "no split ids"
		action = "Writing a splits file without segments"
	default:
		description = "an unknown issue"
		action = "Writing the splits file unchanged"
	}

	return fmt.Sprintf("Category %q has %s (%d occurrences). %s. Examples: %s",
		categoryName, description, info.count, action, strings.Join(info.examples, ", "))
}
