package converter

import (
	"github.com/hk-split-maker/lssgen/lss"
	"github.com/hk-split-maker/lssgen/registry"
)

const (
	// PersonalBestComparison names the single split time placeholder of a segment
	PersonalBestComparison = "Personal Best"
	// GlitchVariableValue is written for the glitch category variable
	// regardless of Variables.Glitch
	GlitchVariableValue = "No Major Glitches"
	// PatchVariableName names the optional patch variable
	PatchVariableName = "Patch"

	zeroOffset   = "00:00:00"
	zeroAttempts = "0"
)

// BuildDocument assembles the splits document for cfg. Every id must
// resolve in reg; the first miss aborts with *UnknownSplitIDError and no
// document.
func BuildDocument(cfg Configuration, reg registry.Lookup) (*lss.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defs, err := resolveSplits(cfg.SplitIDs, reg)
	if err != nil {
		return nil, err
	}

	run := lss.Container("Run",
		lss.Text("GameIcon", ""),
		lss.Text("GameName", cfg.GameName),
		lss.Text("CategoryName", cfg.CategoryName),
		buildMetadata(cfg),
		lss.Text("Offset", zeroOffset),
		lss.Text("AttemptCount", zeroAttempts),
		lss.Text("AttemptHistory", ""),
		buildSegments(defs),
		buildAutoSplitterSettings(cfg),
	).WithAttrs(lss.Attr{Name: "version", Value: lss.Version})

	return &lss.Document{Root: run}, nil
}

// GlitchVariableName is the name of the glitch category variable for a category
func GlitchVariableName(categoryName string) string {
	return categoryName + " Glitch"
}

func buildMetadata(cfg Configuration) *lss.Node {
	return lss.Container("Metadata",
		lss.Empty("Run", lss.Attr{Name: "id", Value: ""}),
		buildPlatform(cfg.Variables.Platform),
		buildVariables(cfg),
	)
}

func buildPlatform(platform string) *lss.Node {
	// emulator runs are never emitted
	emu := lss.Attr{Name: "usesEmulator", Value: lss.BoolString(false)}
	if platform == "" {
		return lss.Empty("Platform", emu)
	}
	return lss.Text("Platform", platform, emu)
}

func buildVariables(cfg Configuration) *lss.Node {
	vars := lss.Container("Variables",
		variable(GlitchVariableName(cfg.CategoryName), GlitchVariableValue),
	)
	if cfg.Variables.Patch != "" {
		vars.Append(variable(PatchVariableName, cfg.Variables.Patch))
	}
	return vars
}

func variable(name, value string) *lss.Node {
	return lss.Text("Variable", value, lss.Attr{Name: "name", Value: name})
}

func buildAutoSplitterSettings(cfg Configuration) *lss.Node {
	splits := lss.Container("Splits")
	for _, id := range cfg.SplitIDs {
		splits.Append(lss.Text("Split", id))
	}
	return lss.Container("AutoSplitterSettings",
		lss.Text("Ordered", lss.BoolString(cfg.Ordered)),
		lss.Text("AutosplitEndRuns", lss.BoolString(cfg.EndTriggeringAutosplit)),
		splits,
	)
}
