package converter

import (
	"github.com/hk-split-maker/lssgen/lss"
	"github.com/hk-split-maker/lssgen/registry"
)

// resolveSplits looks up every id in order. Duplicates resolve to repeated
// definitions.
func resolveSplits(ids []string, reg registry.Lookup) ([]registry.SplitDefinition, error) {
	defs := make([]registry.SplitDefinition, 0, len(ids))
	for i, id := range ids {
		def, ok := reg.Lookup(id)
		if !ok {
			return nil, &UnknownSplitIDError{ID: id, Index: i}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func buildSegments(defs []registry.SplitDefinition) *lss.Node {
	segments := lss.Container("Segments")
	for _, def := range defs {
		segments.Append(buildSegment(def.Name))
	}
	return segments
}

// buildSegment creates a fresh segment: a name and empty timing placeholders
func buildSegment(name string) *lss.Node {
	return lss.Container("Segment",
		lss.Text("Name", name),
		lss.Text("Icon", ""),
		lss.Container("SplitTimes",
			lss.Empty("SplitTime", lss.Attr{Name: "name", Value: PersonalBestComparison}),
		),
		lss.Text("BestSegmentTime", ""),
		lss.Text("SegmentHistory", ""),
	)
}
