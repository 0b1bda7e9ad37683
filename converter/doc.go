// Package converter turns a splits configuration into a LiveSplit splits file.
//
// The conversion runs in two pure stages:
//
//   - BuildDocument resolves every split id against a registry and assembles
//     an lss.Document in the exact element order LiveSplit expects
//   - formatter.BuildXML serializes that document
//
// Compose chains both. Nothing is cached and nothing is logged during a
// conversion, so the same registry can serve many goroutines at once as long
// as each call gets its own Configuration.
//
// # Usage
//
//	cfg, err := converter.ParseConfiguration(editorJSON)
//	if err != nil {
//	    // *converter.ConfigurationError: names the offending field
//	}
//
//	reg, err := registry.FSSource{FS: assets.FS, Path: "splits.json"}.Load(ctx)
//	if err != nil {
//	    // *registry.LoadError
//	}
//
//	out, err := converter.Compose(cfg, reg)
//	if err != nil {
//	    // *converter.UnknownSplitIDError: names the id, no partial output
//	}
//
// # Known Limitation
//
// The glitch category variable written into Metadata is always
// "No Major Glitches", whatever Variables.Glitch asks for. Only the suggested
// file name reflects the requested glitch level. CollectWarnings reports the
// mismatch so callers can surface it.
package converter
