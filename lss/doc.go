// Package lss defines the document model for LiveSplit splits files (.lss).
//
// A splits file is a single Run element holding game and category metadata,
// the ordered list of segments and the auto splitter settings. This package
// models it as a small tree of named nodes so that documents can be assembled
// and inspected without touching XML text:
//
//   - Empty nodes carry only attributes (<SplitTime name="Personal Best"/>)
//   - Text nodes carry attributes and character data (<GameName>Hollow Knight</GameName>)
//   - Container nodes carry attributes and child nodes (<Segments>...</Segments>)
//
// Serialization lives in the formatter package.
package lss
