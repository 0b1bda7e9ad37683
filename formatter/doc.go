// Package formatter provides serialization for splits documents.
//
// This package is organized into:
// - json.go: Builder construction and JSON rendering of the document model
// - xml.go: LiveSplit XML serialization with proper escaping
// - filename.go: the suggested download name for a splits file
//
// XML is written by hand rather than through encoding/xml so that element
// order, attribute order, empty-element form and indentation match what
// LiveSplit writes byte for byte.
package formatter
