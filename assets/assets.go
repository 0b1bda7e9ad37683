// Package assets embeds the split definitions and category catalog shipped
// with lssgen.
package assets

import "embed"

// Paths of the embedded files
const (
	SplitsPath    = "splits.json"
	DirectoryPath = "category-directory.json"
	CategoriesDir = "categories"
)

// FS holds splits.json, category-directory.json and categories/*.json
//
//go:embed splits.json category-directory.json categories/*.json
var FS embed.FS
