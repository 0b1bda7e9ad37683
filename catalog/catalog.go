package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/hk-split-maker/lssgen/converter"
)

// ErrUnknownCategory is returned for a category missing from the directory
var ErrUnknownCategory = errors.New("unknown category")

// Layout locates catalog files inside the filesystem
type Layout struct {
	Directory  string // directory file
	Categories string // folder holding <fileName>.json templates
}

// DefaultLayout matches the embedded assets
var DefaultLayout = Layout{
	Directory:  "category-directory.json",
	Categories: "categories",
}

// Catalog serves category templates from an fs.FS
type Catalog struct {
	fsys   fs.FS
	layout Layout
	dir    *Directory
}

// Open reads the directory file and returns a catalog over fsys
func Open(fsys fs.FS, layout Layout) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, layout.Directory)
	if err != nil {
		return nil, fmt.Errorf("read category directory: %w", err)
	}
	dir, err := ParseDirectory(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{fsys: fsys, layout: layout, dir: dir}, nil
}

// Directory returns the parsed directory
func (c *Catalog) Directory() *Directory { return c.dir }

// Category resolves a category by file name, ignoring case
func (c *Catalog) Category(name string) (CategoryDefinition, error) {
	def, ok := c.dir.Find(name)
	if !ok {
		return CategoryDefinition{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return def, nil
}

// Template returns the raw configuration JSON of a category, as a user
// would start editing it
func (c *Catalog) Template(name string) ([]byte, error) {
	def, err := c.Category(name)
	if err != nil {
		return nil, err
	}
	p := path.Join(c.layout.Categories, def.FileName+".json")
	data, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read category %q: %w", def.FileName, err)
	}
	return data, nil
}

// Configuration parses the template of a category
func (c *Catalog) Configuration(name string) (converter.Configuration, error) {
	data, err := c.Template(name)
	if err != nil {
		return converter.Configuration{}, err
	}
	cfg, err := converter.ParseConfiguration(data)
	if err != nil {
		return converter.Configuration{}, fmt.Errorf("category %q: %w", name, err)
	}
	return cfg, nil
}
