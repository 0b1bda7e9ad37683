package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultCategory is the category selected when none is requested
const DefaultCategory = "4ms"

var validate = validator.New()

// CategoryDefinition is one selectable category
type CategoryDefinition struct {
	FileName      string `json:"fileName" yaml:"fileName" validate:"required"`
	DisplayName   string `json:"displayName" yaml:"displayName" validate:"required"`
	RouteNotesURL string `json:"routeNotesURL,omitempty" yaml:"routeNotesURL,omitempty" validate:"omitempty,url"`
}

// Group is a heading and the categories listed under it
type Group struct {
	Heading    string
	Categories []CategoryDefinition
}

// Directory is the ordered list of category groups
type Directory struct {
	Groups []Group
}

// ParseDirectory decodes a directory file. JSON and YAML are both accepted;
// the document is walked as a YAML node tree so heading order survives.
func ParseDirectory(data []byte) (*Directory, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse category directory: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("parse category directory: empty document")
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse category directory: line %d: expected an object of headings", m.Line)
	}

	dir := &Directory{}
	seen := map[string]string{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		heading := m.Content[i].Value
		var defs []CategoryDefinition
		if err := m.Content[i+1].Decode(&defs); err != nil {
			return nil, fmt.Errorf("parse category directory: heading %q: %w", heading, err)
		}
		for j, d := range defs {
			if err := validate.Struct(d); err != nil {
				return nil, fmt.Errorf("parse category directory: heading %q entry %d: %w", heading, j, err)
			}
			key := strings.ToLower(d.FileName)
			if prev, dup := seen[key]; dup {
				return nil, fmt.Errorf("parse category directory: %q listed under %q and %q", d.FileName, prev, heading)
			}
			seen[key] = heading
		}
		dir.Groups = append(dir.Groups, Group{Heading: heading, Categories: defs})
	}
	return dir, nil
}

// Find looks a category up by file name, ignoring case
func (d *Directory) Find(fileName string) (CategoryDefinition, bool) {
	for _, g := range d.Groups {
		for _, c := range g.Categories {
			if strings.EqualFold(c.FileName, fileName) {
				return c, true
			}
		}
	}
	return CategoryDefinition{}, false
}

// All returns every category in display order
func (d *Directory) All() []CategoryDefinition {
	var out []CategoryDefinition
	for _, g := range d.Groups {
		out = append(out, g.Categories...)
	}
	return out
}
