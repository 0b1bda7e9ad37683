package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Source loads a registry from some backing asset
type Source interface {
	Load(ctx context.Context) (*Registry, error)
}

// asset is the on-disk layout shared by the JSON and YAML forms
type asset struct {
	Splits []SplitDefinition `json:"splits" yaml:"splits"`
}

// FileSource reads split definitions from a file path
type FileSource struct {
	Path string
}

// Load reads and decodes the file
func (s FileSource) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	return Decode(data, s.Path)
}

// FSSource reads split definitions from a file inside an fs.FS
type FSSource struct {
	FS   fs.FS
	Path string
}

// Load reads and decodes the file
func (s FSSource) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.FS == nil {
		return nil, &LoadError{Source: s.Path, Err: errors.New("no filesystem")}
	}
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	return Decode(data, s.Path)
}

// Decode parses an asset. The format is picked from name's extension:
// .yml and .yaml are YAML, anything else is JSON.
func Decode(data []byte, name string) (*Registry, error) {
	var a asset
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, &LoadError{Source: name, Err: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&a); err != nil {
			return nil, &LoadError{Source: name, Err: err}
		}
	}
	if len(a.Splits) == 0 {
		return nil, &LoadError{Source: name, Err: errors.New("no split definitions")}
	}
	for i, d := range a.Splits {
		if err := validate.Struct(d); err != nil {
			return nil, &LoadError{Source: name, Err: fmt.Errorf("split %d (%q): %w", i, d.ID, err)}
		}
	}
	reg, err := New(a.Splits...)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return reg, nil
}
