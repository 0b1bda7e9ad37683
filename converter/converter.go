package converter

import (
	"fmt"

	"github.com/hk-split-maker/lssgen/formatter"
	"github.com/hk-split-maker/lssgen/registry"
)

// Output formats understood by Converter.Convert
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// Compose builds and serializes the splits file for cfg
func Compose(cfg Configuration, reg registry.Lookup) ([]byte, error) {
	doc, err := BuildDocument(cfg, reg)
	if err != nil {
		return nil, err
	}
	return formatter.NewBuilder().BuildXML(doc), nil
}

// Converter binds a registry and an output builder
type Converter struct {
	Registry registry.Lookup
	Builder  *formatter.Builder
}

// NewConverter creates a converter with the default two-space builder
func NewConverter(reg registry.Lookup) *Converter {
	return &Converter{Registry: reg, Builder: formatter.NewBuilder()}
}

// Convert renders cfg as xml (the splits file) or json (the document model)
func (c *Converter) Convert(cfg Configuration, format string) ([]byte, error) {
	doc, err := BuildDocument(cfg, c.Registry)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXML, "":
		return c.Builder.BuildXML(doc), nil
	case FormatJSON:
		return c.Builder.BuildJSON(doc)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
