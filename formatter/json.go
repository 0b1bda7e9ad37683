package formatter

import (
	"encoding/json"

	"github.com/hk-split-maker/lssgen/lss"
)

const defaultIndent = "  "

// Builder serializes splits documents. The zero value is not usable; call
// NewBuilder.
type Builder struct {
	indent string
}

// NewBuilder creates a builder indenting nested elements by two spaces
func NewBuilder() *Builder {
	return &Builder{indent: defaultIndent}
}

// WithIndent returns a copy of the builder using indent per nesting level
func (b *Builder) WithIndent(indent string) *Builder {
	return &Builder{indent: indent}
}

// BuildJSON renders the document model as indented JSON
func (b *Builder) BuildJSON(doc *lss.Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", b.indent)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
