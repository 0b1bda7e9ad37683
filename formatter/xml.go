package formatter

import (
	"strings"

	"github.com/hk-split-maker/lssgen/lss"
)

// Declaration is the XML declaration written before the root element
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// BuildXML serializes a splits document. Output is deterministic: the same
// document always yields the same bytes.
func (b *Builder) BuildXML(doc *lss.Document) []byte {
	var sb strings.Builder
	sb.WriteString(Declaration)
	sb.WriteString("\n")
	if doc != nil && doc.Root != nil {
		b.writeNode(&sb, doc.Root, 0)
	}
	return []byte(sb.String())
}

func (b *Builder) writeNode(sb *strings.Builder, n *lss.Node, depth int) {
	indent := strings.Repeat(b.indent, depth)
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.Name)
	for _, a := range n.Attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString("=\"")
		sb.WriteString(xmlEscape(a.Value))
		sb.WriteString("\"")
	}

	switch n.Kind {
	case lss.KindEmpty:
		sb.WriteString("/>\n")
	case lss.KindText:
		sb.WriteString(">")
		sb.WriteString(xmlEscape(n.Text))
		writeClose(sb, n.Name)
	case lss.KindContainer:
		sb.WriteString(">\n")
		for _, c := range n.Children {
			b.writeNode(sb, c, depth+1)
		}
		// an empty container still closes on its own line
		sb.WriteString(indent)
		writeClose(sb, n.Name)
	}
}

func writeClose(sb *strings.Builder, name string) {
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">\n")
}

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
