package lss

// Version is the LiveSplit splits schema version emitted by this module.
const Version = "1.7.0"

// Kind tells the serializer how a node's content is laid out
type Kind int

const (
	// KindEmpty is an element with attributes only, written as <Name/>
	KindEmpty Kind = iota
	// KindText is an element whose content is a single run of character data
	KindText
	// KindContainer is an element whose content is a list of child elements
	KindContainer
)

// String returns the lowercase kind name
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Attr is a single name="value" pair. Attribute order is preserved.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one element of a splits document
type Node struct {
	Name     string  `json:"name"`
	Kind     Kind    `json:"kind"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Document is a complete splits file rooted at a Run element
type Document struct {
	Root *Node `json:"root"`
}

// BoolString renders a boolean the way LiveSplit expects it: "True" or "False"
func BoolString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
