package lss

// Empty creates an element without content
func Empty(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Kind: KindEmpty, Attrs: attrs}
}

// Text creates an element holding character data. An empty string still
// yields an open and a close tag.
func Text(name, text string, attrs ...Attr) *Node {
	return &Node{Name: name, Kind: KindText, Text: text, Attrs: attrs}
}

// Container creates an element holding child elements
func Container(name string, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindContainer, Children: children}
}

// WithAttrs appends attributes in order and returns the node
func (n *Node) WithAttrs(attrs ...Attr) *Node {
	n.Attrs = append(n.Attrs, attrs...)
	return n
}

// Append adds children to a container node
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the named attribute
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given name, or nil
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given name in document order
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find walks a path of child names from n, e.g. Find("Metadata", "Variables")
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, name := range path {
		if cur == nil {
			return nil
		}
		cur = cur.Child(name)
	}
	return cur
}
