// Package svgtree provides a generic tree representation of SVG
// documents. Nodes keep their element name, attributes, text and
// ordered children, so that fragments authored in external tools can
// be composed and written back without interpreting their geometry.
//
// Nodes are treated as immutable values: rewriting operations return
// new nodes and share untouched subtrees.
package svgtree

import "encoding/xml"

// Namespaces recognized in the documents handled here. Others are
// preserved and written back with generated prefixes.
const (
	SVGNamespace      = "http://www.w3.org/2000/svg"
	XlinkNamespace    = "http://www.w3.org/1999/xlink"
	InkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"
	SodipodiNamespace = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd"

	// CutsheetNamespace holds the layout annotations (labels) that
	// drive variant and layer filtering.
	CutsheetNamespace = "https://cutsheet.dev/ns"
)

// Node is a single element of a document tree.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string // character data directly inside the element
	Children []*Node
}

// Document is a whole SVG file: its root element plus the raw size
// attributes declared on it, kept as strings so callers can decide
// how to interpret the units.
type Document struct {
	Root          *Node
	Width, Height string
}

// NewElement returns an empty element node with the given name.
func NewElement(space, local string) *Node {
	return &Node{Name: xml.Name{Space: space, Local: local}}
}

// Attr returns the value of the attribute with the given namespace
// and local name, and whether it is present.
func (n *Node) Attr(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// WithAttr returns a copy of the node with the given attribute set,
// replacing an existing value for the same name.
func (n *Node) WithAttr(space, local, value string) *Node {
	out := *n
	out.Attrs = make([]xml.Attr, len(n.Attrs), len(n.Attrs)+1)
	copy(out.Attrs, n.Attrs)
	for i, a := range out.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			out.Attrs[i].Value = value
			return &out
		}
	}
	out.Attrs = append(out.Attrs, xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value})
	return &out
}

// WithChildren returns a copy of the node carrying the given child
// list instead of the original one. The attributes are shared.
func (n *Node) WithChildren(children []*Node) *Node {
	out := *n
	out.Children = children
	return &out
}
