package svgtree

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Preferred prefixes for the namespaces commonly found in
// designer-authored SVG files.
var knownPrefixes = map[string]string{
	SVGNamespace:      "svg",
	XlinkNamespace:    "xlink",
	InkscapeNamespace: "inkscape",
	SodipodiNamespace: "sodipodi",
	CutsheetNamespace: "cutsheet",
}

// nsScope maps namespaces to the prefixes declared on the root
// element. The root's own namespace is the default (unprefixed) one.
type nsScope struct {
	def      string
	prefixes map[string]string
}

// WriteDocument serializes the tree rooted at root to w, with an XML
// declaration and all namespace declarations gathered on the root
// element.
func WriteDocument(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return err
	}
	scope := buildScope(root)
	writeNode(bw, root, 0, scope, true)
	return bw.Flush()
}

// WriteDocumentFile serializes the tree rooted at root to the named
// file, creating or truncating it.
func WriteDocumentFile(path string, root *Node) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDocument(fout, root); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}

func buildScope(root *Node) nsScope {
	scope := nsScope{def: root.Name.Space, prefixes: map[string]string{}}
	var walk func(n *Node)
	generated := 0
	assign := func(space string) {
		if space == "" || space == scope.def || space == xmlNamespace {
			return
		}
		if _, ok := scope.prefixes[space]; ok {
			return
		}
		if p, ok := knownPrefixes[space]; ok {
			scope.prefixes[space] = p
			return
		}
		generated++
		scope.prefixes[space] = fmt.Sprintf("ns%d", generated)
	}
	walk = func(n *Node) {
		assign(n.Name.Space)
		for _, a := range n.Attrs {
			if isXmlnsAttr(a) {
				continue
			}
			assign(a.Name.Space)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return scope
}

// xmlns declarations seen by the decoder are skipped on output; the
// writer regenerates them from the scope.
func isXmlnsAttr(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

func (s nsScope) qualify(name xml.Name) string {
	switch name.Space {
	case "", s.def:
		return name.Local
	case xmlNamespace:
		return "xml:" + name.Local
	}
	if p, ok := s.prefixes[name.Space]; ok {
		return p + ":" + name.Local
	}
	return name.Local
}

func writeNode(w *bufio.Writer, n *Node, depth int, scope nsScope, isRoot bool) {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(scope.qualify(n.Name))
	if isRoot {
		if scope.def != "" {
			writeAttr(w, "xmlns", scope.def)
		}
		spaces := make([]string, 0, len(scope.prefixes))
		for space := range scope.prefixes {
			spaces = append(spaces, space)
		}
		sort.Slice(spaces, func(i, j int) bool {
			return scope.prefixes[spaces[i]] < scope.prefixes[spaces[j]]
		})
		for _, space := range spaces {
			writeAttr(w, "xmlns:"+scope.prefixes[space], space)
		}
	}
	for _, a := range n.Attrs {
		if isXmlnsAttr(a) {
			continue
		}
		writeAttr(w, scope.qualify(a.Name), a.Value)
	}
	if n.Text == "" && len(n.Children) == 0 {
		w.WriteString("/>\n")
		return
	}
	w.WriteByte('>')
	if n.Text != "" {
		xml.EscapeText(w, []byte(n.Text))
	}
	if len(n.Children) > 0 {
		w.WriteByte('\n')
		for _, c := range n.Children {
			writeNode(w, c, depth+1, scope, false)
		}
		w.WriteString(indent)
	}
	w.WriteString("</")
	w.WriteString(scope.qualify(n.Name))
	w.WriteString(">\n")
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}
