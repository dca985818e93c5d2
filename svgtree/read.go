package svgtree

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// ReadDocumentStream reads an SVG document from the given io.Reader
// into a generic tree. Comments and processing instructions are
// dropped; whitespace-only character data between elements is not
// kept (the writer re-indents).
func ReadDocumentStream(stream io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		doc   Document
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if doc.Root == nil {
					return nil, errors.New("invalid svg document: no root element")
				}
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{Name: se.Name, Attrs: se.Attr}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, errors.New("invalid svg document: multiple root elements")
				}
				doc.Root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if text := string(se); strings.TrimSpace(text) != "" {
				stack[len(stack)-1].Text += text
			}
		}
	}
	doc.Width, _ = doc.Root.Attr("", "width")
	doc.Height, _ = doc.Root.Attr("", "height")
	return &doc, nil
}

// ReadDocument reads the SVG document from the named file.
func ReadDocument(path string) (*Document, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin)
}
