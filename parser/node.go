package parser

import (
	"encoding/xml"
	"io"
	"strings"
)

// node is a minimal element-tree representation of an XML document. The
// namespace URI is caller-overridable at runtime, which rules out static
// unmarshal struct tags; a walked tree keeps element lookup dynamic.
type node struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*node
	text     string
}

// parseTree decodes the document into an element tree rooted at its first
// element. Input always arrives already decoded to UTF-8, so the charset
// reader is a pass-through: it accepts legacy encoding declarations without
// re-decoding text that was converted once.
func parseTree(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return buildNode(dec, start)
		}
	}
}

func buildNode(dec *xml.Decoder, start xml.StartElement) (*node, error) {
	n := &node{
		name:  start.Name,
		attrs: start.Attr,
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := buildNode(dec, t)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.text = text.String()
			return n, nil
		}
	}
}

// attr returns the value of the attribute with the given local name, or ""
// when absent. PAGE-XML attributes are unqualified, so the namespace is not
// consulted.
func (n *node) attr(local string) string {
	for _, a := range n.attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func (n *node) is(space, local string) bool {
	return n.name.Local == local && n.name.Space == space
}

// child returns the first direct child matching space+local, or nil.
func (n *node) child(space, local string) *node {
	for _, c := range n.children {
		if c.is(space, local) {
			return c
		}
	}
	return nil
}

// childAll returns all direct children matching space+local, in document
// order.
func (n *node) childAll(space, local string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.is(space, local) {
			out = append(out, c)
		}
	}
	return out
}

// descendants returns all matching elements below n (n excluded), depth
// first in document order.
func (n *node) descendants(space, local string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.is(space, local) {
			out = append(out, c)
		}
		out = append(out, c.descendants(space, local)...)
	}
	return out
}

// descendant returns the first matching element below n, or nil.
func (n *node) descendant(space, local string) *node {
	for _, c := range n.children {
		if c.is(space, local) {
			return c
		}
		if d := c.descendant(space, local); d != nil {
			return d
		}
	}
	return nil
}
