package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

type xmlNode struct {
	name    string
	attrs   []xml.Attr
	content []xmlContent
}

// xmlContent is either character data or a child element
type xmlContent struct {
	text string
	elem *xmlNode
}

// ParseXML parses a strict XML document and returns its root element.
func ParseXML(r io.Reader) (Node, error) {
	dec := xml.NewDecoder(r)
	// Reports may declare a legacy encoding such as ISO-8859-1
	dec.CharsetReader = charset.NewReaderLabel

	var root *xmlNode
	var stack []*xmlNode
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements: %s", n.name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.content = append(parent.content, xmlContent{elem: n})
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.content = append(parent.content, xmlContent{text: string(t)})
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

func (n *xmlNode) Name() string {
	return n.name
}

func (n *xmlNode) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *xmlNode) Children(tag string) []Node {
	var nodes []Node
	for _, c := range n.content {
		if c.elem != nil && (tag == "" || c.elem.name == tag) {
			nodes = append(nodes, c.elem)
		}
	}
	return nodes
}

func (n *xmlNode) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *xmlNode) writeText(b *strings.Builder) {
	for _, c := range n.content {
		if c.elem != nil {
			c.elem.writeText(b)
			continue
		}
		b.WriteString(c.text)
	}
}
