package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

type htmlNode struct {
	n *html.Node
}

// ParseHTML parses a possibly malformed HTML document and returns its
// html element. Missing structural elements are inserted the way browsers
// do, so the result always has html, head and body elements.
func ParseHTML(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "html" {
			return htmlNode{n: c}, nil
		}
	}
	return htmlNode{n: doc}, nil
}

func (h htmlNode) Name() string {
	return h.n.Data
}

func (h htmlNode) Attr(name string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (h htmlNode) Children(tag string) []Node {
	var nodes []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (tag == "" || c.Data == tag) {
			nodes = append(nodes, htmlNode{n: c})
		}
	}
	return nodes
}

func (h htmlNode) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(h.n)
	return b.String()
}
