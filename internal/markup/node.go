// Package markup gives strict XML and tag-soup HTML documents one small
// query interface, so report parsers do not care which dialect they read.
package markup

import (
	"strconv"
	"strings"
)

// Node is an element of a parsed document
type Node interface {
	// Name returns the element's tag name.
	Name() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
	// Children returns the child elements with the given tag, or all child
	// elements if tag is empty.
	Children(tag string) []Node
	// Text returns the text content of the element and its descendants.
	Text() string
}

// Find selects descendants of n by a path of child steps, like a minimal
// XPath. A step is a tag name optionally followed by a 1-based position,
// e.g. Find(row, "td[5]", "table", "tr", "td", "tt").
//
// A "tr" step directly below a "table" also matches rows wrapped in a
// tbody, which tag-soup parsers insert implicitly.
func Find(n Node, steps ...string) []Node {
	current := []Node{n}
	for _, step := range steps {
		tag, pos := parseStep(step)
		var next []Node
		for _, c := range current {
			matches := children(c, tag)
			if pos > 0 {
				if pos <= len(matches) {
					next = append(next, matches[pos-1])
				}
				continue
			}
			next = append(next, matches...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// FindText returns the trimmed text of the first node selected by steps.
func FindText(n Node, steps ...string) (string, bool) {
	nodes := Find(n, steps...)
	if len(nodes) == 0 {
		return "", false
	}
	return strings.TrimSpace(nodes[0].Text()), true
}

func children(n Node, tag string) []Node {
	if tag != "tr" || n.Name() != "table" {
		return n.Children(tag)
	}
	var rows []Node
	for _, c := range n.Children("") {
		switch c.Name() {
		case "tr":
			rows = append(rows, c)
		case "tbody":
			rows = append(rows, c.Children("tr")...)
		}
	}
	return rows
}

func parseStep(step string) (string, int) {
	open := strings.IndexByte(step, '[')
	if open < 0 || !strings.HasSuffix(step, "]") {
		return step, 0
	}
	pos, err := strconv.Atoi(step[open+1 : len(step)-1])
	if err != nil || pos < 1 {
		return step[:open], 0
	}
	return step[:open], pos
}
