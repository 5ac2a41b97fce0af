// Package view provides read-only helpers over the HTML view tree.
//
// The view tree is the [html.Node] structure produced by golang.org/x/net/html.
// Conversion never mutates it; this package only inspects names, attributes
// and text, and degrades gracefully on malformed input (a missing or garbage
// span attribute counts as one column).
package view

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from r into a view tree.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, name string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == name
}

// Name returns the element's tag name, or "" for non-element nodes.
func Name(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Span parses the named attribute as a span count. Absent, non-numeric or
// non-positive values all yield 1: scanning never fails on malformed input.
func Span(n *html.Node, key string) int {
	val, ok := Attr(n, key)
	if !ok {
		return 1
	}
	span, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || span < 1 {
		return 1
	}
	return span
}

// ColSpan returns the cell's colspan, defaulting to 1.
func ColSpan(n *html.Node) int {
	return Span(n, "colspan")
}

// RowSpan returns the cell's rowspan, defaulting to 1.
func RowSpan(n *html.Node) int {
	return Span(n, "rowspan")
}

// IsCell reports whether n is a th or td element.
func IsCell(n *html.Node) bool {
	return IsElement(n, "th") || IsElement(n, "td")
}

// FindElement finds the first element with the given tag name in the subtree
// rooted at n, in document order.
func FindElement(n *html.Node, name string) *html.Node {
	if IsElement(n, name) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// Text extracts all text content from a node and its descendants.
func Text(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
