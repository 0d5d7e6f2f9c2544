package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// CollapseSpace collapses every run of whitespace (including NBSP) to a
// single space and trims the ends. The empty string stays empty.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// allNodes returns every node under root in document (pre-order) order,
// root included.
func allNodes(root *html.Node) []*html.Node {
	var nodes []*html.Node
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		nodes = append(nodes, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)
	return nodes
}

// textNodes returns every text node under root in document order.
func textNodes(root *html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range allNodes(root) {
		if n.Type == html.TextNode {
			out = append(out, n)
		}
	}
	return out
}

// directText returns the first non-empty collapsed text among n's direct
// text-node children.
func directText(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		if t := CollapseSpace(c.Data); t != "" {
			return t
		}
	}
	return ""
}

// fullText returns the collapsed text of all text nodes under n.
func fullText(n *html.Node) string {
	var b strings.Builder
	for _, t := range textNodes(n) {
		b.WriteString(t.Data)
		b.WriteByte(' ')
	}
	return CollapseSpace(b.String())
}

// isAncestor reports whether a is an ancestor of n.
func isAncestor(a, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}

// following returns the nodes after n in document order, excluding n's
// own descendants.
func following(root, n *html.Node) []*html.Node {
	var out []*html.Node
	seen := false
	for _, m := range allNodes(root) {
		if m == n {
			seen = true
			continue
		}
		if !seen || isAncestor(n, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// preceding returns the nodes before n in document order, excluding n's
// ancestors.
func preceding(root, n *html.Node) []*html.Node {
	var out []*html.Node
	for _, m := range allNodes(root) {
		if m == n {
			break
		}
		if isAncestor(m, n) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// isElement reports whether n is an element with one of the given names.
func isElement(n *html.Node, names ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, name := range names {
		if n.Data == name {
			return true
		}
	}
	return false
}
