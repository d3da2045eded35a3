package sassgen

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nodeKind identifies the variant of a parsed node.
type nodeKind int

const (
	kindElement nodeKind = iota
	kindText
	kindComment
)

// node is one entry of the raw parse tree handed to the normalizer.
// Exactly the fields the parser produced; enrichment lives on styledNode.
type node struct {
	kind     nodeKind
	tag      string // element tag, lower-cased by the parser
	content  string // text or comment body
	attrs    []attr // raw attributes in document order
	children []*node
}

type attr struct {
	key   string
	value string
}

// styledNode is a node retained by normalization, carrying the derived
// metadata the builder consumes. Normalization builds these fresh; parse
// nodes are never mutated.
type styledNode struct {
	tag        string
	comment    string      // label derived from preceding sibling comments
	order      int         // nesting depth at normalization time, root children = 1
	attrs      *styleAttrs // nil when the element carried neither class nor style
	children   []*styledNode
	styleBlock bool // synthetic <style> hoist, rendered as a pass-through region
}

// styleAttrs holds the two attributes the stylesheet cares about. Empty
// strings mean absent (or empty after cleaning).
type styleAttrs struct {
	class string
	style string
}

// parseFragment parses input as an HTML fragment in body context and adapts
// the result. Implied html/head/body wrappers of full-document inputs are
// dropped by the fragment algorithm; <style> elements and comments survive.
func parseFragment(input string) ([]*node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	roots, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return adaptAll(roots), nil
}

// parseScoped parses input as a full document and returns only the subtrees
// matching selector, each becoming a top-level candidate.
func parseScoped(input, selector string) ([]*node, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	return adaptAll(doc.FindMatcher(matcher).Nodes), nil
}

func adaptAll(roots []*html.Node) []*node {
	var nodes []*node
	for _, r := range roots {
		if n := adapt(r); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// adapt maps an x/net/html node onto the variant model. Doctypes and other
// non-content nodes map to nil.
func adapt(hn *html.Node) *node {
	switch hn.Type {
	case html.ElementNode:
		n := &node{kind: kindElement, tag: hn.Data}
		for _, a := range hn.Attr {
			n.attrs = append(n.attrs, attr{key: a.Key, value: a.Val})
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if cn := adapt(c); cn != nil {
				n.children = append(n.children, cn)
			}
		}
		return n
	case html.TextNode:
		return &node{kind: kindText, content: hn.Data}
	case html.CommentNode:
		return &node{kind: kindComment, content: hn.Data}
	default:
		return nil
	}
}
