package sassgen

import (
	"slices"
	"strings"

	"go.uber.org/zap"
)

const (
	tagStyle = "style"

	// styleBlockLabel is the display label carried by synthetic style nodes.
	styleBlockLabel = "STYLE BLOCK"
)

// normalizer filters a raw parse tree down to its style-bearing nodes and
// derives per-node metadata. It accumulates non-fatal warnings for the run
// result.
type normalizer struct {
	log      *zap.Logger
	warnings []string
}

// normalize returns the retained nodes at this level: synthetic style hoists
// first, then surviving elements. It returns nil, not an empty slice, when
// nothing survives, so callers can distinguish "nothing here" from "empty".
//
// Per level: <style> elements are hoisted (see hoistStyles), elements and
// comments form the parent-candidate list, plain text is dropped. An element
// is retained only if it kept class/style attributes or retained children.
func (nz *normalizer) normalize(nodes []*node, depth int) []*styledNode {
	if len(nodes) == 0 {
		return nil
	}

	var styleEls, parents []*node
	for _, nd := range nodes {
		switch {
		case nd.kind == kindElement && nd.tag == tagStyle:
			styleEls = append(styleEls, nd)
		case nd.kind == kindElement || nd.kind == kindComment:
			parents = append(parents, nd)
		}
	}

	out := nz.hoistStyles(styleEls)

	for i, nd := range parents {
		if nd.kind != kindElement {
			// Comments only feed the labels of following elements.
			continue
		}

		sn := &styledNode{
			tag:     nd.tag,
			comment: precedingComment(parents, i),
			order:   depth,
			attrs:   styleAttrsFrom(nd.attrs),
		}
		sn.children = nz.normalize(nd.children, depth+1)

		if sn.attrs == nil && sn.children == nil {
			nz.log.Debug("dropping unstyled element",
				zap.String("tag", nd.tag),
				zap.Int("depth", depth))
			continue
		}
		out = append(out, sn)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// precedingComment derives the label for parents[i] from at most two
// immediate predecessors in the parent-candidate list. Collection runs
// backward (nearest first), keeps comment-typed entries whose cleaned text is
// non-empty, then reverses before joining with ", ". With two preceding
// comments the farther one therefore leads the label; that ordering is a
// load-bearing part of the contract.
func precedingComment(parents []*node, i int) string {
	var labels []string
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		p := parents[j]
		if p.kind != kindComment {
			continue
		}
		if text := CleanComment(p.content); text != "" {
			labels = append(labels, text)
		}
	}
	slices.Reverse(labels)
	return strings.Join(labels, ", ")
}

// styleAttrsFrom extracts the class and style attribute values, first
// occurrence each, text-cleaned. It returns nil when the element carries
// neither attribute; a present-but-empty attribute still yields a record so
// retention matches attribute presence.
func styleAttrsFrom(attrs []attr) *styleAttrs {
	var sa styleAttrs
	var found, haveClass, haveStyle bool
	for _, a := range attrs {
		switch a.key {
		case "class":
			if !haveClass {
				haveClass, found = true, true
				sa.class = CleanText(a.value)
			}
		case "style":
			if !haveStyle {
				haveStyle, found = true, true
				sa.style = CleanText(a.value)
			}
		}
	}
	if !found {
		return nil
	}
	return &sa
}

// hoistStyles converts raw <style> elements into synthetic style nodes. The
// block text is the concatenation of all direct children's content in
// document order, taken verbatim with no type gate and no CSS parsing.
// Whitespace-only blocks are dropped with a warning.
func (nz *normalizer) hoistStyles(styleEls []*node) []*styledNode {
	var out []*styledNode
	for _, el := range styleEls {
		var b strings.Builder
		for _, c := range el.children {
			b.WriteString(c.content)
		}
		text := b.String()
		if strings.TrimSpace(text) == "" {
			nz.warnings = append(nz.warnings, "empty <style> block dropped")
			nz.log.Debug("empty style block dropped")
			continue
		}
		out = append(out, &styledNode{
			tag:        tagStyle,
			comment:    styleBlockLabel,
			attrs:      &styleAttrs{style: text},
			styleBlock: true,
		})
	}
	return out
}
