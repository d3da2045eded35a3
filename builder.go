package sassgen

import (
	"fmt"
	"strings"
)

// buildNodes renders one level of retained nodes into raw SCSS text with no
// separators or indentation; layout belongs entirely to the formatter.
//
// depth is the fallback-naming counter, not structural nesting: it starts at
// 0 for the top-level call and goes up by one on entry to each recursion
// into a node's children. Nesting itself is carried by the call structure.
func buildNodes(nodes []*styledNode, depth int, opts Options) string {
	var b strings.Builder
	styleRegion := 0

	for _, sn := range nodes {
		if sn.attrs == nil && sn.children == nil {
			// Upstream filtering should have removed these already.
			continue
		}

		if sn.styleBlock {
			styleRegion++
			fmt.Fprintf(&b, "\n// #region STYLE #%d\n%s\n// #endregion\n",
				styleRegion, sn.attrs.style)
			continue
		}

		var nested string
		if len(sn.children) > 0 {
			nested = buildNodes(sn.children, depth+1, opts)
		}

		var body strings.Builder
		if sn.attrs != nil {
			if sn.attrs.class != "" {
				body.WriteString("@apply " + sn.attrs.class + ";")
			}
			if sn.attrs.style != "" {
				body.WriteString(sn.attrs.style)
				if !strings.HasSuffix(sn.attrs.style, ";") {
					body.WriteString(";")
				}
			}
		}
		body.WriteString(nested)

		if body.Len() == 0 {
			continue
		}
		b.WriteString(synthesizeName(sn, depth, opts))
		b.WriteString("{")
		b.WriteString(body.String())
		b.WriteString("}")
	}

	return b.String()
}
