package sassgen

import (
	"fmt"
	"strings"
	"unicode"
)

// genericTags are container tags too common to emit as bare type selectors.
// Nodes with these tags and no usable comment get a positional fallback name.
var genericTags = map[string]bool{
	"div":  true,
	"span": true,
}

// synthesizeName renders the selector text for a retained node, optionally
// prefixed with a `/* label -> order */` header comment. The header falls
// back to the tag name when no comment was derived and is cosmetic output
// only, never part of the selector.
//
// Selector precedence: slugged comment (when enabled and present), bare tag
// for non-generic tags, then `.class-<tag>-<depth>` where depth is the
// builder's fallback-naming counter.
func synthesizeName(sn *styledNode, depth int, opts Options) string {
	var b strings.Builder

	if opts.PrintComments {
		label := sn.comment
		if label == "" {
			label = sn.tag
		}
		fmt.Fprintf(&b, "/* %s -> %d */", label, sn.order)
	}

	switch {
	case sn.comment != "" && opts.UseCommentBlocksAsClassName:
		slug := slugClass(sn.comment, opts.MaxClassNameLength, opts.ClassName)
		b.WriteString("." + opts.ClassName.Prefix + slug + opts.ClassName.Suffix)
	case !genericTags[sn.tag]:
		b.WriteString(sn.tag)
	default:
		fmt.Fprintf(&b, ".class-%s-%d", sn.tag, depth)
	}

	return b.String()
}

// slugClass turns free text into a selector-safe token. Letters and digits
// are kept, each interior run of anything else collapses to the replacement
// string, and the result is case-folded per opts and truncated to maxLen
// runes (0 means unlimited). Truncation may leave a trailing replacement;
// that is kept as-is so truncated names stay stable.
func slugClass(text string, maxLen int, opts ClassNameOptions) string {
	sep := opts.ReplaceWith
	if sep == "" {
		sep = "-"
	}
	if opts.Lowercase {
		text = strings.ToLower(text)
	}

	var b strings.Builder
	pending := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending {
				b.WriteString(sep)
				pending = false
			}
			b.WriteRune(r)
		} else if b.Len() > 0 {
			pending = true
		}
	}

	slug := b.String()
	if maxLen > 0 {
		if runes := []rune(slug); len(runes) > maxLen {
			slug = string(runes[:maxLen])
		}
	}
	return slug
}
