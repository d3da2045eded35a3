package sassgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeName(t *testing.T) {
	plain := DefaultOptions()
	plain.PrintComments = false

	noComments := plain
	noComments.UseCommentBlocksAsClassName = false

	tests := []struct {
		name  string
		node  *styledNode
		depth int
		opts  Options
		want  string
	}{
		{
			name:  "comment slug wins",
			node:  &styledNode{tag: "div", comment: "Card Title"},
			depth: 2,
			opts:  plain,
			want:  ".card-title",
		},
		{
			name:  "non-generic tag emits bare selector",
			node:  &styledNode{tag: "button"},
			depth: 1,
			opts:  plain,
			want:  "button",
		},
		{
			name:  "generic div falls back to positional class",
			node:  &styledNode{tag: "div"},
			depth: 3,
			opts:  plain,
			want:  ".class-div-3",
		},
		{
			name:  "generic span falls back too",
			node:  &styledNode{tag: "span"},
			depth: 0,
			opts:  plain,
			want:  ".class-span-0",
		},
		{
			name:  "comment ignored when comment naming is off",
			node:  &styledNode{tag: "div", comment: "Card"},
			depth: 1,
			opts:  noComments,
			want:  ".class-div-1",
		},
		{
			name:  "comment ignored falls through to bare tag",
			node:  &styledNode{tag: "nav", comment: "Menu"},
			depth: 1,
			opts:  noComments,
			want:  "nav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizeName(tt.node, tt.depth, tt.opts))
		})
	}
}

func TestSynthesizeNameHeader(t *testing.T) {
	opts := DefaultOptions()

	got := synthesizeName(&styledNode{tag: "div", comment: "Card", order: 2}, 0, opts)
	assert.Equal(t, "/* Card -> 2 */.card", got)

	got = synthesizeName(&styledNode{tag: "div", order: 1}, 0, opts)
	assert.Equal(t, "/* div -> 1 */.class-div-0", got)
}

func TestSynthesizeNamePrefixSuffix(t *testing.T) {
	opts := DefaultOptions()
	opts.PrintComments = false
	opts.ClassName.Prefix = "tw-"
	opts.ClassName.Suffix = "-v1"

	got := synthesizeName(&styledNode{tag: "div", comment: "Card Title"}, 0, opts)
	assert.Equal(t, ".tw-card-title-v1", got)
}

func TestSlugClass(t *testing.T) {
	base := ClassNameOptions{Lowercase: true, ReplaceWith: "-"}

	tests := []struct {
		name   string
		text   string
		maxLen int
		opts   ClassNameOptions
		want   string
	}{
		{
			name: "words join with replacement",
			text: "Card Title", maxLen: 0, opts: base,
			want: "card-title",
		},
		{
			name: "punctuation runs collapse",
			text: "What's up?! Doc", maxLen: 0, opts: base,
			want: "what-s-up-doc",
		},
		{
			name: "leading and trailing junk dropped",
			text: "-- Card --", maxLen: 0, opts: base,
			want: "card",
		},
		{
			name: "truncation keeps trailing separator",
			text: "card title", maxLen: 5, opts: base,
			want: "card-",
		},
		{
			name: "zero max length means unlimited",
			text: "a very long comment label indeed", maxLen: 0, opts: base,
			want: "a-very-long-comment-label-indeed",
		},
		{
			name: "case preserved when lowercase is off",
			text: "Card Title", maxLen: 0,
			opts: ClassNameOptions{ReplaceWith: "-"},
			want: "Card-Title",
		},
		{
			name: "custom replacement",
			text: "card title", maxLen: 0,
			opts: ClassNameOptions{Lowercase: true, ReplaceWith: "_"},
			want: "card_title",
		},
		{
			name: "empty replacement defaults to dash",
			text: "card title", maxLen: 0,
			opts: ClassNameOptions{Lowercase: true},
			want: "card-title",
		},
		{
			name: "digits survive",
			text: "Grid 2col", maxLen: 0, opts: base,
			want: "grid-2col",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugClass(tt.text, tt.maxLen, tt.opts))
		})
	}
}
