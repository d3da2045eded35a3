package sassgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	opts := DefaultOptions().Formatter

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rule gets braces and indentation",
			in:   ".a{@apply flex items-center;}",
			want: ".a {\n  @apply flex items-center;\n}\n",
		},
		{
			name: "declaration colon gets a space",
			in:   ".a{color:red;}",
			want: ".a {\n  color: red;\n}\n",
		},
		{
			name: "variant colons inside apply stay tight",
			in:   ".a{@apply md:flex 2xl:grid;}",
			want: ".a {\n  @apply md:flex 2xl:grid;\n}\n",
		},
		{
			name: "fraction classes keep their slash",
			in:   ".a{@apply w-1/2 translate-x-1/4;}",
			want: ".a {\n  @apply w-1/2 translate-x-1/4;\n}\n",
		},
		{
			name: "nested rules indent per level",
			in:   ".a{@apply p-4;p{color:red;}}",
			want: ".a {\n  @apply p-4;\n  p {\n    color: red;\n  }\n}\n",
		},
		{
			name: "comment header lands on its own line",
			in:   "/* Card -> 1 */.card{@apply card;}",
			want: "/* Card -> 1 */\n.card {\n  @apply card;\n}\n",
		},
		{
			name: "sibling rules stay adjacent",
			in:   "p{color:red;}b{color:blue;}",
			want: "p {\n  color: red;\n}\nb {\n  color: blue;\n}\n",
		},
		{
			name: "empty input stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.in, opts)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Format(got, opts), "second pass must be a no-op")
		})
	}
}

func TestFormatRegions(t *testing.T) {
	opts := DefaultOptions().Formatter

	t.Run("top level region passes through verbatim", func(t *testing.T) {
		in := "\n// #region STYLE #1\ncolor: red\n// #endregion\n"
		want := "// #region STYLE #1\ncolor: red\n// #endregion\n"
		got := Format(in, opts)
		assert.Equal(t, want, got)
		assert.Equal(t, got, Format(got, opts))
	})

	t.Run("nested region is indented but untouched", func(t *testing.T) {
		in := ".card{@apply p-4;\n// #region STYLE #1\nh1 { margin: 0; }\n// #endregion\n}"
		want := ".card {\n" +
			"  @apply p-4;\n" +
			"  // #region STYLE #1\n" +
			"  h1 { margin: 0; }\n" +
			"  // #endregion\n" +
			"}\n"
		got := Format(in, opts)
		assert.Equal(t, want, got)
		assert.Equal(t, got, Format(got, opts))
	})

	t.Run("adjacent regions keep their order", func(t *testing.T) {
		in := "\n// #region STYLE #1\na{}\n// #endregion\n\n// #region STYLE #2\nb{}\n// #endregion\n"
		want := "// #region STYLE #1\na{}\n// #endregion\n// #region STYLE #2\nb{}\n// #endregion\n"
		got := Format(in, opts)
		assert.Equal(t, want, got)
		assert.Equal(t, got, Format(got, opts))
	})

	t.Run("region content is never beautified", func(t *testing.T) {
		in := "\n// #region STYLE #1\n.messy   {color:red}\n// #endregion\n"
		got := Format(in, opts)
		assert.Contains(t, got, ".messy   {color:red}")
	})
}

func TestFormatApplyFixup(t *testing.T) {
	assert.Equal(t, "@apply flex;", fixApply("@applyflex;"))
	assert.Equal(t, "@apply flex;", fixApply("@apply  flex;"))
	assert.Equal(t, "@apply flex;", fixApply("@apply flex;"))
	assert.Equal(t, "@apply 2xl:grid;", fixApply("@apply2xl:grid;"))
}

func TestFormatOptionKnobs(t *testing.T) {
	t.Run("tab indentation", func(t *testing.T) {
		opts := DefaultOptions().Formatter
		opts.IndentChar = "\t"
		opts.IndentSize = 1
		assert.Equal(t, ".a {\n\tcolor: red;\n}\n", Format(".a{color:red;}", opts))
	})

	t.Run("no trailing newline", func(t *testing.T) {
		opts := DefaultOptions().Formatter
		opts.EndWithNewline = false
		assert.Equal(t, ".a {\n  color: red;\n}", Format(".a{color:red;}", opts))
	})

	t.Run("blank lines survive up to the cap", func(t *testing.T) {
		opts := DefaultOptions().Formatter
		in := ".a {\n  color: red;\n}\n\n\n\n.b {\n  color: blue;\n}\n"
		want := ".a {\n  color: red;\n}\n\n.b {\n  color: blue;\n}\n"
		got := Format(in, opts)
		assert.Equal(t, want, got)
		assert.Equal(t, got, Format(got, opts))
	})

	t.Run("blank lines collapse when preservation is off", func(t *testing.T) {
		opts := DefaultOptions().Formatter
		opts.PreserveNewlines = false
		in := ".a {\n  color: red;\n}\n\n\n.b {\n  color: blue;\n}\n"
		want := ".a {\n  color: red;\n}\n.b {\n  color: blue;\n}\n"
		assert.Equal(t, want, Format(in, opts))
	})

	t.Run("long apply lines wrap at the limit", func(t *testing.T) {
		opts := DefaultOptions().Formatter
		opts.WrapLineLength = 40
		in := ".a{@apply flex items-center justify-between rounded-lg;}"
		want := ".a {\n" +
			"  @apply flex items-center\n" +
			"    justify-between rounded-lg;\n" +
			"}\n"
		got := Format(in, opts)
		assert.Equal(t, want, got)
		assert.Equal(t, got, Format(got, opts))
	})
}
