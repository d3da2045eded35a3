package sassgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// buildHTML runs parse + normalize + build with comment headers off so the
// raw structural output stays easy to assert on.
func buildHTML(t *testing.T, input string, opts Options) string {
	t.Helper()
	nodes, err := parseFragment(input)
	require.NoError(t, err)
	nz := &normalizer{log: zap.NewNop()}
	return buildNodes(nz.normalize(nodes, 1), 0, opts)
}

func TestBuildNodes(t *testing.T) {
	opts := DefaultOptions()
	opts.PrintComments = false

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "class becomes apply directive",
			input: `<div class="flex items-center"></div>`,
			want:  ".class-div-0{@apply flex items-center;}",
		},
		{
			name:  "inline style gets trailing semicolon",
			input: `<p style="color:red"></p>`,
			want:  "p{color:red;}",
		},
		{
			name:  "existing semicolon is not doubled",
			input: `<p style="color:red;"></p>`,
			want:  "p{color:red;}",
		},
		{
			name:  "apply precedes inline style",
			input: `<p class="lead" style="color:red"></p>`,
			want:  "p{@apply lead;color:red;}",
		},
		{
			name:  "children nest inside parent block",
			input: `<div class="a"><p class="b"></p></div>`,
			want:  ".class-div-0{@apply a;p{@apply b;}}",
		},
		{
			name:  "fallback depth rises per nesting level",
			input: `<div class=""><div class="x"></div></div>`,
			want:  ".class-div-0{.class-div-1{@apply x;}}",
		},
		{
			name:  "empty bodies are dropped",
			input: `<div class=""><p class=""></p></div>`,
			want:  "",
		},
		{
			name:  "siblings concatenate without separator",
			input: `<p class="a"></p><p class="b"></p>`,
			want:  "p{@apply a;}p{@apply b;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildHTML(t, tt.input, opts))
		})
	}
}

func TestBuildNodesStyleRegions(t *testing.T) {
	opts := DefaultOptions()
	opts.PrintComments = false

	t.Run("region counter is one-based per level", func(t *testing.T) {
		got := buildHTML(t, `<style>a{}</style><style>b{}</style>`, opts)
		want := "\n// #region STYLE #1\na{}\n// #endregion\n" +
			"\n// #region STYLE #2\nb{}\n// #endregion\n"
		assert.Equal(t, want, got)
	})

	t.Run("nested region restarts numbering", func(t *testing.T) {
		got := buildHTML(t, `<style>a{}</style><div class="x"><style>b{}</style></div>`, opts)
		want := "\n// #region STYLE #1\na{}\n// #endregion\n" +
			".class-div-0{@apply x;\n// #region STYLE #1\nb{}\n// #endregion\n}"
		assert.Equal(t, want, got)
	})

	t.Run("region content passes through verbatim", func(t *testing.T) {
		got := buildHTML(t, `<style>color: red</style>`, opts)
		assert.Equal(t, "\n// #region STYLE #1\ncolor: red\n// #endregion\n", got)
	})
}

func TestBuildNodesCommentHeaders(t *testing.T) {
	got := buildHTML(t, `<!-- Card --><div class="card"></div>`, DefaultOptions())
	assert.Equal(t, "/* Card -> 1 */.card{@apply card;}", got)
}
