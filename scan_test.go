package sassgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "plain html file", path: "pages/index.html", want: false},
		{name: "htm extension", path: "pages/legacy.htm", want: false},
		{name: "uppercase extension", path: "pages/INDEX.HTML", want: false},
		{name: "partial prefix", path: "pages/_header.html", want: true},
		{name: "non-html file", path: "pages/styles.scss", want: true},
		{name: "node_modules", path: "node_modules/pkg/index.html", want: true},
		{name: "dist output", path: "dist/index.html", want: true},
		{name: "vendored tree", path: "vendor/widget/index.html", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSkipFile(tt.path))
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("<div class=\"x\"></div>"), 0o644))
	}
	write("index.html")
	write("_partial.html")
	write("sub/about.html")
	write("node_modules/pkg/page.html")
	write("notes.txt")

	files, stats, err := ScanFiles([]string{filepath.Join(dir, "**/*.html")})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "index.html"),
		filepath.Join(dir, "sub/about.html"),
	}
	assert.Equal(t, want, files)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesSkipped)
}

func TestScanFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p></p>"), 0o644))

	files, stats, err := ScanFiles([]string{
		filepath.Join(dir, "*.html"),
		filepath.Join(dir, "**/*.html"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
	assert.Equal(t, 1, stats.FilesDiscovered)
}

func TestScanFilesBadPattern(t *testing.T) {
	_, _, err := ScanFiles([]string{"[("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad pattern")
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		htmlPath string
		outDir   string
		slugName bool
		want     string
	}{
		{
			name:     "next to source",
			htmlPath: "pages/index.html",
			want:     "pages/index.scss",
		},
		{
			name:     "explicit output dir",
			htmlPath: "pages/index.html",
			outDir:   "styles",
			want:     "styles/index.scss",
		},
		{
			name:     "htm extension swapped",
			htmlPath: "legacy.htm",
			want:     "legacy.scss",
		},
		{
			name:     "slugged base name",
			htmlPath: "pages/My Fancy Page.html",
			slugName: true,
			want:     "pages/my-fancy-page.scss",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.htmlPath, tt.outDir, tt.slugName))
		})
	}
}
