package sassgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gosimple/slug"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics for a batch run.
type ScanStats struct {
	FilesDiscovered int // files matched by the glob patterns
	FilesScanned    int // files accepted for conversion
	FilesSkipped    int // files dropped by filtering
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// skipDirs are path segments that never contain authored markup.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
}

// isHTMLFile reports whether path has an HTML extension.
func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// isPartial reports whether path names an underscore-prefixed partial,
// which by convention is inlined elsewhere and not converted on its own.
func isPartial(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "_")
}

func inSkippedDir(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if skipDirs[seg] {
			return true
		}
	}
	return false
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a discovered file is excluded from the run.
//
// Two-layer filtering:
// 1. Name checks (fast): extension, partial prefix, well-known build dirs.
// 2. Gitignore check: skip gitignored files (only for relative paths, so
// inputs outside the project are unaffected by the project's .gitignore).
func shouldSkipFile(path string) bool {
	if !isHTMLFile(path) || isPartial(path) || inSkippedDir(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles expands glob patterns into the HTML files eligible for
// conversion, deduplicated and sorted.
func ScanFiles(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	var stats ScanStats

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// OutputPath derives the destination stylesheet path for an input HTML
// file. The file keeps its base name with an .scss extension and lands next
// to its source unless outDir is set; slugName additionally normalizes the
// base name into a URL-safe slug.
func OutputPath(htmlPath, outDir string, slugName bool) string {
	base := strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath))
	if slugName {
		base = slug.Make(base)
	}
	dir := filepath.Dir(htmlPath)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, base+".scss")
}

// GetRelativePath returns a path relative to the current working directory,
// falling back to the input when it cannot be derived.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
