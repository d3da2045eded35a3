// Package report renders batch conversion results for terminals and for
// JSON consumers.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// FileReport is the outcome of converting a single input file.
type FileReport struct {
	Input   string
	Output  string // destination path, empty when written to stdout
	Skipped bool   // true when the input had no styled content
	Err     string // error text, empty on success

	Retained      int
	StyleRegions  int
	CommentNames  int
	TagNames      int
	FallbackNames int
	Warnings      []string
}

// Status classifies the file outcome for machine-readable output.
func (fr FileReport) Status() string {
	switch {
	case fr.Err != "":
		return "failed"
	case fr.Skipped:
		return "skipped"
	default:
		return "converted"
	}
}

// RunReport aggregates one batch run. FilesSkippedByScan counts inputs the
// scanner filtered out before conversion (partials, ignored files), which
// never appear in Files.
type RunReport struct {
	Files              []FileReport
	FilesDiscovered    int
	FilesSkippedByScan int
	Duration           time.Duration
}

// Counts returns the number of converted, skipped and failed files.
func (run RunReport) Counts() (converted, skipped, failed int) {
	for _, fr := range run.Files {
		switch fr.Status() {
		case "failed":
			failed++
		case "skipped":
			skipped++
		default:
			converted++
		}
	}
	return converted, skipped, failed
}

// WarningCount returns the total number of warnings across all files.
func (run RunReport) WarningCount() int {
	n := 0
	for _, fr := range run.Files {
		n += len(fr.Warnings)
	}
	return n
}

// Totals sums the per-file pipeline counters.
func (run RunReport) Totals() (retained, regions, comments, tags, fallbacks int) {
	for _, fr := range run.Files {
		retained += fr.Retained
		regions += fr.StyleRegions
		comments += fr.CommentNames
		tags += fr.TagNames
		fallbacks += fr.FallbackNames
	}
	return retained, regions, comments, tags, fallbacks
}

// Config controls how run results are rendered.
type Config struct {
	UseColors bool // force colors on regardless of environment
	Verbose   bool // include statistics and warnings in text output
}

// Reporter prints per-file result lines and the run summary.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, cfg Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(cfg),
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(cfg Config) bool {
	// Explicit flag wins
	if cfg.UseColors {
		return true
	}

	// FORCE_COLOR convention (GitHub Actions, CI wrappers)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintFile outputs a single result line in the form
// "input: destination (details)".
func (r *Reporter) PrintFile(fr FileReport) {
	name := RenderStyle(StyleCyan, fr.Input+":", r.useColors)

	switch {
	case fr.Err != "":
		fmt.Fprintf(r.w, "%s %s\n", name, RenderStyle(StyleRed, fr.Err, r.useColors))
	case fr.Skipped:
		fmt.Fprintf(r.w, "%s %s\n", name, RenderStyle(StyleGray, "no styled content", r.useColors))
	default:
		dest := fr.Output
		if dest == "" {
			dest = "stdout"
		}
		detail := fmt.Sprintf("(%s, %s)",
			pluralizeCount(fr.Retained, "node", "nodes"),
			pluralizeCount(fr.StyleRegions, "style region", "style regions"))
		fmt.Fprintf(r.w, "%s %s %s\n", name, dest, RenderStyle(StyleGray, detail, r.useColors))
	}
}

// PrintSummary outputs the run totals after the per-file lines.
func (r *Reporter) PrintSummary(run RunReport) {
	converted, skipped, failed := run.Counts()

	fmt.Fprintln(r.w, "")

	line := fmt.Sprintf("Converted %s", pluralizeCount(converted, "file", "files"))
	var extras []string
	if skipped > 0 {
		extras = append(extras, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		extras = append(extras, fmt.Sprintf("%d failed", failed))
	}
	if len(extras) > 0 {
		line += " (" + strings.Join(extras, ", ") + ")"
	}
	if run.Duration > 0 {
		line += " in " + run.Duration.Round(time.Millisecond).String()
	}

	style := StyleGreen
	if failed > 0 {
		style = StyleRed
	}
	fmt.Fprintln(r.w, RenderStyle(style, line, r.useColors))

	if n := run.WarningCount(); n > 0 {
		hint := fmt.Sprintf("Hint: %s emitted; run with --verbose to see them",
			pluralizeCount(n, "warning", "warnings"))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, hint, r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
