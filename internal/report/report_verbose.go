package report

import (
	"fmt"
	"io"
)

// VerboseReporter prints run statistics and collected warnings.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs the run-wide pipeline counters.
func (r *VerboseReporter) PrintStatistics(run RunReport) {
	converted, skipped, failed := run.Counts()
	retained, regions, comments, tags, fallbacks := run.Totals()

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Conversion Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Discovered:   %d\n", run.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Converted:    %d\n", converted)
	fmt.Fprintf(r.w, "Files Skipped:      %d\n", skipped+run.FilesSkippedByScan)
	fmt.Fprintf(r.w, "Files Failed:       %d\n", failed)
	fmt.Fprintf(r.w, "Nodes Retained:     %d\n", retained)
	fmt.Fprintf(r.w, "Style Regions:      %d\n", regions)
	fmt.Fprintf(r.w, "Comment Selectors:  %d\n", comments)
	fmt.Fprintf(r.w, "Tag Selectors:      %d\n", tags)
	fmt.Fprintf(r.w, "Fallback Selectors: %d\n", fallbacks)
}

// PrintWarnings lists every warning with the file it came from.
func (r *VerboseReporter) PrintWarnings(run RunReport) {
	if run.WarningCount() == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, fr := range run.Files {
		for _, warning := range fr.Warnings {
			fmt.Fprintf(r.w, "• %s: %s\n", fr.Input, warning)
		}
	}
}
