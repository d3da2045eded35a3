package report

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// OutputFormat selects how a run report is rendered.
type OutputFormat int

const (
	// OutputText prints per-file lines and a summary for terminals.
	OutputText OutputFormat = iota
	// OutputJSON prints a machine-readable report.
	OutputJSON
)

// DetermineOutputFormat maps the --report flag value to a format, falling
// back to text for anything unrecognized.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	if formatFlag == "json" {
		return OutputJSON
	}
	return OutputText
}

// WriteOutput renders the run report in the given format.
func WriteOutput(w io.Writer, run RunReport, format OutputFormat, cfg Config) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, run); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, cfg)
		for _, fr := range run.Files {
			reporter.PrintFile(fr)
		}
		reporter.PrintSummary(run)

		if cfg.Verbose {
			verbose := NewVerboseReporter(w, reporter.UseColors())
			verbose.PrintStatistics(run)
			verbose.PrintWarnings(run)
		}
	}
}

// JSONOutput is the structured export schema for a run.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
}

// JSONSummary contains run-wide counts.
type JSONSummary struct {
	FilesDiscovered int   `json:"files_discovered"`
	FilesConverted  int   `json:"files_converted"`
	FilesSkipped    int   `json:"files_skipped"`
	FilesFailed     int   `json:"files_failed"`
	NodesRetained   int   `json:"nodes_retained"`
	StyleRegions    int   `json:"style_regions"`
	DurationMS      int64 `json:"duration_ms"`
}

// JSONFile describes one input file's outcome.
type JSONFile struct {
	Input        string   `json:"input"`
	Output       string   `json:"output,omitempty"`
	Status       string   `json:"status"`
	Error        string   `json:"error,omitempty"`
	Retained     int      `json:"retained"`
	StyleRegions int      `json:"style_regions"`
	Warnings     []string `json:"warnings,omitempty"`
}

// WriteJSON writes the run report as indented JSON.
func WriteJSON(w io.Writer, run RunReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(run))
}

// buildJSONOutput converts a RunReport to the export schema.
func buildJSONOutput(run RunReport) JSONOutput {
	converted, skipped, failed := run.Counts()
	retained, regions, _, _, _ := run.Totals()

	files := make([]JSONFile, len(run.Files))
	for i, fr := range run.Files {
		files[i] = JSONFile{
			Input:        fr.Input,
			Output:       fr.Output,
			Status:       fr.Status(),
			Error:        fr.Err,
			Retained:     fr.Retained,
			StyleRegions: fr.StyleRegions,
			Warnings:     fr.Warnings,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesDiscovered: run.FilesDiscovered,
			FilesConverted:  converted,
			FilesSkipped:    skipped + run.FilesSkippedByScan,
			FilesFailed:     failed,
			NodesRetained:   retained,
			StyleRegions:    regions,
			DurationMS:      run.Duration.Milliseconds(),
		},
		Files: files,
	}
}
