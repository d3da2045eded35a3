package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/sassgen"
	"github.com/yacobolo/sassgen/internal/report"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:     "convert [files or globs]",
	Aliases: []string{"gen"},
	Short:   "Convert HTML files to SCSS",
	Long: `Convert HTML files into nested SCSS stylesheets.
Each input file produces one .scss file next to it (or under --out-dir).
Pass "-" as the only argument to read markup from stdin and write the
stylesheet to stdout.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for HTML files when no args are given")
	f.String("out-dir", "", "Directory for generated .scss files (default: next to each input)")
	f.Bool("stdout", false, "Print generated SCSS to stdout instead of writing files")
	f.String("selector", "", "Only convert elements matching this CSS selector")
	f.Bool("slug-names", false, "Slug output file names")
	f.String("report", "text", "Report format: text|json")

	f.Bool("format", true, "Format the generated SCSS")
	f.Bool("comment-names", true, "Derive class names from preceding comments")
	f.Bool("print-comments", true, "Emit label headers above selectors")
	f.Int("max-class-length", 50, "Max class name length (0 = unlimited)")

	f.Int("indent-size", 2, "Spaces per indent level")
	f.String("indent-char", " ", "Indent character")
	f.Bool("preserve-newlines", true, "Keep blank lines from the input")
	f.Int("max-preserve-newlines", 1, "Cap on consecutive preserved blank lines")
	f.Bool("newline-at-end", true, "End output with a newline")
	f.Int("wrap-line-length", 0, "Wrap lines longer than this (0 = off)")
	f.Bool("indent-empty-lines", false, "Indent preserved blank lines")

	f.Bool("lowercase", true, "Lowercase slugged class names")
	f.String("replace-with", "-", "Replacement for non-alphanumeric runs in class names")
	f.String("prefix", "", "Class name prefix")
	f.String("suffix", "", "Class name suffix")
}

// convertTarget bundles the per-run destination settings.
type convertTarget struct {
	selector  string
	outDir    string
	slugNames bool
	toStdout  bool
}

func runConvert(_ *cobra.Command, args []string) error {
	start := time.Now()
	opts := buildConvertOptions()

	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	target := convertTarget{
		selector:  getStringWithFallback("selector", "convert.selector", ""),
		outDir:    getStringWithFallback("out-dir", "convert.out-dir", ""),
		slugNames: getBoolWithFallback("slug-names", "convert.slug-names", false),
		toStdout:  getBoolWithFallback("stdout", "convert.stdout", false),
	}

	log := newLogger(verbose && !quiet)
	defer func() { _ = log.Sync() }()
	conv := sassgen.NewConverter(log)

	if len(args) == 1 && args[0] == "-" {
		return convertStdin(conv, opts, target.selector)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = includePatterns()
	}

	files, stats, err := sassgen.ScanFiles(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no HTML files matched %s", strings.Join(patterns, ", "))
	}

	run := report.RunReport{
		FilesDiscovered:    stats.FilesDiscovered,
		FilesSkippedByScan: stats.FilesSkipped,
	}
	for _, path := range files {
		run.Files = append(run.Files, convertFile(conv, path, opts, target))
	}
	run.Duration = time.Since(start)

	if !quiet {
		dest := io.Writer(os.Stdout)
		if target.toStdout {
			// Keep stdout clean for the stylesheets themselves.
			dest = os.Stderr
		}
		report.WriteOutput(dest, run,
			report.DetermineOutputFormat(getStringWithFallback("report", "convert.report", "text")),
			report.Config{
				UseColors: getBoolWithFallback("color", "color", false),
				Verbose:   verbose,
			})
	}

	if _, _, failed := run.Counts(); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// convertFile converts one input file and reports its outcome. Errors are
// captured in the report rather than aborting the run.
func convertFile(conv *sassgen.Converter, path string, opts sassgen.Options, target convertTarget) report.FileReport {
	fr := report.FileReport{Input: sassgen.GetRelativePath(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		fr.Err = err.Error()
		return fr
	}

	res, err := convertMarkup(conv, string(data), opts, target.selector)
	if err != nil {
		fr.Err = err.Error()
		return fr
	}
	if res == nil {
		fr.Skipped = true
		return fr
	}

	fr.Retained = res.Retained
	fr.StyleRegions = res.StyleRegions
	fr.CommentNames = res.CommentNames
	fr.TagNames = res.TagNames
	fr.FallbackNames = res.FallbackNames
	fr.Warnings = res.Warnings

	if target.toStdout {
		fmt.Print(res.Stylesheet)
		return fr
	}

	dest := sassgen.OutputPath(path, target.outDir, target.slugNames)
	if target.outDir != "" {
		if err := os.MkdirAll(target.outDir, 0o755); err != nil {
			fr.Err = err.Error()
			return fr
		}
	}
	if err := os.WriteFile(dest, []byte(res.Stylesheet), 0o644); err != nil {
		fr.Err = err.Error()
		return fr
	}
	fr.Output = sassgen.GetRelativePath(dest)
	return fr
}

func convertMarkup(conv *sassgen.Converter, markup string, opts sassgen.Options, selector string) (*sassgen.Result, error) {
	if selector != "" {
		return conv.ConvertScoped(markup, selector, opts)
	}
	return conv.Convert(markup, opts)
}

func convertStdin(conv *sassgen.Converter, opts sassgen.Options, selector string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	res, err := convertMarkup(conv, string(data), opts, selector)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	fmt.Print(res.Stylesheet)
	return nil
}

// newLogger builds the CLI logger: a development-style logger on stderr in
// verbose mode, a no-op logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
