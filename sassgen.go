// Package sassgen converts utility-class annotated HTML into nested SCSS.
//
// sassgen filters an HTML fragment down to its style-bearing elements and
// emits an SCSS stylesheet whose selector nesting mirrors the DOM nesting.
// Utility classes become @apply directives, inline styles become literal
// declarations, and <style> blocks pass through verbatim as delimited
// regions. Anonymous containers are named from nearby HTML comments.
//
// # Converting
//
// Convert a fragment with the default options:
//
//	res, err := sassgen.Convert(`<!-- Card --><div class="flex p-4"></div>`, sassgen.DefaultOptions())
//	if err != nil {
//		// parse or selector failure
//	}
//	if res == nil {
//		// nothing style-bearing in the input
//	}
//	fmt.Print(res.Stylesheet)
//
// A nil result with a nil error means the input produced no retained nodes;
// absent classes, styles and comments are legitimate states, not errors.
//
// # Options
//
// DefaultOptions returns the baseline configuration. Callers adjust fields on
// their own copy; nothing persists between calls:
//
//	opts := sassgen.DefaultOptions()
//	opts.PrintComments = false
//	opts.ClassName.Prefix = "c-"
//	res, err := sassgen.Convert(input, opts)
//
// # CLI Tool
//
// sassgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/sassgen/cmd/sassgen@latest
//
// The CLI adds glob-based batch conversion, selector scoping, and run
// reports; see sassgen --help.
package sassgen
