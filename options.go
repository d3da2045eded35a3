package sassgen

// Options controls a single conversion. Convert reads the value it is given
// and never stores it; callers typically start from DefaultOptions and adjust
// fields on their copy.
type Options struct {
	FormatOutput                bool   // Run the beautifier over the raw SCSS (default: true)
	UseCommentBlocksAsClassName bool   // Derive class selectors from preceding HTML comments (default: true)
	MaxClassNameLength          int    // Truncate comment-derived slugs to this many runes, 0 = unlimited (default: 50)
	PrintComments               bool   // Emit a /* label -> order */ header before each selector (default: true)
	Selector                    string // Optional CSS selector scoping conversion to matching subtrees

	Formatter FormatterOptions // Beautifier knobs, used when FormatOutput is set
	ClassName ClassNameOptions // Slugging policy for comment-derived names
}

// FormatterOptions are the beautifier knobs.
type FormatterOptions struct {
	IndentSize          int    // Indent units per nesting level (default: 2)
	IndentChar          string // Character repeated IndentSize times per level (default: " ")
	PreserveNewlines    bool   // Keep blank lines from the input (default: true)
	MaxPreserveNewlines int    // Cap on consecutive preserved blank lines (default: 1)
	EndWithNewline      bool   // Ensure the output ends with a newline (default: true)
	WrapLineLength      int    // Soft wrap column, 0 = no wrapping (default: 0)
	IndentEmptyLines    bool   // Indent preserved blank lines instead of leaving them empty (default: false)
}

// ClassNameOptions is the slugging policy for comment-derived class names.
type ClassNameOptions struct {
	Lowercase   bool   // Case-fold the comment text before slugging (default: true)
	ReplaceWith string // Separator replacing whitespace/punctuation runs, "" = "-" (default: "-")
	Prefix      string // Prepended verbatim to the slug
	Suffix      string // Appended verbatim to the slug
}

// DefaultOptions returns the baseline configuration. The returned value is a
// fresh copy each call; mutating it affects nothing else.
func DefaultOptions() Options {
	return Options{
		FormatOutput:                true,
		UseCommentBlocksAsClassName: true,
		MaxClassNameLength:          50,
		PrintComments:               true,
		Formatter: FormatterOptions{
			IndentSize:          2,
			IndentChar:          " ",
			PreserveNewlines:    true,
			MaxPreserveNewlines: 1,
			EndWithNewline:      true,
		},
		ClassName: ClassNameOptions{
			Lowercase:   true,
			ReplaceWith: "-",
		},
	}
}
