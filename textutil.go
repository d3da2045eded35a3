package sassgen

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText trims s and collapses interior whitespace runs to single spaces.
// The empty string means the text carried nothing.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// commentDelims are stripped by CleanComment before whitespace cleanup.
// Parsers hand over comment bodies without delimiters, but authors sometimes
// nest CSS comment syntax inside HTML comments.
var commentDelims = strings.NewReplacer("<!--", "", "-->", "", "/*", "", "*/", "")

// CleanComment is CleanText with comment delimiter syntax removed first.
func CleanComment(s string) string {
	return CleanText(commentDelims.Replace(s))
}
