package sassgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// knownAtRules are at-keywords the printer separates from the component that
// follows them. @apply is absent: the token pass joins it to its first
// utility class and fixApply restores the spacing afterwards.
var knownAtRules = map[string]bool{
	"@charset": true, "@import": true, "@namespace": true, "@media": true,
	"@supports": true, "@page": true, "@keyframes": true, "@font-face": true,
	"@use": true, "@forward": true, "@mixin": true, "@include": true,
	"@extend": true, "@function": true, "@return": true, "@if": true,
	"@else": true, "@each": true, "@for": true, "@while": true,
}

var (
	regionPattern = regexp.MustCompile(
		`(?m)^[ \t]*// #region STYLE #\d+[ \t]*$\n(?s:.*?)^[ \t]*// #endregion[ \t]*$\n?`)
	placeholderPattern = regexp.MustCompile(`(?m)^([ \t]*)/\*__region_(\d+)__\*/$`)
	applyPattern       = regexp.MustCompile(`@apply[ \t]*`)
)

// Format pretty-prints raw SCSS text. Style pass-through regions are
// shielded from the printer and re-emitted verbatim at the indentation of
// their insertion point. Running Format on its own output is a no-op.
func Format(scss string, opts FormatterOptions) string {
	if strings.TrimSpace(scss) == "" {
		return ""
	}

	regions, text := protectRegions(scss)
	text = fixApply(beautify(text, opts))
	text = expandRegions(text, regions, opts)

	if opts.EndWithNewline {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		return text
	}
	return strings.TrimRight(text, "\n")
}

// fixApply restores the space between @apply and its first utility class,
// which the token pass drops because @apply is not a known at-rule.
func fixApply(text string) string {
	return applyPattern.ReplaceAllString(text, "@apply ")
}

// protectRegions swaps every // #region STYLE block for an opaque comment
// placeholder so the printer cannot touch its contents. The matched block
// text is returned for expandRegions to restore.
func protectRegions(text string) ([]string, string) {
	var regions []string
	out := regionPattern.ReplaceAllStringFunc(text, func(m string) string {
		regions = append(regions, m)
		return fmt.Sprintf("/*__region_%d__*/", len(regions)-1)
	})
	return regions, out
}

// expandRegions replaces each placeholder line with its original region
// text, dedented and re-indented to the placeholder's own indentation.
func expandRegions(text string, regions []string, opts FormatterOptions) string {
	if len(regions) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := placeholderPattern.FindStringSubmatch(m)
		idx, err := strconv.Atoi(sub[2])
		if err != nil || idx >= len(regions) {
			return m
		}
		return reindent(regions[idx], sub[1], opts)
	})
}

func reindent(region, indent string, opts FormatterOptions) string {
	region = strings.TrimSuffix(region, "\n")
	lines := strings.Split(region, "\n")
	strip := commonIndent(lines)

	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if strings.TrimSpace(ln) == "" {
			if opts.IndentEmptyLines {
				b.WriteString(indent)
			}
			continue
		}
		b.WriteString(indent)
		b.WriteString(strings.TrimPrefix(ln, strip))
	}
	return b.String()
}

// commonIndent returns the longest leading space/tab prefix shared by all
// non-blank lines.
func commonIndent(lines []string) string {
	var prefix string
	found := false
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		ind := ln[:len(ln)-len(strings.TrimLeft(ln, " \t"))]
		if !found {
			prefix, found = ind, true
			continue
		}
		for !strings.HasPrefix(ind, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// beautifier is a single-pass token printer. It accumulates one statement at
// a time and emits it as a line when a brace or semicolon closes it.
type beautifier struct {
	opts     FormatterOptions
	out      strings.Builder
	stmt     strings.Builder
	level    int
	blanks   int
	colons   int
	hasAt    bool
	prev     css.TokenType
	prevData string
}

func beautify(text string, opts FormatterOptions) string {
	f := &beautifier{opts: opts}
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		f.token(tt, string(data))
	}
	f.flushStmt()
	return f.out.String()
}

func (f *beautifier) token(tt css.TokenType, data string) {
	switch tt {
	case css.WhitespaceToken:
		if f.opts.PreserveNewlines && f.out.Len() > 0 {
			if n := strings.Count(data, "\n"); n >= 2 {
				f.blanks = min(n-1, f.opts.MaxPreserveNewlines)
			}
		}
		return
	case css.CommentToken:
		if f.stmt.Len() == 0 {
			f.writeLine(data)
			return
		}
	case css.LeftBraceToken:
		if sel := f.stmt.String(); sel != "" {
			f.writeLine(sel + " {")
		} else {
			f.writeLine("{")
		}
		f.resetStmt()
		f.level++
		return
	case css.SemicolonToken:
		f.stmt.WriteString(";")
		f.writeLine(f.stmt.String())
		f.resetStmt()
		return
	case css.RightBraceToken:
		f.flushStmt()
		if f.level > 0 {
			f.level--
		}
		f.writeLine("}")
		return
	}

	if f.stmt.Len() == 0 && tt == css.AtKeywordToken {
		f.hasAt = true
	}
	if f.needSpace(tt, data) {
		f.stmt.WriteString(" ")
	}
	f.stmt.WriteString(data)
	if tt == css.ColonToken {
		f.colons++
	}
	f.prev, f.prevData = tt, data
}

// needSpace decides whether a space goes before the incoming token. The
// rules are oriented at declaration and @apply statements: a declaration's
// first colon gets a trailing space, while colons inside at-statements stay
// tight so variant-prefixed utility classes like md:flex survive.
func (f *beautifier) needSpace(tt css.TokenType, data string) bool {
	if f.stmt.Len() == 0 {
		return false
	}

	switch tt {
	case css.ColonToken, css.SemicolonToken, css.CommaToken,
		css.RightParenthesisToken, css.RightBracketToken:
		return false
	case css.DelimToken:
		if data == "/" {
			return false
		}
	}

	switch f.prev {
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
		return false
	case css.ColonToken:
		return !f.hasAt && f.colons == 1
	case css.AtKeywordToken:
		return knownAtRules[f.prevData]
	case css.DelimToken:
		switch f.prevData {
		case ".", "/", "!":
			return false
		}
	}
	return true
}

func (f *beautifier) resetStmt() {
	f.stmt.Reset()
	f.colons = 0
	f.hasAt = false
	f.prev = css.ErrorToken
	f.prevData = ""
}

func (f *beautifier) flushStmt() {
	if f.stmt.Len() == 0 {
		return
	}
	f.writeLine(f.stmt.String())
	f.resetStmt()
}

func (f *beautifier) writeLine(text string) {
	unit := strings.Repeat(f.opts.IndentChar, f.opts.IndentSize)
	indent := strings.Repeat(unit, f.level)

	for ; f.blanks > 0; f.blanks-- {
		if f.opts.IndentEmptyLines {
			f.out.WriteString(indent)
		}
		f.out.WriteString("\n")
	}

	if f.opts.WrapLineLength > 0 {
		f.writeWrapped(indent, unit, text)
		return
	}
	f.out.WriteString(indent)
	f.out.WriteString(text)
	f.out.WriteString("\n")
}

// writeWrapped greedily breaks a long line at spaces; continuation lines get
// one extra indent unit.
func (f *beautifier) writeWrapped(indent, unit, text string) {
	limit := f.opts.WrapLineLength
	line := indent
	first := true
	for {
		if len(line)+len(text) <= limit || !strings.Contains(text, " ") {
			f.out.WriteString(line)
			f.out.WriteString(text)
			f.out.WriteString("\n")
			return
		}
		span := limit - len(line)
		if span < 1 {
			span = 1
		}
		cut := -1
		if span < len(text) {
			cut = strings.LastIndex(text[:span], " ")
		}
		if cut < 0 {
			cut = strings.Index(text, " ")
		}
		f.out.WriteString(line)
		f.out.WriteString(text[:cut])
		f.out.WriteString("\n")
		text = text[cut+1:]
		if first {
			line, first = indent+unit, false
		}
	}
}
