package sassgen

import (
	"strings"

	"go.uber.org/zap"
)

// Result carries the stylesheet produced by a conversion together with
// counters describing what the pipeline retained. Counters are taken over
// retained nodes, before empty blocks are elided from the output.
type Result struct {
	// Stylesheet is the generated SCSS text, formatted unless
	// Options.FormatOutput was disabled.
	Stylesheet string

	// Retained is the total number of nodes that survived filtering,
	// including hoisted style blocks.
	Retained int

	// StyleRegions counts hoisted <style> pass-through regions.
	StyleRegions int

	// CommentNames, TagNames and FallbackNames count retained elements by
	// the selector strategy they resolved to.
	CommentNames  int
	TagNames      int
	FallbackNames int

	// Warnings lists non-fatal oddities found in the input, such as empty
	// <style> blocks.
	Warnings []string
}

// Converter turns HTML markup into nested SCSS. The zero value is not
// usable; construct one with NewConverter.
type Converter struct {
	log *zap.Logger
}

// NewConverter returns a Converter logging through log. A nil logger
// disables logging.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("sassgen")}
}

// Convert runs the full pipeline on markup: parse, filter, name, build and
// format. A non-empty Options.Selector routes through ConvertScoped. It
// returns (nil, nil) when the input is empty or contains nothing worth
// styling, so callers can distinguish "no output" from failure.
func (c *Converter) Convert(input string, opts Options) (*Result, error) {
	if opts.Selector != "" {
		return c.ConvertScoped(input, opts.Selector, opts)
	}
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	nodes, err := parseFragment(input)
	if err != nil {
		return nil, err
	}
	return c.convertNodes(nodes, opts)
}

// ConvertScoped is Convert restricted to the parts of a full document that
// match a CSS selector. Everything outside the matched subtrees is ignored.
func (c *Converter) ConvertScoped(input, selector string, opts Options) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	nodes, err := parseScoped(input, selector)
	if err != nil {
		return nil, err
	}
	return c.convertNodes(nodes, opts)
}

func (c *Converter) convertNodes(nodes []*node, opts Options) (*Result, error) {
	nz := &normalizer{log: c.log}
	styled := nz.normalize(nodes, 1)
	if styled == nil {
		c.log.Debug("no retainable nodes in input")
		return nil, nil
	}

	res := &Result{Warnings: nz.warnings}
	tally(styled, opts, res)

	raw := buildNodes(styled, 0, opts)
	if opts.FormatOutput {
		res.Stylesheet = Format(raw, opts.Formatter)
	} else {
		res.Stylesheet = raw
	}

	c.log.Debug("converted markup",
		zap.Int("retained", res.Retained),
		zap.Int("style_regions", res.StyleRegions),
		zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

// tally walks the retained tree and fills the Result counters, classifying
// each element by the same precedence synthesizeName applies.
func tally(nodes []*styledNode, opts Options, res *Result) {
	for _, sn := range nodes {
		res.Retained++
		switch {
		case sn.styleBlock:
			res.StyleRegions++
		case sn.comment != "" && opts.UseCommentBlocksAsClassName:
			res.CommentNames++
		case !genericTags[sn.tag]:
			res.TagNames++
		default:
			res.FallbackNames++
		}
		tally(sn.children, opts, res)
	}
}

// Convert is a convenience wrapper around NewConverter(nil).Convert for
// one-off conversions.
func Convert(input string, opts Options) (*Result, error) {
	return NewConverter(nil).Convert(input, opts)
}
