// Package reflow implements the markdown-aware description reflow engine.
// It parses a tag description as a restricted markdown dialect, protects
// non-reflowable regions (code, tables, link definitions), re-renders the
// tree with correct indentation, and wraps prose at a configured width.
package reflow

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
)

// Context supplies the layout surroundings of one description.
type Context struct {
	// Width is the usable print width in columns.
	Width int

	// Indent is prefixed to every generated line.
	Indent string

	// StartColumn is how much of the width the tag's title/type/name prefix
	// already consumed on the first line. Threaded explicitly into the
	// line-breaker; no marker text is ever inserted into the parsed input.
	StartColumn int

	// PreferFences renders untagged code blocks fenced instead of indented.
	PreferFences bool

	// ForcePunctuation appends a terminating period to prose segments that
	// end in a word character.
	ForcePunctuation bool

	// DetectLanguage lets the delegate guess a dialect for untagged code.
	DetectLanguage bool

	// BareDescription is true when the owning tag is the block's leading
	// description record.
	BareDescription bool

	// Formatter is the delegate for code blocks and tables. Nil selects
	// codefmt.Default.
	Formatter codefmt.Formatter

	// Logger receives debug records for delegate failures. May be nil.
	Logger *log.Logger
}

// orderedDash rewrites "1- item" to "1. item" at text start and after
// newlines so the parser recognizes ordered lists.
var orderedDash = regexp.MustCompile(`(^|\n)([ \t]*)(\d+)-[ \t]+`)

// Reflow re-renders one description to its canonical wrapped form. It never
// fails: malformed markdown degrades to literal passthrough, and delegate
// formatter failures degrade to verbatim content.
func Reflow(text string, ctx Context) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if ctx.Width <= 0 {
		ctx.Width = 80
	}
	if ctx.Formatter == nil {
		ctx.Formatter = codefmt.Default{}
	}

	text = orderedDash.ReplaceAllString(text, "${1}${2}${3}. ")
	text, queue := extract(text)
	text = dedent(text, ctx.Indent)

	r := &renderer{
		src:   []byte(text),
		ctx:   ctx,
		queue: queue,
	}
	out := r.renderBlocks(parse(r.src), ctx.Indent)

	return strings.TrimLeft(out, "\n")
}

// dedent collapses newline-plus-block-indent so the parser sees logically
// dedented text.
func dedent(text, indent string) string {
	if indent == "" {
		return text
	}
	return strings.ReplaceAll(text, "\n"+indent, "\n")
}
