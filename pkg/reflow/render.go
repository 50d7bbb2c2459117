package reflow

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
)

// hardBreak separates paragraph segments in rendered inline text.
const hardBreak = "\\\n"

// renderer walks the parsed tree and produces wrapped text. The node set is
// closed: every supported construct has an explicit case, and anything else
// falls through to literal passthrough.
type renderer struct {
	src   []byte
	ctx   Context
	queue []region

	// started flips after the first block so StartColumn only shortens the
	// very first generated line.
	started bool
}

func (r *renderer) renderBlocks(parent ast.Node, indent string) string {
	var b strings.Builder
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.block(c, indent))
		r.started = true
	}
	return b.String()
}

func (r *renderer) block(n ast.Node, indent string) string {
	switch n := n.(type) {
	case *ast.Paragraph:
		return r.paragraph(n, indent)

	case *ast.TextBlock:
		return r.paragraph(n, indent)

	case *ast.Heading:
		return "\n\n" + indent + strings.Repeat("#", n.Level) + " " +
			collapseSpace(r.inlines(n))

	case *ast.List:
		return r.list(n, indent)

	case *ast.Blockquote:
		return r.blockquote(n, indent)

	case *ast.FencedCodeBlock:
		return r.code(n, string(n.Language(r.src)), indent)

	case *ast.CodeBlock:
		return r.code(n, "", indent)

	case *ast.ThematicBreak:
		return "\n\n" + indent + "---"

	case *ast.HTMLBlock:
		return "\n\n" + codefmt.Indent(
			strings.TrimRight(segmentsText(n.Lines(), r.src), "\n"), indent)

	default:
		// Unrecognized block: pass its source through untouched.
		if n.Lines() != nil && n.Lines().Len() > 0 {
			return "\n\n" + codefmt.Indent(
				strings.TrimRight(segmentsText(n.Lines(), r.src), "\n"), indent)
		}
		return r.renderBlocks(n, indent)
	}
}

// paragraph renders prose: split on hard breaks, shield link references,
// collapse whitespace, wrap greedily, then restore the shielded targets.
func (r *renderer) paragraph(n ast.Node, indent string) string {
	content := r.inlines(n)

	if strings.TrimSpace(content) == placeholder {
		return r.protected(indent)
	}

	segments := strings.Split(content, hardBreak)
	for i, seg := range segments {
		seg, captured := shieldRefs(seg)
		seg = collapseSpace(seg)
		if r.ctx.ForcePunctuation && endsInWord(seg) {
			seg += "."
		}

		start := len(indent)
		if !r.started && i == 0 && r.ctx.StartColumn > start {
			start = r.ctx.StartColumn
		}
		seg = breakLines(seg, r.ctx.Width, indent, start)

		segments[i] = restoreRefs(seg, captured)
	}

	return "\n\n" + indent + strings.Join(segments, hardBreak+indent)
}

// protected re-renders the next captured literal from the queue. An empty
// queue leaves the placeholder as literal text rather than failing.
func (r *renderer) protected(indent string) string {
	if len(r.queue) == 0 {
		return "\n\n" + indent + placeholder
	}
	reg := r.queue[0]
	r.queue = r.queue[1:]

	if reg.kind == regionDefinition {
		return "\n\n" + indent + reg.text
	}

	formatted, err := r.ctx.Formatter.Format(reg.text, indent, codefmt.DialectMarkdown,
		codefmt.Options{PrintWidth: r.ctx.Width})
	if err != nil {
		r.debugf("table formatter failed", err)
		formatted = codefmt.Indent(reg.text, indent)
	}
	return "\n\n" + formatted
}

// code delegates a code block body to the external formatter. A block with
// no language tag is rendered without fences at an extra four-space indent
// unless fences are preferred. Formatting failures keep the body verbatim.
func (r *renderer) code(n ast.Node, lang, indent string) string {
	body := strings.TrimRight(segmentsText(n.Lines(), r.src), "\n")

	dialect := codefmt.Resolve(lang)
	if lang == "" && r.ctx.DetectLanguage {
		dialect = codefmt.Detect([]byte(body))
	}

	fenced := lang != "" || r.ctx.PreferFences
	bodyIndent := indent
	if !fenced {
		bodyIndent = indent + "    "
	}

	formatted, err := r.ctx.Formatter.Format(body, bodyIndent, dialect,
		codefmt.Options{PrintWidth: r.ctx.Width})
	if err != nil {
		if dialect != "" && dialect != codefmt.DialectText {
			r.debugf("code formatter failed", err)
		}
		formatted = codefmt.Indent(body, bodyIndent)
	}

	if !fenced {
		return "\n\n" + formatted
	}
	return "\n\n" + indent + "```" + lang + "\n" + formatted + "\n" + indent + "```"
}

func (r *renderer) list(n *ast.List, indent string) string {
	num := n.Start
	if n.IsOrdered() && num == 0 {
		num = 1
	}

	var b strings.Builder
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if n.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		itemIndent := indent + strings.Repeat(" ", len(marker))
		body := strings.TrimSpace(r.renderBlocks(item, itemIndent))
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(marker)
		b.WriteString(body)
	}

	// A list closing a tag description needs a blank line so the next tag
	// does not abut it.
	if _, isDoc := n.Parent().(*ast.Document); isDoc && n.NextSibling() == nil &&
		!r.ctx.BareDescription {
		b.WriteString("\n")
	}
	return b.String()
}

func (r *renderer) blockquote(n ast.Node, indent string) string {
	body := strings.TrimSpace(r.renderBlocks(n, ""))
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = indent + "> " + line
	}
	return "\n\n" + strings.Join(lines, "\n")
}

func (r *renderer) inlines(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(r.inline(c))
	}
	return b.String()
}

func (r *renderer) inline(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(r.src))
		if n.HardLineBreak() {
			return s + hardBreak
		}
		if n.SoftLineBreak() {
			return s + " "
		}
		return s

	case *ast.String:
		return string(n.Value)

	case *ast.CodeSpan:
		return "`" + nodeText(n, r.src) + "`"

	case *ast.Emphasis:
		if n.Level == 2 {
			return "**" + r.inlines(n) + "**"
		}
		return "_" + r.inlines(n) + "_"

	case *ast.Link:
		return "[" + r.inlines(n) + "](" + string(n.Destination) + ")"

	case *ast.Image:
		return "![" + r.inlines(n) + "](" + string(n.Destination) + ")"

	case *ast.AutoLink:
		return string(n.URL(r.src))

	case *ast.RawHTML:
		var b strings.Builder
		for i := range n.Segments.Len() {
			seg := n.Segments.At(i)
			b.Write(seg.Value(r.src))
		}
		return b.String()

	default:
		return r.inlines(n)
	}
}

// nodeText concatenates the raw text of a node's Text children.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

func (r *renderer) debugf(msg string, err error) {
	if r.ctx.Logger != nil {
		r.ctx.Logger.Debug(msg, "err", err)
	}
}
