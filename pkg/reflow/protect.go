package reflow

import (
	"regexp"
	"sort"
	"strings"
)

// placeholder substitutes for a protected span before parsing. The token is
// long enough not to collide with legitimate description text; a leftover
// token in output signals an upstream bug and renders literally.
const placeholder = "JSDocProtectedSpan53621"

type regionKind int

const (
	regionTable regionKind = iota
	regionDefinition
)

// region is one captured literal, consumed from the queue in encounter
// order when its placeholder is rendered.
type region struct {
	kind regionKind
	text string
}

var (
	fencedRe = regexp.MustCompile("(?ms)^[ \t]*```[^\n]*\n.*?^[ \t]*```[ \t]*$")

	indentedRe = regexp.MustCompile(`(?m)^(?:(?: {4}|\t)[^\n]*\n?)+`)

	tableRe = regexp.MustCompile(`(?m)^[ \t]*\|[^\n]*(?:\n[ \t]*\|[^\n]*)*`)

	definitionRe = regexp.MustCompile(`(?m)^[ \t]*\[[^\]\n]+\]:[ \t]*\S[^\n]*`)
)

type span struct {
	start, end int
	kind       regionKind
}

// extract replaces table blocks and link reference definitions with
// placeholder lines and returns the captured literals as an ordered queue.
// Code spans (fenced and indented) are located first so a table is never
// detected inside a code block's own content; the code spans themselves
// stay in the text for the parser.
func extract(text string) (string, []region) {
	code := fencedRe.FindAllStringIndex(text, -1)
	for _, m := range indentedRe.FindAllStringIndex(text, -1) {
		if !insideAny(m[0], code) {
			code = append(code, m)
		}
	}

	var spans []span
	for _, m := range tableRe.FindAllStringIndex(text, -1) {
		if !insideAny(m[0], code) {
			spans = append(spans, span{m[0], m[1], regionTable})
		}
	}
	for _, m := range definitionRe.FindAllStringIndex(text, -1) {
		if !insideAny(m[0], code) {
			spans = append(spans, span{m[0], m[1], regionDefinition})
		}
	}

	if len(spans) == 0 {
		return text, nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	queue := make([]region, 0, len(spans))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.start])
		// Blank lines around the token keep it a paragraph of its own.
		b.WriteString("\n")
		b.WriteString(placeholder)
		b.WriteString("\n")
		queue = append(queue, region{
			kind: s.kind,
			text: strings.TrimSpace(text[s.start:s.end]),
		})
		prev = s.end
	}
	b.WriteString(text[prev:])

	return b.String(), queue
}

// insideAny reports whether offset falls within any of the given spans.
func insideAny(offset int, spans [][]int) bool {
	for _, s := range spans {
		if offset >= s[0] && offset < s[1] {
			return true
		}
	}
	return false
}
