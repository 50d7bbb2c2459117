package reflow

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdown is the shared CommonMark instance. Tables are extracted before
// parsing, so no GFM extensions are needed; the instance is read-only and
// safe for concurrent use.
//
//nolint:gochecknoglobals // one parser instance shared by all render tasks
var markdown = goldmark.New()

// parse converts prepared description text into a goldmark AST. goldmark
// never fails on malformed input; unrecognized constructs surface as text.
func parse(src []byte) ast.Node {
	return markdown.Parser().Parse(text.NewReader(src))
}

// segmentsText concatenates the raw source lines of a block node.
func segmentsText(lines *text.Segments, src []byte) string {
	var out []byte
	for i := range lines.Len() {
		seg := lines.At(i)
		out = append(out, seg.Value(src)...)
	}
	return string(out)
}
