// Package codefmt provides the delegate formatter consumed by the reflow
// engine for embedded code blocks and tables. The default implementation
// formats Go source via go/format, re-renders pipe tables natively, and
// rejects everything else so callers degrade to verbatim text.
package codefmt

import (
	"errors"
	"fmt"
	"go/format"
	"strings"
)

// Dialect identifiers accepted by the default formatter.
const (
	DialectGo         = "go"
	DialectJavaScript = "javascript"
	DialectTypeScript = "typescript"
	DialectJSON       = "json"
	DialectMarkdown   = "markdown"
	DialectText       = "text"
)

// Options carries per-call formatter settings.
type Options struct {
	// PrintWidth is the target width of the surrounding document.
	PrintWidth int
}

// Formatter formats embedded code or tabular content in its native syntax.
// Implementations may fail; callers must treat failure as "keep verbatim".
type Formatter interface {
	Format(code string, indent string, dialect string, opts Options) (string, error)
}

// ErrUnsupportedDialect is returned when a formatter has no handler for the
// requested dialect. Callers fall back to verbatim content.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// aliases maps lowercase fence language tags to dialect identifiers. The
// js and ts alias families collapse onto a single dialect each.
var aliases = map[string]string{
	"go":         DialectGo,
	"golang":     DialectGo,
	"js":         DialectJavaScript,
	"jsx":        DialectJavaScript,
	"mjs":        DialectJavaScript,
	"cjs":        DialectJavaScript,
	"javascript": DialectJavaScript,
	"ts":         DialectTypeScript,
	"tsx":        DialectTypeScript,
	"mts":        DialectTypeScript,
	"cts":        DialectTypeScript,
	"typescript": DialectTypeScript,
	"json":       DialectJSON,
	"json5":      DialectJSON,
	"jsonc":      DialectJSON,
	"md":         DialectMarkdown,
	"markdown":   DialectMarkdown,
}

// Resolve maps a fence language tag to a dialect identifier. Unrecognized
// tags resolve to the empty string, which callers format as plain text.
func Resolve(lang string) string {
	return aliases[strings.ToLower(strings.TrimSpace(lang))]
}

// Default is the stock Formatter. It formats Go source, reflows pipe
// tables, and returns ErrUnsupportedDialect for anything else.
type Default struct{}

// Format implements Formatter. The indent prefix is applied to every output
// line.
func (Default) Format(code, indent, dialect string, opts Options) (string, error) {
	switch dialect {
	case DialectGo:
		out, err := format.Source([]byte(code))
		if err != nil {
			return "", fmt.Errorf("format go source: %w", err)
		}
		return Indent(strings.TrimRight(string(out), "\n"), indent), nil

	case DialectMarkdown:
		out, err := formatTable(code)
		if err != nil {
			return "", err
		}
		return Indent(out, indent), nil

	default:
		return "", ErrUnsupportedDialect
	}
}

// Indent prefixes every line of s with the given prefix. Empty lines stay
// empty.
func Indent(s, prefix string) string {
	if prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
