package reflow

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	wordEnd = regexp.MustCompile(`[\p{L}\p{N}]$`)

	// inlineRef matches {@link ...}, {@linkcode ...} and {@linkplain ...}
	// references, which must never be split across lines.
	inlineRef = regexp.MustCompile(`\{@(?:link|linkcode|linkplain)[^}]*\}`)
)

// collapseSpace reduces internal whitespace runs to single spaces and trims
// the ends.
func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// endsInWord reports whether s ends in a letter or digit.
func endsInWord(s string) bool {
	return wordEnd.MatchString(s)
}

// shieldRefs replaces every inline link reference with an equal-length run
// of underscores so width measurement and line breaking never split inside
// one. The originals are returned in encounter order for restoreRefs.
func shieldRefs(s string) (string, []string) {
	var captured []string
	s = inlineRef.ReplaceAllStringFunc(s, func(m string) string {
		captured = append(captured, m)
		return strings.Repeat("_", len(m))
	})
	return s, captured
}

// restoreRefs puts shielded references back by matching placeholder runs of
// the captured lengths in first-seen order.
func restoreRefs(s string, captured []string) string {
	for _, m := range captured {
		s = strings.Replace(s, strings.Repeat("_", len(m)), m, 1)
	}
	return s
}

// breakLines wraps a single-line text at the last space at or before the
// width boundary. The first line's budget is reduced by startColumn;
// continuation lines are prefixed with indent and budgeted against it. A
// token too long for the budget breaks at the next space instead, so the
// loop always consumes input.
func breakLines(text string, width int, indent string, startColumn int) string {
	if startColumn < len(indent) {
		startColumn = len(indent)
	}

	var b strings.Builder
	avail := width - startColumn
	rest := text

	for {
		if avail < 1 {
			avail = 1
		}
		if len(rest) <= avail {
			b.WriteString(rest)
			break
		}

		cut := strings.LastIndex(rest[:avail+1], " ")
		if cut <= 0 {
			// Unbreakable long token: break after it instead of looping.
			next := strings.Index(rest[avail:], " ")
			if next < 0 {
				b.WriteString(rest)
				break
			}
			cut = avail + next
		}

		b.WriteString(rest[:cut])
		b.WriteString("\n")
		b.WriteString(indent)
		rest = rest[cut+1:]
		avail = width - len(indent)
	}

	return b.String()
}
