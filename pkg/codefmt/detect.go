package codefmt

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectCandidates bounds the classifier to languages that commonly appear
// in documentation code blocks.
var detectCandidates = []string{
	"Go", "JavaScript", "TypeScript", "JSON", "Shell",
	"Python", "HTML", "CSS", "SQL", "YAML",
}

// Detect guesses a dialect identifier for code content that declared no
// language tag. Returns DialectText when detection is not confident, so the
// content is formatted as plain text.
func Detect(content []byte) string {
	if len(strings.TrimSpace(string(content))) == 0 {
		return DialectText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return dialectFor(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, detectCandidates); safe && lang != "" {
		return dialectFor(lang)
	}

	return DialectText
}

// dialectFor maps a go-enry language name onto a dialect identifier.
func dialectFor(lang string) string {
	if d := Resolve(lang); d != "" {
		return d
	}
	return DialectText
}
