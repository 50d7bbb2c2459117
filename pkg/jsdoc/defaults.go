package jsdoc

import (
	"regexp"
	"strings"
)

// defaultLiteral re-extracts a default value from a raw source line. The
// upstream tokenizer truncates the value at the first unmatched delimiter,
// so the literal is recovered here instead. Recognized shapes: array,
// object, parenthesized, quoted (single, double, backtick), or a bare word.
var defaultLiteral = regexp.MustCompile(
	`@default(?:value)?\s+` +
		`(\[[^\]]*\]|\{[^}]*\}|\([^)]*\)|"[^"]*"|'[^']*'|` + "`[^`]*`" + `|\S+)` +
		`[ \t]*(.*)`)

// ResolveNameDefaults converts legacy optional/default syntax into the
// canonical name/type representation. It is pure and total: when nothing
// matches, the tag is returned untouched.
func ResolveNameDefaults(t Tag) Tag {
	caps, _ := Lookup(t.Title)

	if caps.DefaultKind {
		return resolveDefaultKind(t)
	}

	if !t.Optional {
		return t
	}

	switch {
	case t.Name != "" && t.HasDefault && t.Default != "":
		t.Name = "[" + t.Name + "=" + t.Default + "]"
	case t.Name != "":
		t.Name = "[" + t.Name + "]"
	case t.Type != "":
		if !strings.HasSuffix(t.Type, "| undefined") {
			t.Type += " | undefined"
		}
	}
	return t
}

// resolveDefaultKind pulls the literal value and trailing description of a
// default-value tag back out of its raw source lines. The literal lands in
// the type field, which doubles as the display slot for these kinds.
func resolveDefaultKind(t Tag) Tag {
	raw := strings.Join(t.SourceLines, "\n")
	m := defaultLiteral.FindStringSubmatch(raw)
	if m == nil {
		return t
	}
	t.Type = m[1]
	t.Description = strings.TrimSpace(m[2])
	t.Name = ""
	return t
}
