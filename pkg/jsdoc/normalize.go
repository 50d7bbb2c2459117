package jsdoc

import "strings"

// Normalize repairs structural defects in raw tokenizer output and resolves
// tag naming against the canonical table. It is a pure transformation:
// malformed input never fails, worst case fields stay empty.
func Normalize(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, normalizeTag(t))
	}
	return out
}

func normalizeTag(t Tag) Tag {
	t = splitBracedTitle(t)

	t.Title = strings.TrimSpace(t.Title)
	t.Type = strings.TrimSpace(t.Type)
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)

	t.Title = Canonical(t.Title)

	caps, known := Lookup(t.Title)
	if !known {
		return t
	}

	// A name captured for a nameless kind is really the first word of its
	// description.
	if !caps.HasName && t.Name != "" {
		t.Description = strings.TrimSpace(t.Name + " " + t.Description)
		t.Name = ""
	}

	// A type captured for a typeless kind is rendered back as a literal
	// "{type}" prefix.
	if !caps.HasType && t.Type != "" {
		t.Description = strings.TrimSpace("{" + t.Type + "} " + t.Description)
		t.Type = ""
	}

	return t
}

// splitBracedTitle repairs a record where the type expression was tokenized
// as part of the title, e.g. "param{string}" or "returns{number}".
func splitBracedTitle(t Tag) Tag {
	brace := strings.Index(t.Title, "{")
	if brace < 0 || !strings.HasSuffix(t.Title, "}") {
		return t
	}
	t.Type = strings.TrimSpace(strings.TrimSuffix(t.Title[brace+1:], "}"))
	t.Title = t.Title[:brace]
	return t
}
