package jsdoc

import "strings"

// MergeDescriptions collapses every description-titled record into a single
// bare description record placed first. The description texts are joined in
// original order, separated by blank lines. The returned sequence contains
// at most one bare description record.
func MergeDescriptions(tags []Tag) []Tag {
	var parts []string
	rest := make([]Tag, 0, len(tags))

	for _, t := range tags {
		if t.Title == "" || t.Title == TitleDescription {
			if s := strings.TrimSpace(t.Description); s != "" {
				parts = append(parts, s)
			}
			continue
		}
		rest = append(rest, t)
	}

	if len(parts) == 0 {
		return rest
	}

	merged := make([]Tag, 0, len(rest)+1)
	merged = append(merged, Tag{Description: strings.Join(parts, "\n\n")})
	merged = append(merged, rest...)
	return merged
}
