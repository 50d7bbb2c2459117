// Package layout composes normalized tags into the replacement comment
// body: per-column alignment, tag stringification, and block assembly.
package layout

import (
	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
)

// Metrics holds per-group column maxima used to right-pad the title, type
// and name columns of alignment-eligible tags. Computed once per render
// pass and passed read-only into each tag's render call.
type Metrics struct {
	// MaxTitle is the longest title length, without the "@".
	MaxTitle int

	// MaxType is the longest rendered type length, braces included.
	MaxType int

	// MaxName is the longest name length.
	MaxName int
}

// Measure computes alignment metrics for a tag group. When vertical
// alignment is disabled it returns zero metrics, which renders columns with
// plain single-gap separation.
func Measure(tags []jsdoc.Tag, opts *config.Options) Metrics {
	var m Metrics
	if opts == nil || !opts.AlignVertically {
		return m
	}

	for _, t := range tags {
		caps, ok := jsdoc.Lookup(t.Title)
		if !ok || !caps.Alignable {
			continue
		}
		if len(t.Title) > m.MaxTitle {
			m.MaxTitle = len(t.Title)
		}
		if t.Type != "" && len(t.Type)+2 > m.MaxType {
			m.MaxType = len(t.Type) + 2
		}
		if len(t.Name) > m.MaxName {
			m.MaxName = len(t.Name)
		}
	}
	return m
}
