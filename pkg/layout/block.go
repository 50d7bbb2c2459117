package layout

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
)

// FormatBlock runs the full pipeline over one tag block and returns the
// replacement comment body, newline-delimited and without comment markers.
// It never fails: malformed records degrade to best-effort passthrough, and
// description-required tags with empty descriptions are dropped.
func FormatBlock(
	block jsdoc.Block,
	opts *config.Options,
	formatter codefmt.Formatter,
	logger *log.Logger,
) string {
	if opts == nil {
		opts = config.Default()
	}

	tags := jsdoc.Normalize(block)
	tags = jsdoc.MergeDescriptions(tags)

	kept := make([]jsdoc.Tag, 0, len(tags))
	for _, t := range tags {
		t = jsdoc.ResolveNameDefaults(t)
		if caps, ok := jsdoc.Lookup(t.Title); ok && caps.NeedsDescription &&
			strings.TrimSpace(t.Description) == "" {
			continue
		}
		kept = append(kept, t)
	}

	metrics := Measure(kept, opts)

	var b strings.Builder
	for i, t := range kept {
		b.WriteString(RenderTag(t, i, len(kept), metrics, opts, formatter, logger))
	}

	return strings.TrimPrefix(b.String(), "\n")
}
