package layout

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
	"github.com/turadg/jsdocfmt/pkg/reflow"
)

// RenderTag composes one tag's title, type, name and reflowed description
// into its output string. Every tag starts with a newline; the blank
// separator marker emits only that newline.
func RenderTag(
	tag jsdoc.Tag,
	index, total int,
	m Metrics,
	opts *config.Options,
	formatter codefmt.Formatter,
	logger *log.Logger,
) string {
	if opts == nil {
		opts = config.Default()
	}
	if tag.Title == jsdoc.BlankSeparator {
		return "\n"
	}

	isBare := tag.Title == ""
	lookupTitle := tag.Title
	if isBare {
		lookupTitle = jsdoc.TitleDescription
	}
	caps, known := jsdoc.Lookup(lookupTitle)

	gapWidth := opts.GapWidth
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := strings.Repeat(" ", gapWidth)
	aligned := opts.AlignVertically && caps.Alignable

	prefix := columnPrefix(tag, isBare, caps, m, opts, aligned, gap)

	if tag.Description == "" {
		return "\n" + strings.TrimRight(prefix, " ")
	}

	// Decide whether the description starts inline after the columns or on
	// a fresh line. Teardown-style kinds always drop to a new line.
	startColumn := 0
	inline := false
	if !caps.OwnLine && prefix != "" {
		firstWord, _, _ := strings.Cut(strings.TrimSpace(tag.Description), " ")
		if len(prefix)+gapWidth+len(firstWord) <= opts.PrintWidth {
			inline = true
			startColumn = len(prefix) + gapWidth
		}
	}

	rendered := tag.Description
	if known && caps.Reflowable {
		rendered = reflow.Reflow(tag.Description, reflow.Context{
			Width:            opts.PrintWidth,
			StartColumn:      startColumn,
			PreferFences:     opts.PreferFences,
			ForcePunctuation: opts.ForcePunctuation,
			DetectLanguage:   opts.LanguageDetection,
			BareDescription:  isBare,
			Formatter:        formatter,
			Logger:           logger,
		})
	}

	if opts.SeparateTagGroups {
		rendered = strings.TrimRight(rendered, " \t\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	switch {
	case inline:
		b.WriteString(prefix)
		b.WriteString(gap)
		b.WriteString(strings.TrimLeft(rendered, "\n "))
	case prefix == "":
		b.WriteString(strings.TrimLeft(rendered, "\n"))
	default:
		b.WriteString(strings.TrimRight(prefix, " "))
		b.WriteString("\n")
		b.WriteString(strings.TrimLeft(rendered, "\n"))
	}

	// Free-text kinds read better with a blank line before the next tag.
	if caps.TrailingBlank && index < total-1 {
		b.WriteString("\n")
	}

	return b.String()
}

// columnPrefix renders the "@title {type} name" prefix with any alignment
// padding. An absent column in an aligned group still occupies its width so
// following columns line up.
func columnPrefix(
	tag jsdoc.Tag,
	isBare bool,
	caps jsdoc.Capabilities,
	m Metrics,
	opts *config.Options,
	aligned bool,
	gap string,
) string {
	var parts []string

	title := ""
	if !isBare || opts.AlwaysShowDescriptionTag {
		name := tag.Title
		if isBare {
			name = jsdoc.TitleDescription
		}
		title = "@" + name
	}
	switch {
	case title != "" && aligned:
		parts = append(parts, pad(title, m.MaxTitle+1))
	case title != "":
		parts = append(parts, title)
	case aligned && m.MaxTitle > 0:
		// No title: push the next column out by the title width plus gap.
		parts = append(parts, strings.Repeat(" ", m.MaxTitle+1))
	}

	typeText := ""
	if tag.Type != "" {
		if caps.DefaultKind {
			typeText = defaultDisplay(tag.Type)
		} else {
			typeText = "{" + tag.Type + "}"
		}
	}
	switch {
	case typeText != "" && aligned:
		parts = append(parts, pad(typeText, m.MaxType))
	case typeText != "":
		parts = append(parts, typeText)
	case aligned && m.MaxType > 0:
		parts = append(parts, strings.Repeat(" ", m.MaxType))
	}

	switch {
	case tag.Name != "" && aligned:
		parts = append(parts, pad(tag.Name, m.MaxName))
	case tag.Name != "":
		parts = append(parts, tag.Name)
	}

	return strings.Join(parts, gap)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// defaultDisplay renders a default-value literal for the type slot: empty
// array/object literals get a readability space, and semicolon-separated
// object-literal fields become comma-separated.
func defaultDisplay(v string) string {
	switch v {
	case "[]":
		return "[ ]"
	case "{}":
		return "{ }"
	}
	if strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}") {
		return strings.ReplaceAll(v, ";", ",")
	}
	return v
}
