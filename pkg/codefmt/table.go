package codefmt

import (
	"errors"
	"regexp"
	"strings"
)

// errNotTable is returned when the content has no recognizable pipe rows.
var errNotTable = errors.New("not a pipe table")

// delimiterCell matches one cell of a table delimiter row, e.g. ":---".
var delimiterCell = regexp.MustCompile(`^:?-+:?$`)

type cellAlign int

const (
	alignNone cellAlign = iota
	alignLeft
	alignRight
	alignCenter
)

// formatTable re-renders a markdown pipe table with one space of cell
// padding and columns padded to the widest cell. Alignment colons on the
// delimiter row are preserved.
func formatTable(src string) (string, error) {
	var rows [][]string
	var aligns []cellAlign
	delimiterAt := -1

	for _, line := range strings.Split(strings.TrimRight(src, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			continue
		}
		cells := splitRow(trimmed)
		if delimiterAt < 0 && isDelimiterRow(cells) {
			delimiterAt = len(rows)
			aligns = rowAlignments(cells)
			continue
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return "", errNotTable
	}

	widths := columnWidths(rows)

	var b strings.Builder
	for i, row := range rows {
		writeRow(&b, row, widths)
		if i == 0 && delimiterAt >= 0 {
			writeDelimiter(&b, widths, aligns)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// splitRow splits "| a | b |" into trimmed cell texts.
func splitRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isDelimiterRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !delimiterCell.MatchString(c) {
			return false
		}
	}
	return true
}

func rowAlignments(cells []string) []cellAlign {
	aligns := make([]cellAlign, len(cells))
	for i, c := range cells {
		leading := strings.HasPrefix(c, ":")
		trailing := strings.HasSuffix(c, ":")
		switch {
		case leading && trailing:
			aligns[i] = alignCenter
		case trailing:
			aligns[i] = alignRight
		case leading:
			aligns[i] = alignLeft
		}
	}
	return aligns
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	// Delimiter cells need room for at least three dashes.
	for i, w := range widths {
		if w < 3 {
			widths[i] = 3
		}
	}
	return widths
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	b.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-len(cell)))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeDelimiter(b *strings.Builder, widths []int, aligns []cellAlign) {
	b.WriteString("|")
	for i, w := range widths {
		align := alignNone
		if i < len(aligns) {
			align = aligns[i]
		}
		cell := strings.Repeat("-", w)
		switch align {
		case alignLeft:
			cell = ":" + strings.Repeat("-", w-1)
		case alignRight:
			cell = strings.Repeat("-", w-1) + ":"
		case alignCenter:
			cell = ":" + strings.Repeat("-", w-2) + ":"
		case alignNone:
		}
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
