package reflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakLines(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		width       int
		indent      string
		startColumn int
		want        string
	}{
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  "short text",
		},
		{
			name:  "breaks at last space before boundary",
			text:  "alpha beta gamma delta",
			width: 12,
			want:  "alpha beta\ngamma delta",
		},
		{
			name:  "boundary word then wrap",
			text:  "aaaa bb",
			width: 4,
			want:  "aaaa\nbb",
		},
		{
			name:   "continuation lines carry indent",
			text:   "aaa bbb ccc",
			width:  8,
			indent: "  ",
			want:   "aaa\n  bbb\n  ccc",
		},
		{
			name:        "start column shortens first line only",
			text:        "aaa bbb ccc",
			width:       8,
			startColumn: 4,
			want:        "aaa\nbbb ccc",
		},
		{
			name:  "unbreakable token breaks at next space",
			text:  "supercalifragilistic word",
			width: 5,
			want:  "supercalifragilistic\nword",
		},
		{
			name:  "single unbreakable token emitted whole",
			text:  "supercalifragilistic",
			width: 5,
			want:  "supercalifragilistic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := breakLines(tt.text, tt.width, tt.indent, tt.startColumn)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBreakLinesRespectsWidth(t *testing.T) {
	text := strings.Repeat("word ", 40) + "end"
	got := breakLines(text, 30, "    ", 4)

	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 30, "line %q exceeds width", line)
	}
}

func TestShieldAndRestoreRefs(t *testing.T) {
	in := "see {@link https://example.com/a b} and {@linkcode Foo} end"

	shielded, captured := shieldRefs(in)

	require.Len(t, captured, 2)
	assert.NotContains(t, shielded, "{@link")
	assert.Equal(t, len(in), len(shielded))

	assert.Equal(t, in, restoreRefs(shielded, captured))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace("  a \t b \n c "))
}

func TestEndsInWord(t *testing.T) {
	assert.True(t, endsInWord("word"))
	assert.True(t, endsInWord("word9"))
	assert.False(t, endsInWord("word."))
	assert.False(t, endsInWord(""))
}
