package codefmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
)

func TestFormatTable(t *testing.T) {
	got, err := codefmt.Default{}.Format(
		"| a | b |\n|---|---|\n| 1 | 2 |", "", codefmt.DialectMarkdown, codefmt.Options{})

	require.NoError(t, err)
	assert.Equal(t, "| a   | b   |\n| --- | --- |\n| 1   | 2   |", got)
}

func TestFormatTableRagged(t *testing.T) {
	got, err := codefmt.Default{}.Format(
		"|name|meaning|\n|---|---|\n|x|the unknown value|", "",
		codefmt.DialectMarkdown, codefmt.Options{})

	require.NoError(t, err)
	assert.Equal(t,
		"| name | meaning           |\n"+
			"| ---- | ----------------- |\n"+
			"| x    | the unknown value |",
		got)
}

func TestFormatTableAlignment(t *testing.T) {
	got, err := codefmt.Default{}.Format(
		"| a | b | c |\n|:--|--:|:-:|\n| 1 | 2 | 3 |", "",
		codefmt.DialectMarkdown, codefmt.Options{})

	require.NoError(t, err)
	assert.Equal(t, "| a   | b   | c   |\n| :-- | --: | :-: |\n| 1   | 2   | 3   |", got)
}

func TestFormatTableIndented(t *testing.T) {
	got, err := codefmt.Default{}.Format(
		"| a |\n|---|\n| 1 |", "  ", codefmt.DialectMarkdown, codefmt.Options{})

	require.NoError(t, err)
	assert.Equal(t, "  | a   |\n  | --- |\n  | 1   |", got)
}

func TestFormatTableNotATable(t *testing.T) {
	_, err := codefmt.Default{}.Format(
		"just prose", "", codefmt.DialectMarkdown, codefmt.Options{})

	assert.Error(t, err)
}
