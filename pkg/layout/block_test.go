package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
	"github.com/turadg/jsdocfmt/pkg/layout"
)

func TestFormatBlockMergesDescriptionFirst(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "param", Type: "number", Name: "count", Description: "the count"},
		{Title: "description", Description: "Does things."},
	}, nil, nil, nil)

	assert.Equal(t, "Does things.\n\n@param {number} count the count", got)
}

func TestFormatBlockOptionalDefault(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "description", Description: "Does things."},
		{
			Title: "param", Type: "number", Name: "count",
			Description: "the count",
			Optional:    true, HasDefault: true, Default: "0",
		},
	}, nil, nil, nil)

	assert.Equal(t, "Does things.\n\n@param {number} [count=0] the count", got)
}

func TestFormatBlockOptionalWithoutDefault(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "param", Type: "string", Name: "label", Optional: true},
	}, nil, nil, nil)

	assert.Equal(t, "@param {string} [label]", got)
}

func TestFormatBlockDropsEmptyRequiredDescriptions(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "example"},
		{Title: "todo", Description: "   "},
		{Title: "returns", Type: "void"},
	}, nil, nil, nil)

	assert.Equal(t, "@returns {void}", got)
}

func TestFormatBlockCanonicalizesSynonyms(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "arg", Type: "string", Name: "s", Description: "input"},
		{Title: "return", Type: "number", Description: "output"},
	}, nil, nil, nil)

	assert.Equal(t, "@param {string} s input\n@returns {number} output", got)
}

func TestFormatBlockFoldsTypeForTypelessKind(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "deprecated", Type: "string", Name: "use", Description: "other instead"},
	}, nil, nil, nil)

	assert.Equal(t, "@deprecated {string} use other instead", got)
}

func TestFormatBlockDefaultLiteralFromSource(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{
			Title:       "default",
			SourceLines: []string{"@default {foo: 1; bar: 2} the config"},
		},
	}, nil, nil, nil)

	assert.Equal(t, "@default {foo: 1, bar: 2} the config", got)
}

func TestFormatBlockRepairsBracedTitle(t *testing.T) {
	got := layout.FormatBlock(jsdoc.Block{
		{Title: "param{string}", Name: "s", Description: "input"},
	}, nil, nil, nil)

	assert.Equal(t, "@param {string} s input", got)
}

func TestFormatBlockIdempotentDescription(t *testing.T) {
	opts := config.Default()
	opts.PrintWidth = 16

	once := layout.FormatBlock(jsdoc.Block{
		{Description: "alpha beta gamma delta epsilon"},
	}, opts, nil, nil)
	twice := layout.FormatBlock(jsdoc.Block{{Description: once}}, opts, nil, nil)

	assert.Equal(t, once, twice)
}

func TestFormatBlockEmpty(t *testing.T) {
	assert.Empty(t, layout.FormatBlock(nil, nil, nil, nil))
}
