package jsdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turadg/jsdocfmt/pkg/jsdoc"
)

func TestMergeDescriptions(t *testing.T) {
	tags := []jsdoc.Tag{
		{Title: "description", Description: "First part."},
		{Title: "param", Type: "string", Name: "foo"},
		{Title: "description", Description: "Second part."},
	}

	got := jsdoc.MergeDescriptions(tags)

	require.Len(t, got, 2)
	assert.Empty(t, got[0].Title)
	assert.Equal(t, "First part.\n\nSecond part.", got[0].Description)
	assert.Equal(t, "param", got[1].Title)
}

func TestMergeDescriptionsNoDescriptions(t *testing.T) {
	tags := []jsdoc.Tag{
		{Title: "param", Name: "a"},
		{Title: "returns", Type: "bool"},
	}

	got := jsdoc.MergeDescriptions(tags)

	require.Len(t, got, 2)
	assert.Equal(t, "param", got[0].Title)
	assert.Equal(t, "returns", got[1].Title)
}

func TestMergeDescriptionsAbsorbsBareRecord(t *testing.T) {
	tags := []jsdoc.Tag{
		{Description: "Leading text."},
		{Title: "description", Description: "More text."},
	}

	got := jsdoc.MergeDescriptions(tags)

	require.Len(t, got, 1)
	assert.Equal(t, "Leading text.\n\nMore text.", got[0].Description)
}

func TestMergeDescriptionsDropsEmpty(t *testing.T) {
	tags := []jsdoc.Tag{
		{Title: "description", Description: "   "},
		{Title: "param", Name: "a"},
	}

	got := jsdoc.MergeDescriptions(tags)

	require.Len(t, got, 1)
	assert.Equal(t, "param", got[0].Title)
}
