package jsdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turadg/jsdocfmt/pkg/jsdoc"
)

func TestNormalizeBraceRepair(t *testing.T) {
	tests := []struct {
		name      string
		in        jsdoc.Tag
		wantTitle string
		wantType  string
	}{
		{
			name:      "type tokenized into title",
			in:        jsdoc.Tag{Title: "param{string}", Name: "foo"},
			wantTitle: "param",
			wantType:  "string",
		},
		{
			name:      "returns with type in title",
			in:        jsdoc.Tag{Title: "returns{number}"},
			wantTitle: "returns",
			wantType:  "number",
		},
		{
			name:      "brace without closing suffix left alone",
			in:        jsdoc.Tag{Title: "param{string", Type: "x"},
			wantTitle: "param{string",
			wantType:  "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jsdoc.Normalize([]jsdoc.Tag{tt.in})[0]
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantType, got.Type)
		})
	}
}

func TestNormalizeSynonyms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"casing", "Returns", "returns"},
		{"arg to param", "arg", "param"},
		{"argument to param", "Argument", "param"},
		{"exception to throws", "exception", "throws"},
		{"prop to property", "prop", "property"},
		{"unknown passes through", "customTag", "customTag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jsdoc.Normalize([]jsdoc.Tag{{Title: tt.in}})[0]
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestNormalizeTrims(t *testing.T) {
	got := jsdoc.Normalize([]jsdoc.Tag{{
		Title:       "  param ",
		Type:        " string ",
		Name:        " foo ",
		Description: " the foo \n",
	}})[0]

	assert.Equal(t, "param", got.Title)
	assert.Equal(t, "string", got.Type)
	assert.Equal(t, "foo", got.Name)
	assert.Equal(t, "the foo", got.Description)
}

func TestNormalizeNamelessFoldsNameIntoDescription(t *testing.T) {
	got := jsdoc.Normalize([]jsdoc.Tag{{
		Title:       "returns",
		Name:        "value",
		Description: "the result",
	}})[0]

	assert.Empty(t, got.Name)
	assert.Equal(t, "value the result", got.Description)
}

func TestNormalizeTypelessFoldsTypeIntoDescription(t *testing.T) {
	got := jsdoc.Normalize([]jsdoc.Tag{{
		Title:       "author",
		Type:        "string",
		Description: "Jane Doe",
	}})[0]

	assert.Empty(t, got.Type)
	assert.Equal(t, "{string} Jane Doe", got.Description)
}
