// Package jsdoc defines the tag-block data model and the normalization
// passes that turn raw tokenizer output into canonical tag records.
package jsdoc

// Tag is one semantic unit of a documentation block. An empty Title denotes
// the block's leading free-text description record.
type Tag struct {
	// Title is the tag keyword without the leading "@".
	Title string `yaml:"title"`

	// Type is the free-form type expression text, possibly empty.
	Type string `yaml:"type"`

	// Name is the tagged identifier. After ResolveNameDefaults it may carry
	// bracket-optional markup such as "[count=0]".
	Name string `yaml:"name"`

	// Description is the raw, possibly multi-line markdown-ish text.
	Description string `yaml:"description"`

	// Optional marks a tag whose name was bracket-optional in the source.
	Optional bool `yaml:"optional"`

	// Default holds the captured default value; HasDefault distinguishes an
	// absent default from an empty one.
	Default    string `yaml:"default"`
	HasDefault bool   `yaml:"has_default"`

	// SourceLines are the raw source line fragments the tag was tokenized
	// from. Used to recover text lost by upstream tokenization, e.g. the
	// body of default-value tags.
	SourceLines []string `yaml:"source"`
}

// Block is an ordered sequence of tags. Insertion order is rendering order.
// After MergeDescriptions at most one record is the bare description, and it
// is always first.
type Block []Tag

// BlankSeparator is the reserved title of a record that preserves an
// intentional blank line between tags. The stringifier short-circuits it.
const BlankSeparator = "--"

// TitleDescription is the canonical title of description-carrying tags
// before they are merged into the bare description record.
const TitleDescription = "description"
