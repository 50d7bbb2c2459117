// Package config defines the read-only configuration surface for jsdocfmt.
// Options is a pure data structure; loading and persistence live in yaml.go.
package config

// Options is the root configuration for one formatting run. All fields are
// read-only once a run starts and safe for concurrent reads.
type Options struct {
	// PrintWidth is the usable width in columns for rendered lines.
	PrintWidth int `yaml:"print_width"`

	// GapWidth is the number of spaces between the title, type, name and
	// description columns.
	GapWidth int `yaml:"gap_width"`

	// AlignVertically pads the title/type/name columns of alignment-eligible
	// sibling tags to a common start column. Off by default: columns get a
	// single gap and no padding.
	AlignVertically bool `yaml:"align_vertically"`

	// AlwaysShowDescriptionTag renders an explicit "@description" title on
	// the bare description record.
	AlwaysShowDescriptionTag bool `yaml:"always_show_description_tag"`

	// SeparateTagGroups trims trailing whitespace from each tag's reflowed
	// description so group separators stay single blank lines.
	SeparateTagGroups bool `yaml:"separate_tag_groups"`

	// PreferFences renders untagged code blocks fenced instead of indented.
	PreferFences bool `yaml:"prefer_fences"`

	// ForcePunctuation appends a terminating period to description segments
	// that end in a word character.
	ForcePunctuation bool `yaml:"force_punctuation"`

	// LanguageDetection lets the delegate formatter guess a dialect for
	// fenced blocks that declare no language.
	LanguageDetection bool `yaml:"language_detection"`

	// CLI-level options (not persisted to config files).

	// Jobs is the number of parallel block workers. 0 means NumCPU.
	Jobs int `yaml:"-"`
}

// Default returns an Options with the stock defaults.
func Default() *Options {
	return &Options{
		PrintWidth:        80,
		GapWidth:          1,
		LanguageDetection: true,
	}
}
