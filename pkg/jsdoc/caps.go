package jsdoc

import "strings"

// Capabilities describes how one tag kind is rendered. A single record per
// kind replaces parallel membership lists so the classifications cannot
// drift apart.
type Capabilities struct {
	// HasName is false for kinds whose semantic meaning does not use a name
	// field; a captured name is folded into the description.
	HasName bool

	// HasType is false for kinds that never carry a type expression; a
	// captured type is folded back into the description as "{type}".
	HasType bool

	// NeedsDescription marks kinds that are dropped from output when their
	// description is empty.
	NeedsDescription bool

	// Reflowable is false for preformatted kinds whose description text
	// passes through the reflow engine unmodified.
	Reflowable bool

	// Alignable marks kinds whose title/type/name columns participate in
	// vertical alignment across siblings.
	Alignable bool

	// DefaultKind marks default-value tags whose literal is re-extracted
	// from the raw source line and displayed in the type slot unbraced.
	DefaultKind bool

	// OwnLine forces the description onto a fresh line below the tag,
	// regardless of remaining width.
	OwnLine bool

	// TrailingBlank appends a blank line after the tag when it is not the
	// last one in the block.
	TrailingBlank bool
}

// Order is the canonical tag table. It fixes both the accepted casing of
// each known tag and the order blocks are expected to arrive in (ordering
// itself is applied by the caller).
var Order = []string{
	"async",
	"private",
	"protected",
	"public",
	"internal",
	"ignore",
	"memberof",
	"version",
	"author",
	"license",
	"deprecated",
	"since",
	"category",
	TitleDescription,
	"remarks",
	"example",
	"abstract",
	"augments",
	"constant",
	"default",
	"external",
	"file",
	"fires",
	"template",
	"function",
	"class",
	"typedef",
	"event",
	"interface",
	"type",
	"param",
	"property",
	"callback",
	"generator",
	"this",
	"yields",
	"returns",
	"throws",
	"see",
	"todo",
}

// Synonyms maps lowercase tag aliases to their canonical title.
var Synonyms = map[string]string{
	"virtual":      "abstract",
	"extends":      "augments",
	"constructor":  "class",
	"const":        "constant",
	"defaultvalue": "default",
	"desc":         TitleDescription,
	"host":         "external",
	"fileoverview": "file",
	"overview":     "file",
	"emits":        "fires",
	"func":         "function",
	"method":       "function",
	"var":          "member",
	"arg":          "param",
	"argument":     "param",
	"prop":         "property",
	"return":       "returns",
	"exception":    "throws",
	"yield":        "yields",
}

var capabilities = map[string]Capabilities{
	// Free-text kinds.
	TitleDescription: {NeedsDescription: true, Reflowable: true, OwnLine: true, TrailingBlank: true},
	"remarks":        {NeedsDescription: true, OwnLine: true},
	"example":        {NeedsDescription: true, OwnLine: true, TrailingBlank: true},
	"file":           {Reflowable: true, OwnLine: true},
	"see":            {Reflowable: true},
	"todo":           {NeedsDescription: true, Reflowable: true, TrailingBlank: true},
	"deprecated":     {Reflowable: true},
	"since":          {Reflowable: true},
	"version":        {Reflowable: true},
	"author":         {Reflowable: true},
	"license":        {Reflowable: true},
	"category":       {Reflowable: true},
	"classdesc":      {NeedsDescription: true, Reflowable: true, OwnLine: true},

	// Typed, named kinds.
	"param":    {HasName: true, HasType: true, Reflowable: true, Alignable: true},
	"property": {HasName: true, HasType: true, Reflowable: true, Alignable: true},
	"typedef":  {HasName: true, HasType: true, Reflowable: true},
	"template": {HasName: true, Reflowable: true},
	"callback": {HasName: true, Reflowable: true},
	"event":    {HasName: true, Reflowable: true},
	"external": {HasName: true, Reflowable: true},
	"member":   {HasName: true, HasType: true, Reflowable: true},
	"memberof": {HasName: true, Reflowable: true},
	"borrows":  {HasName: true, Reflowable: true},

	// Typed, nameless kinds.
	"returns": {HasType: true, Reflowable: true, Alignable: true},
	"throws":  {HasType: true, Reflowable: true},
	"yields":  {HasType: true, Reflowable: true},
	"type":    {HasType: true},
	"this":    {HasType: true},
	"enum":    {HasType: true},

	// Default-value kinds: the literal is displayed in the type slot.
	"default": {HasType: true, DefaultKind: true, Reflowable: true},

	// Named declaration kinds.
	"augments":  {HasName: true},
	"class":     {HasName: true, HasType: true},
	"constant":  {HasName: true, HasType: true},
	"function":  {HasName: true},
	"interface": {HasName: true},
	"module":    {HasName: true, HasType: true},
	"namespace": {HasName: true, HasType: true},
	"fires":     {HasName: true},

	// Bare marker kinds.
	"abstract":  {},
	"async":     {},
	"generator": {},
	"global":    {},
	"ignore":    {},
	"internal":  {},
	"private":   {},
	"protected": {},
	"public":    {},
	"readonly":  {},
	"static":    {},
}

// Lookup returns the capability record for a canonical title. Unknown titles
// report ok=false; their descriptions pass through unreflowed.
func Lookup(title string) (Capabilities, bool) {
	caps, ok := capabilities[title]
	return caps, ok
}

// Canonical resolves casing and synonyms for a tag title. The match is
// case-insensitive; unknown titles are returned unchanged.
func Canonical(title string) string {
	lower := strings.ToLower(title)
	if canonical, ok := Synonyms[lower]; ok {
		return canonical
	}
	if _, ok := capabilities[lower]; ok {
		return lower
	}
	for _, known := range Order {
		if lower == strings.ToLower(known) {
			return known
		}
	}
	return title
}
