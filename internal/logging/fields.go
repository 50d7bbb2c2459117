package logging

// Field name constants for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldBlocks  = "blocks"
	FieldTags    = "tags"
	FieldWidth   = "width"
	FieldJobs    = "jobs"
	FieldDialect = "dialect"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
