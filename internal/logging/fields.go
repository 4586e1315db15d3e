package logging

// Field name constants for structured logging.
const (
	FieldError   = "err"
	FieldURI     = "uri"
	FieldPath    = "path"
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	FieldEdits  = "edits"
	FieldStart  = "start"
	FieldEnd    = "end"
	FieldOffset = "offset"
	FieldRule   = "rule"

	FieldAddress = "address"
	FieldLevel   = "level"
)
