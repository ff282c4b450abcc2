package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Document fields.
	FieldLanguage = "language"
	FieldBytes    = "bytes"
	FieldLines    = "lines"

	// Snippet fields.
	FieldSnippetID = "snippet_id"
	FieldTitle     = "title"
	FieldCount     = "count"

	// Runner fields.
	FieldEndpoint = "endpoint"
	FieldSuccess  = "success"
	FieldDuration = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
