package logger

// Standard field names for consistent structured logging.
const (
	FieldCommand   = "command"
	FieldFile      = "file"
	FieldFormat    = "format"
	FieldRank      = "rank"
	FieldShape     = "shape"
	FieldCount     = "count"
	FieldSelection = "selection"
	FieldError     = "error"
)
