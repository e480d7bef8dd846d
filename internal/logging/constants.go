package logging

// Standardized field names for structured logging.
// Keeping these in one place makes the log output consistent and easy to
// filter when debugging a parse run.
const (
	FieldFile      = "file_path"
	FieldField     = "field"
	FieldGroup     = "group"
	FieldKeyword   = "keyword"
	FieldLine      = "line"
	FieldQuantity  = "quantity"
	FieldStatus    = "status"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldError     = "error"
)
