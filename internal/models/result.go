package models

// LineStatus classifies the outcome of a single transcript line.
type LineStatus string

const (
	StatusSuccess LineStatus = "success"
	StatusIgnored LineStatus = "ignored"
)

// LineOutcome records what the parser decided for one non-blank input line.
// Field, Keyword and Quantity are only meaningful when Status is
// StatusSuccess.
type LineOutcome struct {
	Line     string
	Status   LineStatus
	Message  string
	Field    FieldID
	Keyword  string
	Quantity int
}

// ParseResult is the complete output of one parse run: accumulated
// per-field totals plus the line-by-line decision log in input order.
// Ownership transfers entirely to the caller.
type ParseResult struct {
	Totals map[FieldID]int
	Log    []LineOutcome
}

// NewParseResult returns an empty result ready to accumulate into.
func NewParseResult() ParseResult {
	return ParseResult{Totals: make(map[FieldID]int)}
}

// Add accumulates quantity into the running total for field. Repeated lines
// resolving to the same field sum rather than overwrite.
func (r *ParseResult) Add(field FieldID, quantity int) {
	r.Totals[field] += quantity
}

// Total returns the sum of all field totals.
func (r *ParseResult) Total() int {
	sum := 0
	for _, q := range r.Totals {
		sum += q
	}
	return sum
}
