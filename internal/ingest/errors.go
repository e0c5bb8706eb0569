package ingest

import "fmt"

// ValidationError reports the first malformed input row. Row is the 1-based
// position of the record among the data rows, not counting the header.
type ValidationError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: field %q: %s", e.Row, e.Field, e.Reason)
}
