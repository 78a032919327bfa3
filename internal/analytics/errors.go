package analytics

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from the input header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DateParseError reports a date value that could not be parsed. Line is the
// 1-based CSV line number of the offending row.
type DateParseError struct {
	Value string
	Line  int
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse date %q", e.Line, e.Value)
}
