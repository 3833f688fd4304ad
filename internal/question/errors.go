package question

import (
	"fmt"
	"strings"
)

// NotFoundError reports that the question bank is absent or unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("question bank %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedDataError reports that the question bank is not well-formed CSV.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("question bank %q is malformed: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// SchemaError reports that the header row lacks required columns.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("question bank missing required columns: %s", strings.Join(e.Missing, ", "))
}
