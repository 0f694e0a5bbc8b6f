package resumefile

import (
	"fmt"

	"github.com/jonathan/resume-wizard/internal/schemas"
)

// LoadError represents an error during file I/O or decoding
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SchemaError reports a document whose shape does not match the resume schema
type SchemaError struct {
	Path   string
	Errors []schemas.FieldError
	Cause  error
}

func (e *SchemaError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("schema error in %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("schema error in %s: %s: %s (and %d more)", e.Path, e.Errors[0].Field, e.Errors[0].Message, len(e.Errors)-1)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
