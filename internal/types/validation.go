// Package types provides type definitions for structured data used throughout the resume wizard.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FieldError attaches a human-readable message to a dotted field path such as "experience.0.company"
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating one resume section
type ValidationResult struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors"`
}

// NewValidationResult builds a result whose validity is derived from the error list
func NewValidationResult(errs []FieldError) ValidationResult {
	if errs == nil {
		errs = []FieldError{}
	}
	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
