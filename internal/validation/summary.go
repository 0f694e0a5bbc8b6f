package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-wizard/internal/types"
)

// Summary length bounds, counted in characters after trimming
const (
	MinSummaryLength = 50
	MaxSummaryLength = 500
)

var summaryMessages = map[string]string{
	"required": "Professional summary is required",
	"min":      "Summary should be at least 50 characters long",
	"max":      "Summary should not exceed 500 characters",
}

// ValidateSummary checks that the trimmed summary is present and between
// MinSummaryLength and MaxSummaryLength characters inclusive.
func ValidateSummary(summary string) types.ValidationResult {
	err := validate.Var(strings.TrimSpace(summary), "required,min=50,max=500")
	if err == nil {
		return types.NewValidationResult(nil)
	}

	msg := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if m, ok := summaryMessages[verrs[0].Tag()]; ok {
			msg = m
		}
	}

	return types.NewValidationResult([]types.FieldError{{Field: "summary", Message: msg}})
}
