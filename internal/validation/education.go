package validation

import (
	"fmt"

	"github.com/jonathan/resume-wizard/internal/types"
)

var educationMessages = map[messageKey]string{
	{"institution", "notblank"}:    "Institution is required",
	{"degree", "notblank"}:         "Degree is required",
	{"field", "notblank"}:          "Field of study is required",
	{"graduationDate", "required"}: "Graduation date is required",
	{"gpa", "gpa_shape"}:           "Please enter a valid GPA format (e.g., 3.8 or 3.8/4.0)",
}

// ValidateEducation checks every education entry. GPA is optional and loosely
// checked: "3.8" and "3.8/4.0" pass, and so does any other number/number pair.
func ValidateEducation(entries []types.Education) types.ValidationResult {
	var errs []types.FieldError

	for i, edu := range entries {
		prefix := fmt.Sprintf("education.%d.", i)
		suffix := fmt.Sprintf(" for education #%d", i+1)
		errs = append(errs, structErrors(edu, prefix, suffix, educationMessages)...)
	}

	return types.NewValidationResult(errs)
}
