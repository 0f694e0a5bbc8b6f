package validation

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-wizard/internal/types"
)

var experienceMessages = map[messageKey]string{
	{"company", "notblank"}:        "Company name is required",
	{"position", "notblank"}:       "Position is required",
	{"startDate", "required"}:      "Start date is required",
	{"endDate", "required_unless"}: "End date is required",
}

// ValidateExperience checks every work history entry. Field paths are indexed by
// position, e.g. "experience.0.company".
func ValidateExperience(entries []types.Experience) types.ValidationResult {
	var errs []types.FieldError

	for i, exp := range entries {
		prefix := fmt.Sprintf("experience.%d.", i)
		suffix := fmt.Sprintf(" for experience #%d", i+1)

		errs = append(errs, structErrors(exp, prefix, suffix, experienceMessages)...)

		if exp.StartDate != "" && exp.EndDate != "" && !exp.IsCurrentRole && endsBeforeStart(exp.StartDate, exp.EndDate) {
			errs = append(errs, types.FieldError{
				Field:   prefix + "endDate",
				Message: "End date cannot be before start date" + suffix,
			})
		}
	}

	return types.NewValidationResult(errs)
}

// endsBeforeStart compares two YYYY-MM values as the first day of their months.
// Unparseable dates never compare as out of order.
func endsBeforeStart(start, end string) bool {
	s, err := time.Parse(monthLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(monthLayout, end)
	if err != nil {
		return false
	}
	return e.Before(s)
}
