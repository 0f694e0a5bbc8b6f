package validation

import (
	"fmt"

	"github.com/jonathan/resume-wizard/internal/types"
)

var skillMessages = map[messageKey]string{
	{"name", "notblank"}: "Skill name is required",
}

// ValidateSkills checks that every skill has a name. Level and category are not checked.
func ValidateSkills(skills []types.Skill) types.ValidationResult {
	var errs []types.FieldError

	for i, skill := range skills {
		prefix := fmt.Sprintf("skills.%d.", i)
		suffix := fmt.Sprintf(" for skill #%d", i+1)
		errs = append(errs, structErrors(skill, prefix, suffix, skillMessages)...)
	}

	return types.NewValidationResult(errs)
}
