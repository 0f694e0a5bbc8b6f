package validation

import "github.com/jonathan/resume-wizard/internal/types"

var personalInfoMessages = map[messageKey]string{
	{"fullName", "notblank"}: "Full name is required",
	{"email", "notblank"}:    "Email address is required",
	{"email", "email_shape"}: "Please enter a valid email address",
	{"phone", "notblank"}:    "Phone number is required",
	{"phone", "phone_shape"}: "Please enter a valid phone number",
	{"location", "notblank"}: "Location is required",
	{"linkedin", "web_url"}:  "Please enter a valid LinkedIn URL",
	{"website", "web_url"}:   "Please enter a valid website URL",
}

// ValidatePersonalInfo checks the contact block. Name, email, phone and location are
// required; email and phone must have a plausible shape; LinkedIn and website are
// optional but must be http(s) URLs when present.
func ValidatePersonalInfo(info types.PersonalInfo) types.ValidationResult {
	return types.NewValidationResult(structErrors(info, "", "", personalInfoMessages))
}
