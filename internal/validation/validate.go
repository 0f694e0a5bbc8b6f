// Package validation checks each resume section and reports field-tagged problems.
//
// Every entry point is pure: it never mutates its input and always returns the same
// types.ValidationResult for the same input. Problems are returned as data, not errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-wizard/internal/types"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneStrip  = regexp.MustCompile(`[^\d+]`)
	urlRegex    = regexp.MustCompile(`^https?://.+\..+`)
	gpaRegex    = regexp.MustCompile(`^\d+(\.\d+)?(\s*/\s*\d+(\.\d+)?)?$`)
	monthLayout = "2006-01"
	validate    = newValidator()
)

// newValidator builds the shared validator with the resume-specific tags registered.
// A *validator.Validate is safe for concurrent use once configured.
func newValidator() *validator.Validate {
	v := validator.New()

	// Report wire names ("fullName") instead of Go names ("FullName")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "email_shape", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	mustRegister(v, "phone_shape", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	mustRegister(v, "web_url", func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})
	mustRegister(v, "gpa_shape", func(fl validator.FieldLevel) bool {
		return IsGPA(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
	}
}

// IsEmail reports whether s has the local@domain.tld shape
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s, once stripped of everything but digits and '+',
// looks like an international number: optional '+', a leading 1-9, at most 16 digits.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(phoneStrip.ReplaceAllString(s, ""))
}

// IsURL reports whether s is an http(s) URL with at least one dot. Empty is valid.
func IsURL(s string) bool {
	if s == "" {
		return true
	}
	return urlRegex.MatchString(s)
}

// IsGPA reports whether s is a bare number or number/number. No scale bound is applied.
func IsGPA(s string) bool {
	return gpaRegex.MatchString(s)
}

// messageKey identifies the message for a failed (field, tag) pair
type messageKey struct {
	field string
	tag   string
}

// structErrors validates v and maps every failure to a FieldError using messages.
// prefix is prepended to the field path and suffix appended to the message.
func structErrors(v any, prefix, suffix string, messages map[messageKey]string) []types.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.FieldError{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	out := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[messageKey{field: fe.Field(), tag: fe.Tag()}]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out = append(out, types.FieldError{
			Field:   prefix + fe.Field(),
			Message: msg + suffix,
		})
	}
	return out
}

// ValidateResume runs every section validator and concatenates the errors in step order
func ValidateResume(r types.Resume) types.ValidationResult {
	var errs []types.FieldError
	errs = append(errs, ValidatePersonalInfo(r.PersonalInfo).Errors...)
	errs = append(errs, ValidateSummary(r.Summary).Errors...)
	errs = append(errs, ValidateExperience(r.Experience).Errors...)
	errs = append(errs, ValidateEducation(r.Education).Errors...)
	errs = append(errs, ValidateSkills(r.Skills).Errors...)
	return types.NewValidationResult(errs)
}
