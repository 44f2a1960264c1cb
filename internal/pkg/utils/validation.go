package utils

import (
	"regexp"
	"time"

	"carebook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("future_date", validateFutureDate)
	validate.RegisterValidation("role_type", validateRoleType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

// validateFutureDate accepts calendar dates that are today or later.
// Comparison is date-only; time of day never matters.
func validateFutureDate(fl validator.FieldLevel) bool {
	parsed, err := time.ParseInLocation(constvars.CalendarDateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return !parsed.Before(Today())
}

func validateRoleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}
