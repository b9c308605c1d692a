package config

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the request validator with the custom password rule:
// at least one uppercase letter, one lowercase letter and one digit. Length
// bounds live on the request tags.
func NewValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var hasUpper, hasLower, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasUpper && hasLower && hasDigit
	})

	return validate
}
