package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func (v *Validator) registerCustomRules() {
	// Registration errors only happen for invalid rule definitions.
	_ = v.validate.RegisterValidation("password_strength", validatePasswordStrength)
	_ = v.validate.RegisterValidation("full_name", validateFullName)
}

// validatePasswordStrength requires at least 8 characters with an uppercase
// letter, a digit and a special character.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// validateFullName requires exactly two names, each 2 to 100 characters.
// Used for the author field on exercises.
func validateFullName(fl validator.FieldLevel) bool {
	names := strings.Fields(fl.Field().String())
	if len(names) != 2 {
		return false
	}
	for _, name := range names {
		if len(name) < 2 || len(name) > 100 {
			return false
		}
	}
	return true
}
