// Package validation holds the client-side form rules. Every rule runs on
// submit, all fields are checked even after the first failure, and the
// resulting map carries one message per invalid field.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Field names shared with the form screens.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldFullName        = "fullName"
	FieldConfirmPassword = "confirmPassword"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
)

// Errors maps a field name to its validation message. Empty means valid.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail checks the simple <text>@<text>.<text> shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateLogin(email, password string) Errors {
	errs := Errors{}

	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !ValidEmail(email) {
		errs[FieldEmail] = "Email is invalid"
	}

	if password == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < 6 {
		errs[FieldPassword] = "Password must be at least 6 characters"
	}

	return errs
}

func ValidateSignup(fullName, email, password, confirmPassword string) Errors {
	errs := Errors{}

	if strings.TrimSpace(fullName) == "" {
		errs[FieldFullName] = "Full name is required"
	} else if len(strings.TrimSpace(fullName)) < 2 {
		errs[FieldFullName] = "Full name must be at least 2 characters"
	}

	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !ValidEmail(email) {
		errs[FieldEmail] = "Email format is invalid"
	}

	if password == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < 8 {
		errs[FieldPassword] = "Password must be at least 8 characters"
	} else if !hasMixedCase(password) {
		errs[FieldPassword] = "Password must contain uppercase and lowercase letters"
	} else if !hasDigit(password) {
		errs[FieldPassword] = "Password must contain at least one number"
	}

	if confirmPassword == "" {
		errs[FieldConfirmPassword] = "Please confirm your password"
	} else if password != confirmPassword {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	return errs
}

func ValidateProfile(fullName, email string) Errors {
	errs := Errors{}

	if strings.TrimSpace(fullName) == "" {
		errs[FieldFullName] = "Full name is required"
	}

	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !ValidEmail(email) {
		errs[FieldEmail] = "Email format is invalid"
	}

	return errs
}

func ValidatePasswordChange(currentPassword, newPassword, confirmPassword string) Errors {
	errs := Errors{}

	if currentPassword == "" {
		errs[FieldCurrentPassword] = "Current password is required"
	}

	if newPassword == "" {
		errs[FieldNewPassword] = "New password is required"
	} else if len(newPassword) < 8 {
		errs[FieldNewPassword] = "Password must be at least 8 characters"
	}

	if confirmPassword == "" {
		errs[FieldConfirmPassword] = "Please confirm your password"
	} else if newPassword != confirmPassword {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	return errs
}

func hasMixedCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper = true
		}
		if unicode.IsLower(r) {
			lower = true
		}
	}
	return upper && lower
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
