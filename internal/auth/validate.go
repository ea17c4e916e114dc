package auth

import (
	"strings"
	"unicode"

	"github.com/nhle/taskflow/internal/model"
)

const specialChars = "!@#$%^&*()-+={}[]|\\:;'\"<>,.?/"

// maxEmailLen matches the column width in the users table.
const maxEmailLen = 100

// ValidateName accepts display names of at least three letters with no
// digits or special characters.
func ValidateName(name string) error {
	if len(name) <= 2 {
		return &model.ValidationError{Field: "name", Reason: "must be at least 3 characters"}
	}
	for _, r := range name {
		if unicode.IsDigit(r) || strings.ContainsRune(specialChars, r) {
			return &model.ValidationError{Field: "name", Reason: "must not contain digits or special characters"}
		}
	}
	return nil
}

// ValidateEmail applies the registration-time shape checks: exactly one
// "@", non-empty local and domain parts, a dotted domain, no spaces.
func ValidateEmail(email string) error {
	reason := ""
	local, domain, _ := strings.Cut(email, "@")
	switch {
	case email == "":
		reason = "must not be empty"
	case len(email) > maxEmailLen:
		reason = "too long"
	case strings.Count(email, "@") != 1:
		reason = "must contain exactly one @"
	case strings.Contains(email, " "):
		reason = "must not contain spaces"
	case local == "" || domain == "":
		reason = "missing local or domain part"
	case !strings.Contains(domain, "."):
		reason = "domain must contain a dot"
	case strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, "."):
		reason = "domain must not start or end with a dot"
	}
	if reason != "" {
		return &model.ValidationError{Field: "email", Reason: reason}
	}
	return nil
}

// ValidatePassword requires at least one lowercase letter, one uppercase
// letter, one digit, and one special character.
func ValidatePassword(password string) error {
	if password == "" {
		return &model.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	if !(lower && upper && digit && special) {
		return &model.ValidationError{
			Field:  "password",
			Reason: "must mix lower case, upper case, digits, and special characters",
		}
	}
	return nil
}
