package helpers

import (
	"errors"
	"regexp"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reDigit  = regexp.MustCompile(`[0-9]`)
)

var ErrWeakPassword = errors.New("password must contain at least one letter and one number")

func isAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reDigit.MatchString(s)
}

// ValidatePasswordStrength: minimal 8 karakter, huruf + angka.
func ValidatePasswordStrength(pw string) error {
	if len(pw) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(pw) > 72 {
		return errors.New("password must be at most 72 characters")
	}
	if !isAlphaNumeric(pw) {
		return ErrWeakPassword
	}
	return nil
}
