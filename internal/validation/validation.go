// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// ValidateEmail checks basic email shape and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername checks if a username meets requirements.
// Usernames are stored lower-cased, so only lowercase input is accepted.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username may only contain lowercase letters, numbers, and underscores")
	}
	return nil
}

// ValidateName checks the display name constraints.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return fmt.Errorf("name must be at least 2 characters long")
	}
	if len(trimmed) > 50 {
		return fmt.Errorf("name must not exceed 50 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateBio checks the profile bio length limit.
func ValidateBio(bio string) error {
	if len(bio) > 200 {
		return fmt.Errorf("bio must not exceed 200 characters")
	}
	return nil
}
