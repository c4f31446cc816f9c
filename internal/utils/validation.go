package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - covers both numeric
	// ids and prefixed synthetic ids like VENTA-1021
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateResourceName validates a catalog resource name from the URL.
func ValidateResourceName(name string) error {
	if name == "" {
		return errors.New("resource cannot be empty")
	}

	if len(name) > 50 {
		return errors.New("resource name too long (max 50 characters)")
	}

	if !validIDPattern.MatchString(name) {
		return errors.New("resource name contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}
