package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	maxTitleLength = 200
	maxBodyLength  = 1_000_000
	maxTagCount    = 20
	maxTagLength   = 50
)

var (
	upperRe        = regexp.MustCompile(`[A-Z]`)
	lowerRe        = regexp.MustCompile(`[a-z]`)
	digitRe        = regexp.MustCompile(`[0-9]`)
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// ValidatePassword checks password strength and returns every failed rule
func ValidatePassword(password string) []string {
	var errors []string

	if len(password) < 8 {
		errors = append(errors, "Password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one number")
	}

	return errors
}

// ValidateURL reports whether a string is an absolute http(s) URL
func ValidateURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ValidateContentTitle checks a content title for presence and length
func ValidateContentTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("Title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("Title must be less than %d characters", maxTitleLength)
	}
	return nil
}

// ValidateContentBody checks a content body for presence and size
func ValidateContentBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("Content body is required")
	}
	if len(body) > maxBodyLength {
		return fmt.Errorf("Content body is too long (max 1MB)")
	}
	return nil
}

// ValidateTags checks tag count, length and charset
func ValidateTags(tags []string) error {
	if len(tags) > maxTagCount {
		return fmt.Errorf("Maximum %d tags allowed", maxTagCount)
	}
	for _, tag := range tags {
		if len(tag) > maxTagLength {
			return fmt.Errorf("Each tag must be less than %d characters", maxTagLength)
		}
		if !alphanumericRe.MatchString(tag) {
			return fmt.Errorf("Tags can only contain letters, numbers, and spaces")
		}
	}
	return nil
}
