package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

const maxUtteranceLength = 2000

// ValidateUtterance checks the free-text query for emptiness and size
func ValidateUtterance(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if len(trimmed) > maxUtteranceLength {
		return fmt.Errorf("text too long (max %d characters)", maxUtteranceLength)
	}
	return nil
}

var sessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateSessionID validates session ID format. Empty is allowed; the
// service mints a fresh id in that case.
func ValidateSessionID(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if !sessionIDPattern.MatchString(sessionID) {
		return fmt.Errorf("invalid session ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// ValidateLocale checks the BCP-47-ish locale tag; empty defaults to "en"
func ValidateLocale(locale string) error {
	if locale == "" {
		return nil
	}
	pattern := `^[a-z]{2}(-[A-Z]{2})?$`
	matched, _ := regexp.MatchString(pattern, locale)
	if !matched {
		return fmt.Errorf("invalid locale: %s (expected e.g. en or en-US)", locale)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}
