package user

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	sanitizeRe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// ValidateUsername enforces the profile-edit rules: 3-20 characters from
// [A-Za-z0-9_-]. Auto-generated usernames bypass this, matching the signup
// flow.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// baseUsername derives a signup username from the Google display name,
// falling back to the email local part when the sanitized name is empty.
func baseUsername(name, email string) string {
	username := strings.ToLower(sanitizeRe.ReplaceAllString(name, ""))
	if username == "" {
		local, _, _ := strings.Cut(email, "@")
		username = strings.ToLower(sanitizeRe.ReplaceAllString(local, ""))
	}
	return username
}
