package domain

import (
	"strings"
	"unicode"
)

// CleanTitle prepares a user-supplied title for storage:
//   - trims leading/trailing whitespace
//   - collapses every whitespace run (tabs, newlines) into one space
//
// Case is preserved.
func CleanTitle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
