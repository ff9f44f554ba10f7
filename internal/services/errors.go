package services

import (
	"strings"
	"unicode/utf8"
)

// ValidationError carries a message meant for the admin filling the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// longerThan reports whether value has more runes than a VARCHAR(limit)
// column can hold.
func longerThan(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}

func optionalText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
