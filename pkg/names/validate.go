package names

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks a candidate value against the name rules: it must be non-empty and at most
// MAX_VALUE_LENGTH characters long
func Validate(value string) error {
	if value == "" {
		return &ValidationError{Value: value, Reason: "name cannot be empty"}
	}

	if n := utf8.RuneCountInString(value); n > MAX_VALUE_LENGTH {
		return &ValidationError{
			Value:  value,
			Reason: fmt.Sprintf("name cannot be longer than %d characters (got %d)", MAX_VALUE_LENGTH, n),
		}
	}

	return nil
}
