// Package validate provides shared validation functions for form fields.
package validate

import (
	"fmt"
	"strings"
)

// Required returns a validator that rejects text that is empty after
// trimming whitespace.
func Required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// ContentRef returns a validator for message text. Text starting with '#'
// must name an id.
func ContentRef(s string) error {
	if id, ok := strings.CutPrefix(s, "#"); ok && strings.TrimSpace(id) == "" {
		return fmt.Errorf("content reference needs an id after '#'")
	}
	return nil
}
