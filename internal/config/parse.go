package config

import (
	"fmt"
	"strings"
)

const (
	listSeparator  = ","
	trailingBlanks = " \t\f"
)

// splitList splits a comma-joined value without trimming or deduplicating.
// Trailing empty elements are dropped, but a value without any separator is
// returned as a single element, so "" yields [""] and "a,b," yields [a b].
func splitList(raw string) []string {
	parts := strings.Split(raw, listSeparator)
	if len(parts) == 1 {
		return parts
	}

	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}

var boolLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"y":     true,
	"t":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"n":     false,
	"f":     false,
}

// parseBool coerces a property value into a boolean, ignoring case.
func parseBool(key, raw string) (bool, error) {
	value, ok := boolLiterals[strings.ToLower(raw)]
	if !ok {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrConfigValidation, key, raw)
	}
	return value, nil
}
