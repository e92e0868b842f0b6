package config

import "errors"

var (
	// ErrConfigLoad is returned when the properties file cannot be located, read or parsed.
	ErrConfigLoad = errors.New("couldn't load application properties")
	// ErrConfigValidation is returned when a property value violates the structure its getter expects.
	ErrConfigValidation = errors.New("invalid application property")
)
