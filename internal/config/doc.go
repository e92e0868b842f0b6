// Package config loads the license generator properties file and exposes
// typed accessors for the recognised keys. Every key falls back to a value
// from Defaults when the file does not define it. The loaded store is never
// mutated, so a Properties value is safe for concurrent readers.
package config
