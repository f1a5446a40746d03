// Package config loads and validates the luma.json project configuration.
//
// Configuration is optional: Load falls back to defaults when the file is
// absent, and every field has a sensible zero-value substitute. Only a
// malformed file or an out-of-range value is an error.
package config
