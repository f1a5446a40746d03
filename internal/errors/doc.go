// Package errors provides structured, actionable error messages for Luma.
//
// Every error raised by the element tree, the attribute parsers, or the
// session layer carries a unique code (e.g. "E2001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
// Errors are organized into categories:
//   - parse: attribute mini-language errors (malformed style declarations,
//     unterminated quotes in prop strings)
//   - state: element tree state errors (removing an absent style key)
//   - protocol: wire errors (malformed event frames, unknown element ids)
//   - config: configuration file errors
//
// # Usage
//
//	err := errors.New("E2001").
//	    WithSuggestion("check Element.StyleMap() before removing, or use Props which ignores absent keys")
//
//	fmt.Println(err.Format())
package errors
