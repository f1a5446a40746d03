// Package attrs implements the compact attribute mini-languages used by
// Luma elements.
//
// Two string formats are parsed into typed maps:
//
//   - Style strings: semicolon-separated "key: value" declarations, e.g.
//     "color: #888; margin-top: 4px". Whitespace around keys and values is
//     trimmed. A declaration without exactly one colon is a parse error.
//
//   - Prop strings: space-separated tokens with shell-style quoting, e.g.
//     `dense label="hi there" offset=10.5%`. A bare token is a boolean
//     flag (value true); "key=value" tokens carry string values. Values
//     with spaces or reserved characters must be quoted. The characters
//     '=', '-', '.' and '%' never split a token.
//
// The parsers are deliberately small and independent of the element tree
// so the escaping rules can be tested in isolation.
package attrs
