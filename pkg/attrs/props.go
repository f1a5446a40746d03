package attrs

import (
	"strings"

	"github.com/lumaui/luma/internal/errors"
)

// ParseProps parses a space-separated component prop list into a map.
// Each token is either "key=value" or a bare "key", which becomes a
// boolean flag with value true:
//
//	ParseProps(`dense label="hi there" offset=10.5%`)
//	→  {"dense": true, "label": "hi there", "offset": "10.5%"}
//
// Values may be wrapped in single or double quotes to contain spaces.
// Outside quotes a backslash escapes the next character; inside double
// quotes it escapes only '"' and '\'. Single-quoted text is literal.
// Only the first '=' of a token separates key from value, so values may
// themselves contain '='.
//
// Unterminated quotes are E1002 parse errors; a trailing backslash is
// E1003.
func ParseProps(text string) (map[string]any, error) {
	result := make(map[string]any)
	tokens, err := lexProps(text)
	if err != nil {
		return nil, err
	}

	for _, tok := range tokens {
		if i := strings.IndexByte(tok, '='); i >= 0 {
			result[tok[:i]] = tok[i+1:]
		} else {
			result[tok] = true
		}
	}

	return result, nil
}

// lexProps splits a prop string into tokens with shell-style quoting.
// Adjacent quoted and unquoted runs concatenate into a single token, so
// icon=img:/logo.png and label="a"' b' each lex as one token.
func lexProps(text string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case ' ':
			flush()

		case '\'':
			started = true
			i++
			for {
				if i >= len(runes) {
					return nil, errors.New("E1002").
						WithDetail("single quote opened at offset %d is never closed", i)
				}
				if runes[i] == '\'' {
					break
				}
				current.WriteRune(runes[i])
				i++
			}

		case '"':
			started = true
			i++
			for {
				if i >= len(runes) {
					return nil, errors.New("E1002").
						WithDetail("double quote opened at offset %d is never closed", i)
				}
				if runes[i] == '"' {
					break
				}
				if runes[i] == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
					i++
				}
				current.WriteRune(runes[i])
				i++
			}

		case '\\':
			if i+1 >= len(runes) {
				return nil, errors.New("E1003")
			}
			started = true
			i++
			current.WriteRune(runes[i])

		default:
			started = true
			current.WriteRune(r)
		}
	}
	flush()

	return tokens, nil
}
