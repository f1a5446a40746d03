package attrs

import (
	"strings"

	"github.com/lumaui/luma/internal/errors"
)

// ParseStyle parses a semicolon-separated list of "key: value" CSS
// declarations into a map. Leading and trailing semicolons and spaces are
// ignored, and whitespace around each key and value is trimmed:
//
//	ParseStyle("color: red; margin: 0;")  →  {"color": "red", "margin": "0"}
//
// An empty input yields an empty map. A declaration that does not contain
// exactly one colon is an E1001 parse error.
func ParseStyle(text string) (map[string]string, error) {
	result := make(map[string]string)
	text = strings.Trim(text, "; ")
	if text == "" {
		return result, nil
	}

	for _, part := range strings.Split(text, ";") {
		fields := strings.Split(part, ":")
		if len(fields) != 2 {
			return nil, errors.New("E1001").
				WithDetail("declaration %q must contain exactly one ':'", strings.TrimSpace(part))
		}
		key := strings.TrimSpace(fields[0])
		value := strings.TrimSpace(fields[1])
		result[key] = value
	}

	return result, nil
}
