package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Parse Errors (E1000-E1099)
	// ============================================

	"E1001": {
		Category: CategoryParse,
		Message:  "Malformed style declaration",
		Detail:   "A style string is a semicolon-separated list of \"key: value\" declarations. Each declaration must contain exactly one colon.",
		DocURL:   "https://lumaui.dev/docs/errors/E1001",
	},
	"E1002": {
		Category: CategoryParse,
		Message:  "Unterminated quote in prop string",
		Detail:   "A quoted prop value was opened but never closed. Prop values containing spaces must be wrapped in matching single or double quotes.",
		DocURL:   "https://lumaui.dev/docs/errors/E1002",
	},
	"E1003": {
		Category: CategoryParse,
		Message:  "Dangling escape in prop string",
		Detail:   "A backslash at the end of a prop string escapes nothing. Double it to produce a literal backslash.",
		DocURL:   "https://lumaui.dev/docs/errors/E1003",
	},

	// ============================================
	// State Errors (E2000-E2099)
	// ============================================

	"E2001": {
		Category: CategoryState,
		Message:  "Style key not found",
		Detail:   "Style(remove: ...) requires every removed key to be present in the element's current style map. Prop removal, by contrast, silently ignores absent keys.",
		DocURL:   "https://lumaui.dev/docs/errors/E2001",
	},
	"E2002": {
		Category: CategoryState,
		Message:  "Slot already exists",
		Detail:   "An element's slot names must be unique. The \"default\" slot is created automatically for every element.",
		DocURL:   "https://lumaui.dev/docs/errors/E2002",
	},

	// ============================================
	// Protocol Errors (E3000-E3099)
	// ============================================

	"E3001": {
		Category: CategoryProtocol,
		Message:  "Unknown element id",
		Detail:   "The event references an element id that is not registered with this client. The element may belong to another session.",
		DocURL:   "https://lumaui.dev/docs/errors/E3001",
	},
	"E3002": {
		Category: CategoryProtocol,
		Message:  "Malformed event frame",
		Detail:   "Inbound event frames must be JSON objects with integer \"id\" and string \"type\" fields.",
		DocURL:   "https://lumaui.dev/docs/errors/E3002",
	},

	// ============================================
	// Config Errors (E4000-E4099)
	// ============================================

	"E4001": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "luma.json could not be parsed. Check for trailing commas or unquoted keys.",
		DocURL:   "https://lumaui.dev/docs/errors/E4001",
	},
	"E4002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field holds a value outside its permitted range.",
		DocURL:   "https://lumaui.dev/docs/errors/E4002",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
