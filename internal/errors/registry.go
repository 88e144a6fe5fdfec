package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Template Errors (W001-W019)
	// ============================================

	"W001": {
		Category:   CategoryTemplate,
		Message:    "Dynamic node slot count mismatch",
		Suggestion: "Supply exactly one DynamicNode per Dynamic/DynamicText placeholder, in placeholder order.",
		DocURL:     "https://weft-ui.dev/docs/errors/W001",
	},
	"W002": {
		Category:   CategoryTemplate,
		Message:    "Dynamic attribute slot count mismatch",
		Suggestion: "Supply exactly one Attribute per dynamic attribute placeholder, in placeholder order.",
		DocURL:     "https://weft-ui.dev/docs/errors/W002",
	},
	"W003": {
		Category:   CategoryTemplate,
		Message:    "Template path does not resolve to its placeholder",
		Suggestion: "Rebuild the template with BuildTemplate instead of assembling path tables by hand.",
		DocURL:     "https://weft-ui.dev/docs/errors/W003",
	},
	"W004": {
		Category:   CategoryTemplate,
		Message:    "Placeholder indices malformed",
		Suggestion: "Placeholder indices must run 0..n-1 in document encounter order.",
		DocURL:     "https://weft-ui.dev/docs/errors/W004",
	},

	// ============================================
	// Render Errors (W020-W039)
	// ============================================

	"W020": {
		Category: CategoryRender,
		Message:  "Listener attached to unmounted attribute",
		DocURL:   "https://weft-ui.dev/docs/errors/W020",
	},

	// ============================================
	// Protocol Errors (W060-W079)
	// ============================================

	"W060": {
		Category: CategoryProtocol,
		Message:  "Frame decode failed",
		DocURL:   "https://weft-ui.dev/docs/errors/W060",
	},
	"W061": {
		Category: CategoryProtocol,
		Message:  "Unknown wire tag",
		DocURL:   "https://weft-ui.dev/docs/errors/W061",
	},
	"W062": {
		Category: CategoryProtocol,
		Message:  "Unknown mutation operation",
		DocURL:   "https://weft-ui.dev/docs/errors/W062",
	},

	// ============================================
	// CLI Errors (W140-W159)
	// ============================================

	"W140": {
		Category:   CategoryCLI,
		Message:    "Manifest parse failed",
		Suggestion: "Check the YAML syntax of the template manifest.",
		DocURL:     "https://weft-ui.dev/docs/errors/W140",
	},
	"W141": {
		Category:   CategoryCLI,
		Message:    "Manifest describes an invalid template",
		DocURL:     "https://weft-ui.dev/docs/errors/W141",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
