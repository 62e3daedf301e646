package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NumError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NumError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnknownScene creates an error for a demo scene name that is not registered
func UnknownScene(name string, available []string) *NumError {
	return New(ErrCodeUnknownScene, fmt.Sprintf("scene '%s' not found", name)).
		WithDetail("scene", name).
		WithDetail("available", strings.Join(available, ", "))
}

// UnknownAlign creates an error for an alignment name that cannot be parsed
func UnknownAlign(name string) *NumError {
	return New(ErrCodeUnknownAlign, fmt.Sprintf("unknown alignment '%s'", name)).
		WithDetail("align", name)
}

// InvalidInput creates an error for a malformed argument
func InvalidInput(field, value string, err error) *NumError {
	return Wrap(err, ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %q", field, value)).
		WithDetail("field", field).
		WithDetail("value", value)
}
