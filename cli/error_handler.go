package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/logging"
)

// ErrorHandler turns structured errors into user-facing messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	pretty := logging.NewPrettyLogger().WithWriter(out)
	numErr, _ := errors.As(err)
	detail := func(key string) interface{} {
		if numErr == nil || numErr.Details[key] == nil {
			return ""
		}
		return numErr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		pretty.Fail(fmt.Sprintf("Configuration not found: %v", detail("path")), nil)
		pretty.Hint("Create numwidget.yml or pass --config. Run 'numwidget config schema' for the format.")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		pretty.Fail("Invalid configuration", err)
		if path := detail("path"); path != "" {
			pretty.Path("File", fmt.Sprint(path))
		}
		pretty.Hint("Run 'numwidget config validate' for details.")

	case errors.ErrCodeUnknownScene:
		pretty.Fail(fmt.Sprintf("Scene '%v' not found", detail("scene")), nil)
		pretty.Field("Available scenes", detail("available"))

	case errors.ErrCodeUnknownAlign:
		pretty.Fail(fmt.Sprintf("Unknown alignment '%v'", detail("align")), nil)
		if available := detail("available"); available != "" {
			pretty.Field("Valid alignments", available)
		}

	case errors.ErrCodeInvalidInput:
		pretty.Fail(fmt.Sprintf("Invalid %v: %q", detail("field"), detail("value")), nil)

	default:
		pretty.Fail("Error", err)
	}

	if h.Verbose && numErr != nil {
		fmt.Fprintln(out)
		pretty.Hint("Error details:")
		pretty.Block(numErr.ToJSON())
	}
	return err
}
