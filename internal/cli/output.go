package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/sprintledger/internal/ledger"
)

// Exit codes for the CLI.
const (
	ExitSuccess = 0 // successful execution
	ExitFailure = 1 // usage error, argument error, or any domain error
)

// OutputFormatter handles JSON vs text output for CLI commands.
//
// Text mode prints the preformatted human-readable block; JSON mode
// encodes the structured payload in the standard response envelope.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"` // ledger error code, or "ERROR"
	Message string `json:"message"`
}

// newFormatter builds a formatter from the root options and the
// command's configured output stream.
func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Emit outputs a successful result: the text block in text mode, the
// data payload in JSON mode.
func (f *OutputFormatter) Emit(text string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// FormatError renders an error in JSON mode so scripted consumers get a
// structured envelope. In text mode errors are left to the entrypoint,
// which prints "Error: <msg>" to stderr.
func (f *OutputFormatter) FormatError(err error) error {
	if f.Format != "json" {
		return err
	}
	code := "ERROR"
	var le *ledger.Error
	if errors.As(err, &le) {
		code = string(le.Code)
	}
	encErr := json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: err.Error()},
	})
	if encErr != nil {
		return encErr
	}
	return err
}
