package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes for the validate_model command.
const (
	ExitSuccess = 0 // Model valid (warnings allowed)
	ExitFailure = 1 // Model invalid, usage error, missing file, undetectable format
)

// ExitError represents an error with a specific exit code whose message has
// already been written to the command output.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	Logger *slog.Logger // Diagnostics; never writes to Writer
}

// CLIResponse is the JSON envelope written with --format json.
type CLIResponse struct {
	Status string      `json:"status"`           // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`   // report payload
	Error  *CLIError   `json:"error,omitempty"`  // input error details
	RunID  string      `json:"run_id,omitempty"` // correlates with log lines
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E005", "E008", ...
	Message string `json:"message"` // human-readable message
}

// Report writes a rendered validation report, or its JSON envelope.
func (f *OutputFormatter) Report(text string, data *ReportData, runID string) error {
	if f.Format == "json" {
		status := "ok"
		if !data.Valid {
			status = "error"
		}
		return f.encode(CLIResponse{Status: status, Data: data, RunID: runID})
	}

	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Error writes an input error in the configured format.
func (f *OutputFormatter) Error(code, message, runID string) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
			RunID:  runID,
		})
	}

	_, err := fmt.Fprintf(f.Writer, "ERROR: %s\n", message)
	return err
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(resp)
}

// newLogger builds the diagnostic logger: warnings and above by default,
// everything with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
