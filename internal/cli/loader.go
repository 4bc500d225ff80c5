package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/roach88/modelcheck/internal/validator"
)

// stdinSource names standard input in logs and JSON output.
const stdinSource = "<stdin>"

// Input is a model document ready for validation.
type Input struct {
	Source  string           // file path, or "<stdin>"
	Content string           // raw document text
	Format  validator.Format // selected validator
}

// LoadError represents an input problem reported instead of a validation
// result.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Error code constants.
const (
	ErrCodeNotFound         = "E005" // Path not found
	ErrCodeFormatUndetected = "E008" // Neither XML nor JSON
	ErrCodeReadFailed       = "E009" // Input could not be read
)

// LoadFile reads a model file. The .xml and .json extensions select the
// validator; any other file is sniffed, with non-XML content going to JSON.
func LoadFile(path string) (*Input, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, &LoadError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("File not found: %s", path),
			Err:     err,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeReadFailed,
			Message: fmt.Sprintf("Could not read %s: %v", path, err),
			Err:     err,
		}
	}

	content := string(data)
	return &Input{
		Source:  path,
		Content: content,
		Format:  validator.FormatForPath(path, content),
	}, nil
}

// LoadStdin reads a model from r and sniffs its format. Content that starts
// with neither '<' nor '{' is rejected.
func LoadStdin(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeReadFailed,
			Message: fmt.Sprintf("Could not read standard input: %v", err),
			Err:     err,
		}
	}

	content := string(data)
	format, ok := validator.DetectFormat(content)
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeFormatUndetected,
			Message: "Could not detect format (expected XML or JSON)",
		}
	}

	return &Input{
		Source:  stdinSource,
		Content: content,
		Format:  format,
	}, nil
}
