package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/modelcheck/internal/validator"
)

// ReportData is the JSON form of a validation result.
type ReportData struct {
	Valid    bool             `json:"valid"`
	Errors   []string         `json:"errors"`
	Warnings []string         `json:"warnings"`
	Format   validator.Format `json:"format"`
	Source   string           `json:"source"`
}

func runValidate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	if !opts.Stdin && len(args) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), usageText)
		return NewExitError(ExitFailure, "no model given")
	}

	runID := opts.runIDs().Generate()
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
		// Logs go to stderr to avoid corrupting the report
		Logger: newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run_id", runID),
	}

	var input *Input
	var err error
	if opts.Stdin {
		input, err = LoadStdin(cmd.InOrStdin())
	} else {
		input, err = LoadFile(args[0])
	}
	if err != nil {
		return outputLoadError(formatter, runID, err)
	}

	formatter.Logger.Debug("model loaded",
		"source", input.Source,
		"bytes", len(input.Content),
		"format", input.Format,
	)

	result := validator.Validate(input.Format, input.Content)

	formatter.Logger.Debug("validation finished",
		"valid", result.Valid,
		"errors", result.ErrorCount(),
		"warnings", result.WarningCount(),
	)

	return outputResult(formatter, runID, input, result)
}

// outputLoadError reports an input problem. Unexpected errors are returned
// unchanged for the caller to print.
func outputLoadError(formatter *OutputFormatter, runID string, err error) error {
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		return err
	}

	formatter.Logger.Debug("model not loaded", "code", loadErr.Code, "error", loadErr.Message)
	if outErr := formatter.Error(loadErr.Code, loadErr.Message, runID); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitFailure, loadErr.Message, loadErr)
}

// outputResult prints the report and maps validity to the exit code.
func outputResult(formatter *OutputFormatter, runID string, input *Input, result *validator.Result) error {
	data := &ReportData{
		Valid:    result.Valid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Format:   input.Format,
		Source:   input.Source,
	}
	if err := formatter.Report(result.Report(), data, runID); err != nil {
		return err
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("model has %d error(s)", result.ErrorCount()))
	}
	return nil
}
