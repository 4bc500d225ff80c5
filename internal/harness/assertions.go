package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/modelcheck/internal/validator"
)

// ExpectationError describes one mismatch between a report and its
// expectation.
type ExpectationError struct {
	Field    string // Which part of the expectation failed
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Report   string // Full rendered report for context
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Expectation failed: %s\n", e.Field)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull report:\n%s\n", e.Report)

	return buf.String()
}

// EvaluateExpectation compares a validation result against an expectation
// and returns every mismatch (does not fail-fast).
func EvaluateExpectation(report *validator.Result, expect Expectation) []error {
	var errs []error
	rendered := report.Report()

	if report.Valid != expect.Valid {
		errs = append(errs, &ExpectationError{
			Field:    "valid",
			Expected: fmt.Sprintf("%t", expect.Valid),
			Actual:   fmt.Sprintf("%t", report.Valid),
			Report:   rendered,
		})
	}

	for _, want := range expect.Errors {
		if !contains(report.Errors, want) {
			errs = append(errs, &ExpectationError{
				Field:    "errors",
				Expected: fmt.Sprintf("report contains %q", want),
				Actual:   fmt.Sprintf("%d error(s) without it", report.ErrorCount()),
				Report:   rendered,
			})
		}
	}

	for _, want := range expect.Warnings {
		if !contains(report.Warnings, want) {
			errs = append(errs, &ExpectationError{
				Field:    "warnings",
				Expected: fmt.Sprintf("report contains %q", want),
				Actual:   fmt.Sprintf("%d warning(s) without it", report.WarningCount()),
				Report:   rendered,
			})
		}
	}

	if expect.ErrorCount != nil && *expect.ErrorCount != report.ErrorCount() {
		errs = append(errs, &ExpectationError{
			Field:    "error_count",
			Expected: fmt.Sprintf("%d", *expect.ErrorCount),
			Actual:   fmt.Sprintf("%d", report.ErrorCount()),
			Report:   rendered,
		})
	}

	if expect.WarningCount != nil && *expect.WarningCount != report.WarningCount() {
		errs = append(errs, &ExpectationError{
			Field:    "warning_count",
			Expected: fmt.Sprintf("%d", *expect.WarningCount),
			Actual:   fmt.Sprintf("%d", report.WarningCount()),
			Report:   rendered,
		})
	}

	return errs
}

func contains(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
