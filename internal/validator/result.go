package validator

import "strings"

// Result accumulates the outcome of one validation run.
// Valid starts true and is cleared by the first error; it is never reset.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}
}

// AddError records an error and marks the result invalid.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, "ERROR: "+msg)
	r.Valid = false
}

// AddWarning records an advisory warning. Warnings never affect validity.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, "WARNING: "+msg)
}

// ErrorCount returns the number of recorded errors.
func (r *Result) ErrorCount() int {
	return len(r.Errors)
}

// WarningCount returns the number of recorded warnings.
func (r *Result) WarningCount() int {
	return len(r.Warnings)
}

// Report renders the human-readable report: a status line followed by the
// errors and then the warnings, in insertion order, indented by two spaces.
func (r *Result) Report() string {
	lines := make([]string, 0, 1+len(r.Errors)+len(r.Warnings))
	if r.Valid {
		lines = append(lines, "✓ Model is valid")
	} else {
		lines = append(lines, "✗ Model has errors")
	}

	for _, e := range r.Errors {
		lines = append(lines, "  "+e)
	}
	for _, w := range r.Warnings {
		lines = append(lines, "  "+w)
	}

	return strings.Join(lines, "\n")
}
