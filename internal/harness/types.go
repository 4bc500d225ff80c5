package harness

import "github.com/roach88/modelcheck/internal/validator"

// Result is the outcome of running a scenario.
type Result struct {
	// Pass indicates the validation outcome matched the expectation.
	Pass bool `json:"pass"`

	// Report is the validation result the scenario produced.
	Report *validator.Result `json:"report"`

	// Errors contains expectation mismatches.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result for report.
func NewResult(report *validator.Result) *Result {
	return &Result{
		Pass:   true,
		Report: report,
		Errors: []string{},
	}
}

// AddError adds an expectation mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
