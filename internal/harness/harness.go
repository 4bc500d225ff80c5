package harness

import (
	"fmt"

	"github.com/roach88/modelcheck/internal/validator"
)

// Run validates the scenario's model and checks the outcome against the
// scenario's expectation.
//
// A returned error means the scenario itself could not be executed (for
// example its model file vanished). Expectation mismatches are reported in
// Result.Errors with Pass set to false.
func Run(scenario *Scenario) (*Result, error) {
	format, err := validator.ParseFormat(scenario.Format)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	text, err := scenario.modelText()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult(validator.Validate(format, text))
	for _, mismatch := range EvaluateExpectation(result.Report, scenario.Expect) {
		result.AddError(mismatch.Error())
	}

	return result, nil
}
