package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/modelcheck/internal/validator"
)

// Scenario defines a conformance scenario: one model document and the
// outcome validating it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario covers.
	Description string `yaml:"description"`

	// Format selects the validator: "xml" or "json".
	Format string `yaml:"format"`

	// Model is the inline model document.
	Model string `yaml:"model,omitempty"`

	// ModelFile points at a model document instead of inlining it.
	// Relative paths are resolved against the scenario file location.
	ModelFile string `yaml:"model_file,omitempty"`

	// Expect describes the validation outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the expected validation outcome.
type Expectation struct {
	// Valid is the expected overall validity.
	Valid bool `yaml:"valid"`

	// Errors lists report lines that must appear among the errors.
	// Subset match - unlisted errors are allowed unless ErrorCount is set.
	Errors []string `yaml:"errors,omitempty"`

	// Warnings lists report lines that must appear among the warnings.
	Warnings []string `yaml:"warnings,omitempty"`

	// ErrorCount, when set, is the exact number of errors.
	ErrorCount *int `yaml:"error_count,omitempty"`

	// WarningCount, when set, is the exact number of warnings.
	WarningCount *int `yaml:"warning_count,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "expects:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve the model path relative to the scenario BEFORE validation
	if scenario.ModelFile != "" && !filepath.IsAbs(scenario.ModelFile) {
		scenario.ModelFile = filepath.Join(filepath.Dir(path), scenario.ModelFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, ordered by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string)
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if other, ok := seen[scenario.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate scenario name %q (also in %s)", filepath.Base(path), scenario.Name, other)
		}
		seen[scenario.Name] = filepath.Base(path)
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := validator.ParseFormat(s.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	switch {
	case s.Model != "" && s.ModelFile != "":
		return fmt.Errorf("model and model_file are mutually exclusive")
	case s.Model == "" && s.ModelFile == "":
		return fmt.Errorf("one of model or model_file is required")
	}

	if s.ModelFile != "" {
		if _, err := os.Stat(s.ModelFile); os.IsNotExist(err) {
			return fmt.Errorf("model file not found: %s", s.ModelFile)
		}
	}

	if s.Expect.ErrorCount != nil && *s.Expect.ErrorCount < 0 {
		return fmt.Errorf("expect.error_count must not be negative")
	}
	if s.Expect.WarningCount != nil && *s.Expect.WarningCount < 0 {
		return fmt.Errorf("expect.warning_count must not be negative")
	}

	return nil
}

// modelText returns the scenario's model document.
func (s *Scenario) modelText() (string, error) {
	if s.ModelFile == "" {
		return s.Model, nil
	}
	data, err := os.ReadFile(s.ModelFile)
	if err != nil {
		return "", fmt.Errorf("failed to read model file: %w", err)
	}
	return string(data), nil
}
