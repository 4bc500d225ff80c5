// Package harness runs conformance scenarios against the model validators.
//
// A scenario pairs one model document with the outcome validating it must
// produce, and the rendered report is snapshotted in a golden file.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario covers"
//	format: xml            # or json
//	model: |               # inline document, or
//	  <model>...</model>
//	model_file: ../models/robot.xml   # relative to the scenario file
//	expect:
//	  valid: false
//	  errors:
//	    - "ERROR: No actions defined"
//	  warnings:
//	    - "WARNING: No <goal> section found"
//	  error_count: 1       # optional exact counts
//	  warning_count: 1
//
// Listed errors and warnings use subset semantics; the counts make a
// scenario exact.
//
// # Golden Files
//
// RunWithGolden stores reports under testdata/golden/{name}.golden.
// Regenerate with:
//
//	go test ./internal/harness -update
package harness
