package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeJSONModel = `{
  "entities": [{"name": "robot"}],
  "state_variables": [{"name": "loc", "initial": "A"}],
  "actions": [
    {"name": "move", "preconditions": ["loc = A"], "effects": ["loc = B"]}
  ],
  "constraints": [{"id": "c1", "text": "loc in {A, B}"}],
  "goal": "loc = B"
}`

func TestValidateJSONCompleteModel(t *testing.T) {
	result := ValidateJSON(completeJSONModel)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "✓ Model is valid", result.Report())
}

func TestValidateJSONMissingActions(t *testing.T) {
	result := ValidateJSON(`{"entities":[{"name":"e1"}],"state_variables":[{"name":"v1"}]}`)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"ERROR: No actions defined"}, result.Errors)
	assert.Equal(t, []string{
		"WARNING: No constraints defined",
		"WARNING: No goal defined",
	}, result.Warnings)
	assert.Contains(t, result.Report(), "ERROR: No actions defined")
}

func TestValidateJSONEmptyObject(t *testing.T) {
	result := ValidateJSON(`{}`)

	assertFindings(t, result,
		[]string{
			"ERROR: No entities defined",
			"ERROR: No state_variables defined",
			"ERROR: No actions defined",
		},
		[]string{
			"WARNING: No constraints defined",
			"WARNING: No goal defined",
		})
}

func TestValidateJSONNonArraySectionsReadAsEmpty(t *testing.T) {
	result := ValidateJSON(`{"entities": {"name": "robot"}, "state_variables": "loc", "actions": 3, "constraints": null, "goal": 1}`)

	assertFindings(t, result,
		[]string{
			"ERROR: No entities defined",
			"ERROR: No state_variables defined",
			"ERROR: No actions defined",
		},
		[]string{"WARNING: No constraints defined"})
}

func TestValidateJSONMalformed(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{"trailing_comma", `{"entities": [],}`, "line 1, column"},
		{"truncated", `{"entities": [`, "unexpected EOF"},
		{"empty", ``, "unexpected end of input"},
		{"extra_value", `{} {}`, "extra data after top-level value"},
		{"bare_word", `hello`, "invalid character"},
		{"multiline_position", "{\n  \"entities\": [\n    {\"name\": }\n  ]\n}", "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateJSON(tt.doc)

			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Empty(t, result.Warnings)
			assert.True(t, strings.HasPrefix(result.Errors[0], "ERROR: Invalid JSON: "), result.Errors[0])
			assert.Contains(t, result.Errors[0], tt.contains)
		})
	}
}

func TestValidateJSONNotAnObject(t *testing.T) {
	for _, doc := range []string{`[]`, `[{"entities": []}]`, `"model"`, `42`, `null`} {
		t.Run(doc, func(t *testing.T) {
			result := ValidateJSON(doc)
			assertFindings(t, result, []string{"ERROR: Model must be a JSON object"}, nil)
		})
	}
}

func TestValidateJSONEntities(t *testing.T) {
	tests := []struct {
		name     string
		entities string
		errors   []string
	}{
		{
			name:     "duplicate",
			entities: `[{"name": "robot"}, {"name": "robot"}]`,
			errors:   []string{"ERROR: Duplicate entity: robot"},
		},
		{
			name:     "triplicate_reports_each_repeat",
			entities: `[{"name": "a"}, {"name": "a"}, {"name": "a"}]`,
			errors: []string{
				"ERROR: Duplicate entity: a",
				"ERROR: Duplicate entity: a",
			},
		},
		{
			name:     "not_an_object",
			entities: `[{"name": "robot"}, "crate"]`,
			errors:   []string{"ERROR: Entity missing 'name' field"},
		},
		{
			name:     "empty_name",
			entities: `[{"name": "robot"}, {"name": ""}]`,
			errors:   []string{"ERROR: Entity missing 'name' field"},
		},
		{
			name:     "null_name",
			entities: `[{"name": "robot"}, {"name": null}]`,
			errors:   []string{"ERROR: Entity missing 'name' field"},
		},
		{
			name:     "zero_name",
			entities: `[{"name": "robot"}, {"name": 0}]`,
			errors:   []string{"ERROR: Entity missing 'name' field"},
		},
		{
			name:     "numeric_duplicate",
			entities: `[{"name": 7}, {"name": 7}]`,
			errors:   []string{"ERROR: Duplicate entity: 7"},
		},
		{
			name:     "string_and_number_differ",
			entities: `[{"name": "7"}, {"name": 7}]`,
		},
		{
			name:     "integer_and_float_equal",
			entities: `[{"name": 1}, {"name": 1.0}]`,
			errors:   []string{"ERROR: Duplicate entity: 1.0"},
		},
		{
			name:     "exponent_equals_integer",
			entities: `[{"name": 100}, {"name": 1e2}]`,
			errors:   []string{"ERROR: Duplicate entity: 100.0"},
		},
		{
			name:     "true_equals_one",
			entities: `[{"name": 1}, {"name": true}]`,
			errors:   []string{"ERROR: Duplicate entity: True"},
		},
		{
			name:     "distinct_floats",
			entities: `[{"name": 1.5}, {"name": 1.25}]`,
		},
		{
			name:     "large_integers_compared_exactly",
			entities: `[{"name": 10000000000000000001}, {"name": 10000000000000000000}]`,
		},
		{
			name:     "large_integer_equals_float",
			entities: `[{"name": 10000000000000000000}, {"name": 1e19}]`,
			errors:   []string{"ERROR: Duplicate entity: 1e+19"},
		},
		{
			name:     "list_name_duplicate",
			entities: `[{"name": ["a", "b"]}, {"name": ["a", "b"]}]`,
			errors:   []string{`ERROR: Duplicate entity: ["a","b"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"entities": ` + tt.entities + `,
				"state_variables": [{"name": "loc"}],
				"actions": [{"name": "move", "preconditions": ["p"], "effects": ["e"]}],
				"constraints": ["c"], "goal": "g"}`
			assertFindings(t, ValidateJSON(doc), tt.errors, nil)
		})
	}
}

func TestValidateJSONStateVariables(t *testing.T) {
	tests := []struct {
		name   string
		vars   string
		errors []string
	}{
		{
			name:   "duplicate",
			vars:   `[{"name": "loc"}, {"name": "loc"}]`,
			errors: []string{"ERROR: Duplicate state variable: loc"},
		},
		{
			name:   "missing_name",
			vars:   `[{"name": "loc"}, {"initial": "A"}]`,
			errors: []string{"ERROR: State variable missing 'name' field"},
		},
		{
			name: "no_initial_or_domain_is_fine",
			vars: `[{"name": "loc"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"entities": [{"name": "robot"}],
				"state_variables": ` + tt.vars + `,
				"actions": [{"name": "move", "preconditions": ["p"], "effects": ["e"]}],
				"constraints": ["c"], "goal": "g"}`
			assertFindings(t, ValidateJSON(doc), tt.errors, nil)
		})
	}
}

func TestValidateJSONActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  string
		errors   []string
		warnings []string
	}{
		{
			name:    "duplicate_names_allowed",
			actions: `[{"name": "move", "preconditions": ["p"], "effects": ["e"]}, {"name": "move", "preconditions": ["p"], "effects": ["e"]}]`,
		},
		{
			name:     "missing_preconditions",
			actions:  `[{"name": "move", "effects": ["e"]}]`,
			warnings: []string{"WARNING: Action 'move' has no preconditions"},
		},
		{
			name:     "falsy_preconditions",
			actions:  `[{"name": "move", "preconditions": [], "effects": ["e"]}]`,
			warnings: []string{"WARNING: Action 'move' has no preconditions"},
		},
		{
			name:     "falsy_effects",
			actions:  `[{"name": "move", "preconditions": "p", "effects": false}]`,
			warnings: []string{"WARNING: Action 'move' has no effects"},
		},
		{
			name:    "truthy_scalars_accepted",
			actions: `[{"name": "move", "preconditions": true, "effects": 1}]`,
		},
		{
			name:    "missing_name_still_warns",
			actions: `[{"name": "move", "preconditions": ["p"], "effects": ["e"]}, {}]`,
			errors:  []string{"ERROR: Action missing 'name' field"},
			warnings: []string{
				"WARNING: Action 'None' has no preconditions",
				"WARNING: Action 'None' has no effects",
			},
		},
		{
			name:    "empty_name_still_warns",
			actions: `[{"name": "move", "preconditions": ["p"], "effects": ["e"]}, {"name": ""}]`,
			errors:  []string{"ERROR: Action missing 'name' field"},
			warnings: []string{
				"WARNING: Action '' has no preconditions",
				"WARNING: Action '' has no effects",
			},
		},
		{
			name:    "false_name_still_warns",
			actions: `[{"name": "move", "preconditions": ["p"], "effects": ["e"]}, {"name": false}]`,
			errors:  []string{"ERROR: Action missing 'name' field"},
			warnings: []string{
				"WARNING: Action 'False' has no preconditions",
				"WARNING: Action 'False' has no effects",
			},
		},
		{
			name:     "float_name_rendered",
			actions:  `[{"name": 2.50, "effects": ["e"]}]`,
			warnings: []string{"WARNING: Action '2.5' has no preconditions"},
		},
		{
			name:    "not_an_object",
			actions: `[{"name": "move", "preconditions": ["p"], "effects": ["e"]}, "jump"]`,
			errors:  []string{"ERROR: Action missing 'name' field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"entities": [{"name": "robot"}],
				"state_variables": [{"name": "loc"}],
				"actions": ` + tt.actions + `,
				"constraints": ["c"], "goal": "g"}`
			assertFindings(t, ValidateJSON(doc), tt.errors, tt.warnings)
		})
	}
}

func TestValidateJSONGoalPresenceOnly(t *testing.T) {
	doc := `{"entities": [{"name": "robot"}], "state_variables": [{"name": "loc"}],
		"actions": [{"name": "move", "preconditions": ["p"], "effects": ["e"]}],
		"constraints": ["c"], "goal": null}`

	result := ValidateJSON(doc)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateJSONIdempotent(t *testing.T) {
	doc := `{"entities": [{"name": "a"}, {"name": "a"}], "actions": [{}]}`

	assert.Equal(t, ValidateJSON(doc).Report(), ValidateJSON(doc).Report())
}

func TestTruthy(t *testing.T) {
	parsed, err := parseJSON(`[null, false, 0, 0.0, "", [], {}, true, 1, -0.5, "x", [0], {"a": null}]`)
	require.NoError(t, err)

	values := parsed.([]any)
	want := []bool{false, false, false, false, false, false, false, true, true, true, true, true, true}
	require.Len(t, values, len(want))
	for i, v := range values {
		assert.Equal(t, want[i], truthy(v), "value %d (%v)", i, v)
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{`null`, "None"},
		{`true`, "True"},
		{`false`, "False"},
		{`"robot"`, "robot"},
		{`42`, "42"},
		{`-0`, "0"},
		{`1.0`, "1.0"},
		{`2.50`, "2.5"},
		{`1e5`, "100000.0"},
		{`1E16`, "1e+16"},
		{`0.0001`, "0.0001"},
		{`0.00001`, "1e-05"},
		{`-1.5e300`, "-1.5e+300"},
		{`1e400`, "inf"},
		{`12345678901234567890123`, "12345678901234567890123"},
		{`["a",1]`, `["a",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			v, err := parseJSON(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, displayValue(v))
		})
	}
}
