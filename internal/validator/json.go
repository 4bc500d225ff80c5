package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ValidateJSON validates a JSON problem model.
func ValidateJSON(text string) *Result {
	result := NewResult()

	parsed, err := parseJSON(text)
	if err != nil {
		result.AddError(fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	model, ok := parsed.(map[string]any)
	if !ok {
		result.AddError("Model must be a JSON object")
		return result
	}

	entities := listField(model, "entities")
	stateVars := listField(model, "state_variables")
	actions := listField(model, "actions")
	constraints := listField(model, "constraints")

	if len(entities) == 0 {
		result.AddError("No entities defined")
	}
	if len(stateVars) == 0 {
		result.AddError("No state_variables defined")
	}
	if len(actions) == 0 {
		result.AddError("No actions defined")
	}
	if len(constraints) == 0 {
		result.AddWarning("No constraints defined")
	}

	entityNames := make(map[string]bool)
	for _, e := range entities {
		name := nameOf(e)
		if !truthy(name) {
			result.AddError("Entity missing 'name' field")
			continue
		}
		key := nameKey(name)
		if entityNames[key] {
			result.AddError(fmt.Sprintf("Duplicate entity: %s", displayValue(name)))
			continue
		}
		entityNames[key] = true
	}

	varNames := make(map[string]bool)
	for _, v := range stateVars {
		name := nameOf(v)
		if !truthy(name) {
			result.AddError("State variable missing 'name' field")
			continue
		}
		key := nameKey(name)
		if varNames[key] {
			result.AddError(fmt.Sprintf("Duplicate state variable: %s", displayValue(name)))
			continue
		}
		varNames[key] = true
	}

	for _, a := range actions {
		name := nameOf(a)
		if !truthy(name) {
			result.AddError("Action missing 'name' field")
		}
		action, ok := a.(map[string]any)
		if !ok {
			continue
		}
		if !truthy(action["preconditions"]) {
			result.AddWarning(fmt.Sprintf("Action '%s' has no preconditions", displayValue(name)))
		}
		if !truthy(action["effects"]) {
			result.AddWarning(fmt.Sprintf("Action '%s' has no effects", displayValue(name)))
		}
	}

	if _, ok := model["goal"]; !ok {
		result.AddWarning("No goal defined")
	}

	return result
}

// parseJSON decodes exactly one JSON value. Numbers stay json.Number so
// that integers and floats keep their source spelling in messages.
func parseJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		var syntaxErr *json.SyntaxError
		switch {
		case errors.Is(err, io.EOF):
			return nil, errors.New("unexpected end of input")
		case errors.As(err, &syntaxErr):
			// Offset counts the offending byte itself.
			return nil, withPosition(text, syntaxErr.Offset-1, err)
		default:
			return nil, err
		}
	}

	// Anything other than whitespace after the value is an error.
	end := dec.InputOffset()
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("extra data after top-level value")
		}
		return nil, withPosition(text, skipSpace(text, end), err)
	}

	return v, nil
}

// withPosition appends the 1-based line and column of the byte at pos.
func withPosition(text string, pos int64, err error) error {
	if pos < 0 {
		pos = 0
	}
	if pos > int64(len(text)) {
		pos = int64(len(text))
	}
	prefix := text[:pos]
	line := strings.Count(prefix, "\n") + 1
	col := len(prefix) - strings.LastIndex(prefix, "\n")
	return fmt.Errorf("%v (line %d, column %d)", err, line, col)
}

func skipSpace(text string, pos int64) int64 {
	for pos < int64(len(text)) && strings.ContainsRune(" \t\r\n", rune(text[pos])) {
		pos++
	}
	return pos
}

// listField returns model[key] when it is an array. Absent keys and
// non-array values read as empty.
func listField(model map[string]any, key string) []any {
	list, _ := model[key].([]any)
	return list
}

// nameOf returns the "name" field of an object entry, or nil when the entry
// is not an object or has no name.
func nameOf(entry any) any {
	obj, ok := entry.(map[string]any)
	if !ok {
		return nil
	}
	return obj["name"]
}

// truthy reports whether v counts as present: null, false, zero, the empty
// string and empty collections do not.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// nameKey identifies a name for duplicate detection. Numerically equal
// values share a key (1, 1.0, 1e0 and true); a string never collides with a
// number.
func nameKey(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "n:1"
		}
		return "n:0"
	case json.Number:
		if key, ok := numberKey(val); ok {
			return key
		}
	}
	return compactJSON(v)
}

// numberKey compares integer literals exactly and other literals by their
// float64 value. Integral floats map onto the integer key.
func numberKey(n json.Number) (string, bool) {
	if isIntegerLiteral(n) {
		i, ok := new(big.Int).SetString(n.String(), 10)
		if !ok {
			return "", false
		}
		return "n:" + i.String(), true
	}

	f, err := n.Float64()
	switch {
	case math.IsInf(f, 0):
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64), true
	case err != nil:
		return "", false
	case f == math.Trunc(f):
		i, _ := big.NewFloat(f).Int(nil)
		return "n:" + i.String(), true
	default:
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64), true
	}
}

func isIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

// displayValue renders a decoded JSON value for a message. Strings are
// shown verbatim, missing values as None and booleans as True/False.
// Integers print exactly; other numbers print as shortest-repr floats with
// a trailing ".0" or a two-digit exponent. Arrays and objects use their
// compact JSON encoding.
func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return missingName
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		return displayNumber(val)
	}

	return compactJSON(v)
}

func displayNumber(n json.Number) string {
	if isIntegerLiteral(n) {
		if i, ok := new(big.Int).SetString(n.String(), 10); ok {
			return i.String()
		}
		return n.String()
	}

	f, err := n.Float64()
	if err != nil && !math.IsInf(f, 0) {
		return n.String()
	}
	return formatFloat(f)
}

// formatFloat renders f the way a shortest round-trip repr does: fixed
// notation for exponents in [-4, 16), scientific otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(sci, "e")
	e, _ := strconv.Atoi(exp)
	if e < -4 || e >= 16 {
		sign := "+"
		if e < 0 {
			sign, e = "-", -e
		}
		return fmt.Sprintf("%se%s%02d", mantissa, sign, e)
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
