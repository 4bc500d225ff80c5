package cli

import "github.com/google/uuid"

// RunIDGenerator produces the identifier attached to one invocation's logs
// and JSON output.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run identifiers.
//
// Panics if UUID generation fails (should never happen in practice).
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator always returns the same run identifier.
// Tests use it for byte-exact JSON output.
type FixedGenerator string

// Generate returns the fixed identifier.
func (g FixedGenerator) Generate() string {
	return string(g)
}

func (o *RootOptions) runIDs() RunIDGenerator {
	if o.RunIDs == nil {
		return UUIDv7Generator{}
	}
	return o.RunIDs
}
