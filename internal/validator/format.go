package validator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a model serialization.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// DetectFormat sniffs the first non-whitespace character of content.
// Returns false when the content looks like neither XML nor JSON.
func DetectFormat(content string) (Format, bool) {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(trimmed, "<"):
		return FormatXML, true
	case strings.HasPrefix(trimmed, "{"):
		return FormatJSON, true
	default:
		return "", false
	}
}

// FormatForPath selects the format for a file. The .xml and .json extensions
// win (case-insensitive); anything else is sniffed, and content that does not
// start with '<' falls through to JSON.
func FormatForPath(path, content string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML
	case ".json":
		return FormatJSON
	}
	if strings.HasPrefix(strings.TrimSpace(content), "<") {
		return FormatXML
	}
	return FormatJSON
}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatXML:
		return FormatXML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown model format %q: must be xml or json", name)
	}
}

// Validate runs the validator matching format over text.
func Validate(format Format, text string) *Result {
	if format == FormatXML {
		return ValidateXML(text)
	}
	return ValidateJSON(text)
}
