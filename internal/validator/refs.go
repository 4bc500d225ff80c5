package validator

import (
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	identifierPattern = regexp.MustCompile(`\b([a-z_][a-z0-9_]*)\b`)
	indexedPattern    = regexp.MustCompile(`(\w+)\[`)
)

// ExtractReferences returns the sorted set of names a free-text condition
// may refer to: lower-cased identifiers such as "loc" or "stock", and the
// base of indexed references such as "stock[sku]" in their original case.
//
// No validation rule calls this; preconditions and effects are not
// cross-checked against declared names.
func ExtractReferences(text string) []string {
	seen := make(map[string]bool)

	text = norm.NFC.String(text)
	lower := cases.Lower(language.Und).String(text)
	for _, m := range identifierPattern.FindAllStringSubmatch(lower, -1) {
		seen[m[1]] = true
	}
	for _, m := range indexedPattern.FindAllStringSubmatch(text, -1) {
		seen[m[1]] = true
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
