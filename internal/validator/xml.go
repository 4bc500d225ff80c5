package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// missingName is how an absent name attribute or field renders in messages.
const missingName = "None"

// ValidateXML validates an XML problem model.
func ValidateXML(text string) *Result {
	result := NewResult()

	root, err := parseXML(text)
	if err != nil {
		result.AddError(fmt.Sprintf("Invalid XML: %v", err))
		return result
	}

	entities := make(map[string]bool)
	stateVars := make(map[string]bool)
	actions := make(map[string]bool)
	constraints := make(map[string]bool)

	if section := findDescendant(root, "entities"); section == nil {
		result.AddWarning("No <entities> section found")
	} else {
		for _, entity := range childElements(section, "entity") {
			name, _ := attr(entity, "name")
			if name == "" {
				result.AddError("Entity missing 'name' attribute")
				continue
			}
			if entities[name] {
				result.AddError(fmt.Sprintf("Duplicate entity name: %s", name))
			}
			entities[name] = true
		}
	}

	if section := findDescendant(root, "state_variables"); section == nil {
		result.AddWarning("No <state_variables> section found")
	} else {
		for _, variable := range childElements(section, "variable") {
			name, ok := attr(variable, "name")
			if name == "" {
				result.AddError("Variable missing 'name' attribute")
			} else {
				if stateVars[name] {
					result.AddError(fmt.Sprintf("Duplicate state variable: %s", name))
				}
				stateVars[name] = true
			}

			_, hasInitial := attr(variable, "initial")
			_, hasDomain := attr(variable, "domain")
			if !hasInitial && !hasDomain {
				result.AddWarning(fmt.Sprintf("Variable '%s' has no initial value or domain", displayAttr(name, ok)))
			}
		}
	}

	if section := findDescendant(root, "actions"); section == nil {
		result.AddWarning("No <actions> section found")
	} else {
		for _, action := range childElements(section, "action") {
			name, ok := attr(action, "name")
			if name == "" {
				result.AddError("Action missing 'name' attribute")
			} else {
				actions[name] = true
			}

			label := displayAttr(name, ok)
			if !hasChildElements(firstChild(action, "preconditions")) {
				result.AddWarning(fmt.Sprintf("Action '%s' has no preconditions (consider adding at least one)", label))
			}
			if !hasChildElements(firstChild(action, "effects")) {
				result.AddWarning(fmt.Sprintf("Action '%s' has no effects defined", label))
			}
		}
	}

	if section := findDescendant(root, "constraints"); section == nil {
		result.AddWarning("No <constraints> section found")
	} else {
		for _, invariant := range childElements(section, "invariant") {
			id, _ := attr(invariant, "id")
			if id != "" {
				constraints[id] = true
			}
			if strings.TrimSpace(invariant.Text()) == "" {
				if id == "" {
					id = "(unnamed)"
				}
				result.AddError(fmt.Sprintf("Constraint %s has no content", id))
			}
		}
	}

	if findDescendant(root, "goal") == nil {
		result.AddWarning("No <goal> section found")
	}

	if len(entities) == 0 {
		result.AddError("No entities defined")
	}
	if len(stateVars) == 0 {
		result.AddError("No state variables defined")
	}
	if len(actions) == 0 {
		result.AddError("No actions defined")
	}

	return result
}

var (
	errNoRootElement = errors.New("no element found")
	errTrailingData  = errors.New("junk after document element")
	errUnboundPrefix = errors.New("unbound prefix")
)

// parseXML reads text into a tree and returns its root element. A document
// must hold exactly one root element and nothing but markup or whitespace
// around it.
func parseXML(text string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}

	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, errTrailingData
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, errTrailingData
			}
		}
	}
	if root == nil {
		return nil, errNoRootElement
	}
	if err := checkPrefixes(root); err != nil {
		return nil, err
	}
	return root, nil
}

// checkPrefixes rejects element and attribute prefixes that no enclosing
// xmlns declaration binds. The xml prefix is always bound.
func checkPrefixes(e *etree.Element) error {
	if e.Space != "" && e.Space != "xml" && e.NamespaceURI() == "" {
		return fmt.Errorf("%w: %s", errUnboundPrefix, e.FullTag())
	}
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" || a.Space == "xml" || a.Space == "xmlns" {
			continue
		}
		if a.NamespaceURI() == "" {
			return fmt.Errorf("%w: %s", errUnboundPrefix, a.FullKey())
		}
	}
	for _, child := range e.ChildElements() {
		if err := checkPrefixes(child); err != nil {
			return err
		}
	}
	return nil
}

// isElement reports whether e is named tag with no namespace. Elements in a
// default or prefixed namespace never match a section name.
func isElement(e *etree.Element, tag string) bool {
	return e.Space == "" && e.Tag == tag && e.NamespaceURI() == ""
}

// findDescendant returns the first element named tag below e in document
// order. e itself is never a match.
func findDescendant(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if isElement(child, tag) {
			return child
		}
		if found := findDescendant(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// childElements returns the direct children of e named tag.
func childElements(e *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range e.ChildElements() {
		if isElement(child, tag) {
			out = append(out, child)
		}
	}
	return out
}

func firstChild(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if isElement(child, tag) {
			return child
		}
	}
	return nil
}

func hasChildElements(e *etree.Element) bool {
	return e != nil && len(e.ChildElements()) > 0
}

// attr looks up an unprefixed attribute. The bool reports presence, so an
// attribute set to "" is distinguishable from a missing one.
func attr(e *etree.Element, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func displayAttr(value string, present bool) string {
	if !present {
		return missingName
	}
	return value
}
