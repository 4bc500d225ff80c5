// Package validator checks problem models for completeness and consistency.
//
// A problem model describes entities, state variables, actions, constraints
// and an optional goal. Models arrive in one of two serializations:
//
//	<model>
//	  <entities><entity name="robot"/></entities>
//	  <state_variables><variable name="loc" initial="A"/></state_variables>
//	  <actions>
//	    <action name="move">
//	      <preconditions><at>A</at></preconditions>
//	      <effects><at>B</at></effects>
//	    </action>
//	  </actions>
//	  <constraints><invariant id="c1">loc in {A, B}</invariant></constraints>
//	  <goal>loc = B</goal>
//	</model>
//
// or the equivalent JSON object with "entities", "state_variables", "actions",
// "constraints" arrays and a "goal" key.
//
// ValidateXML and ValidateJSON are pure functions from document text to a
// Result. They never return Go errors: a malformed document is reported as a
// single error entry and stops the check, every other problem is collected
// in one pass.
//
// The two validators are intentionally not symmetric. Entities and state
// variables get duplicate-name checks while actions and constraint ids do
// not, and an empty constraints collection is only a warning.
package validator
