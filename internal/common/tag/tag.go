// Released under an MIT license. See LICENSE.

// Package tag enumerates the kinds of value known to slur.
// The runtime and the type engine share this enumeration.
package tag

// T (tag) identifies the kind of a value.
type T int

const (
	Internal T = iota
	Function
	SpecialForm
	FixNum
	Real
	String
	Symbol
	Cons
	Null
	Boolean
)

//nolint:gochecknoglobals
var names = [...]string{
	Internal:    "Internal",
	Function:    "Function",
	SpecialForm: "SpecialForm",
	FixNum:      "FixNum",
	Real:        "Real",
	String:      "String",
	Symbol:      "Symbol",
	Cons:        "Cons",
	Null:        "Null",
	Boolean:     "Boolean",
}

// String returns the printable name for the tag t.
func (t T) String() string {
	if t < 0 || int(t) >= len(names) {
		return "Unknown"
	}

	return names[t]
}
