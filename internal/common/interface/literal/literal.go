// Released under an MIT license. See LICENSE.

// Package literal defines the interface for slur values that can be expressed as literals.
package literal

import (
	"github.com/slur-lang/slur/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
// Re-reading the result yields a value equal to c.
func String(c cell.I) string {
	if c == nil {
		return "()"
	}

	l, ok := c.(I)
	if !ok {
		// Not all cell types can be expressed as literals.
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}
