// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/pair"
)

// Dotted returns a list composed of elements that ends in tail.
func Dotted(tail cell.I, elements ...cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// Is returns true if c is Null or a chain of pairs ending in Null.
// The list must be non-circular.
func Is(c cell.I) bool {
	for pair.Is(c) {
		c = pair.Cdr(c)
	}

	return c == pair.Null
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Dotted(pair.Null, elements...)
}

// Split returns the elements of list and the value that ends it.
// The tail is Null for a proper list.
func Split(list cell.I) ([]cell.I, cell.I) {
	var elements []cell.I

	for pair.Is(list) {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements, list
}
