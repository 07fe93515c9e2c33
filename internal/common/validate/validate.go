// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists and the types of
// arguments.
package validate

import (
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/real"
	"github.com/slur-lang/slur/internal/common/type/sym"
)

// Variadic returns the first min to max elements of actual and what
// follows them. It returns false if actual has fewer than min elements.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, bool) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if !pair.Is(actual) {
			if i < min {
				return nil, actual, false
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, true
}

// Fixed returns the elements of actual if it is a proper list with
// between min and max elements.
func Fixed(actual cell.I, min, max int) ([]cell.I, bool) {
	expected, rest, ok := Variadic(actual, min, max)
	if !ok || rest != pair.Null {
		return nil, false
	}

	return expected, true
}

// Number returns the value of c. If c is a fixnum, isFix is true and i
// holds its value. Otherwise, c must be a real.
func Number(c cell.I) (i int64, r float64, isFix bool) {
	switch n := c.(type) {
	case *fixnum.T:
		return n.Int(), n.Float(), true
	case *real.T:
		return 0, n.Float(), false
	}

	panic(failure.New(failure.Eval, "Number expected, got %s.", c.Name()))
}

// Symbol returns the name of c, or false if c is not a symbol.
func Symbol(c cell.I) (string, bool) {
	if !sym.Is(c) {
		return "", false
	}

	return sym.To(c).String(), true
}
