// Released under an MIT license. See LICENSE.

// Package real provides slur's floating point type.
package real

import (
	"math"
	"strconv"
	"strings"

	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/tag"
)

const name = "real"

// T (real) wraps Go's float64 type.
type T float64

type real = T

// New creates a real cell.
func New(v float64) cell.I {
	r := real(v)

	return &r
}

// Equal returns true if c is a real with the same value.
func (r *real) Equal(c cell.I) bool {
	return Is(c) && *r == *To(c)
}

// Float returns the value of r as a float64.
func (r *real) Float() float64 {
	return float64(*r)
}

// Literal returns the literal representation of the real r.
// The result always reads back as a real.
func (r *real) Literal() string {
	v := float64(*r)

	switch {
	case math.IsInf(v, 1):
		return "1e999"
	case math.IsInf(v, -1):
		return "-1e999"
	case math.IsNaN(v):
		// No literal reads as NaN.
		return "0.0"
	}

	s := strings.Replace(strconv.FormatFloat(v, 'g', -1, 64), "e+", "e", 1)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

// Name returns the type name for the real r.
func (r *real) Name() string {
	return name
}

// String returns the text of the real r.
func (r *real) String() string {
	return r.Literal()
}

// Tag returns the tag for a real.
func (r *real) Tag() tag.T {
	return tag.Real
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic(failure.New(failure.Eval, "Real expected."))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t real

	// The real type is a cell.
	_ = cell.I(&t)

	// The real type has a literal representation.
	_ = literal.I(&t)

	// The real type is a stringer.
	_ = common.Stringer(&t)
}
