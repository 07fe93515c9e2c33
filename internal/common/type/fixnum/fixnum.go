// Released under an MIT license. See LICENSE.

// Package fixnum provides slur's integer type.
package fixnum

import (
	"math"
	"strconv"

	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/tag"
)

const name = "fixnum"

// T (fixnum) wraps Go's int64 type.
type T int64

type fixnum = T

// New creates a fixnum cell.
func New(v int64) cell.I {
	n := fixnum(v)

	return &n
}

// Truncate creates a fixnum from v, truncating toward zero.
func Truncate(v float64) cell.I {
	return New(int64(math.Trunc(v)))
}

// Equal returns true if c is a fixnum with the same value.
func (n *fixnum) Equal(c cell.I) bool {
	return Is(c) && *n == *To(c)
}

// Int returns the value of n as an int64.
func (n *fixnum) Int() int64 {
	return int64(*n)
}

// Float returns the value of n as a float64.
func (n *fixnum) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the fixnum n.
func (n *fixnum) Literal() string {
	return strconv.FormatInt(int64(*n), 10)
}

// Name returns the type name for the fixnum n.
func (n *fixnum) Name() string {
	return name
}

// String returns the text of the fixnum n.
func (n *fixnum) String() string {
	return n.Literal()
}

// Tag returns the tag for a fixnum.
func (n *fixnum) Tag() tag.T {
	return tag.FixNum
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

	panic(failure.New(failure.Eval, "FixNum expected."))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fixnum

	// The fixnum type is a cell.
	_ = cell.I(&t)

	// The fixnum type has a literal representation.
	_ = literal.I(&t)

	// The fixnum type is a stringer.
	_ = common.Stringer(&t)
}
