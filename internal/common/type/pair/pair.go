// Released under an MIT license. See LICENSE.

// Package pair provides slur's cons cell type and the empty list.
package pair

import (
	"strings"

	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/tag"
)

const name = "cons"

// Null is the empty list. It is also false and marks the end of a list.
var Null cell.I = &null{} //nolint:gochecknoglobals

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	o, ok := c.(*pair)
	if !ok {
		return false
	}

	if p == o {
		return true
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(literal.String(p.car))

	var c cell.I
	for c = p.cdr; Is(c); c = Cdr(c) {
		b.WriteByte(' ')
		b.WriteString(literal.String(Car(c)))
	}

	if c != Null {
		b.WriteString(" . ")
		b.WriteString(literal.String(c))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Tag returns the tag for a pair.
func (p *pair) Tag() tag.T {
	return tag.Cons
}

type null struct{}

func (n *null) Equal(c cell.I) bool {
	return c == Null
}

func (n *null) Literal() string {
	return "()"
}

func (n *null) Name() string {
	return "null"
}

func (n *null) String() string {
	return "()"
}

func (n *null) Tag() tag.T {
	return tag.Null
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	if h == nil || t == nil {
		failure.Raise(failure.Malformed, "Cons requires a car and a cdr.")
	}

	return &pair{car: h, cdr: t}
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic(failure.New(failure.Eval, "Cons expected."))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// So is the empty list.
	_ = literal.I(&null{})
}
