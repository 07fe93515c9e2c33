// Released under an MIT license. See LICENSE.

// Package boolean provides slur's true value.
// There is no false value. The empty list is false.
package boolean

import (
	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/pair"
)

const name = "boolean"

// T (boolean) is the type of the unique true value.
type T struct{}

type boolean = T

// True is the only value of type T.
var True cell.I = &boolean{} //nolint:gochecknoglobals

// Bool returns True if b is true and Null otherwise.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return pair.Null
}

// Truthy returns false only for the empty list.
func Truthy(c cell.I) bool {
	return c != pair.Null
}

// Equal returns true if c is True.
func (b *boolean) Equal(c cell.I) bool {
	return c == True
}

// Literal returns the literal representation of True.
func (b *boolean) Literal() string {
	return "#t"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	return "#t"
}

// Tag returns the tag for a boolean.
func (b *boolean) Tag() tag.T {
	return tag.Boolean
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)
}
