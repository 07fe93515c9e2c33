// Released under an MIT license. See LICENSE.

// Package types describes the types of slur values and matches them.
//
// Matching is directional: a.Match(b) asks whether a value of type b can be
// used where a value of type a is required and, if it can, under which
// assignment of types to the parameters involved.
package types

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/tag"
)

// T is a type.
type T interface {
	Equal(other T) bool
	FindParameters(found *Set)
	Involves(p *Parameter) bool
	IsParameterized() bool
	Match(other T) *Match
	String() string
	Substitute(mappings []Mapping) T

	sealed()
}

//nolint:gochecknoglobals
var (
	FixNum = &Base{tag.FixNum}
	Real   = &Base{tag.Real}
	Symbol = &Base{tag.Symbol}
	String = &Base{tag.String}
	True   = &Base{tag.Boolean}
	Null   = &Base{tag.Null}

	// Bool is either true or the empty list.
	Bool = NewMaybe(True)

	ids atomic.Int64
)

// Base is the type of a primitive value.
type Base struct {
	tag tag.T
}

// NewBase creates the type for values with tag t.
func NewBase(t tag.T) *Base {
	return &Base{t}
}

func (b *Base) Equal(other T) bool {
	o, ok := other.(*Base)

	return ok && o.tag == b.tag
}

func (b *Base) FindParameters(*Set) {}

func (b *Base) Involves(*Parameter) bool {
	return false
}

func (b *Base) IsParameterized() bool {
	return false
}

func (b *Base) Match(other T) *Match {
	return Result(b.Equal(other))
}

func (b *Base) String() string {
	return b.tag.String()
}

func (b *Base) Substitute([]Mapping) T {
	return b
}

// Tag returns the value tag for b.
func (b *Base) Tag() tag.T {
	return b.tag
}

// Parameter is a type variable. Every parameter is distinct.
type Parameter struct {
	id int64
}

// NewParameter creates a fresh parameter.
func NewParameter() *Parameter {
	return &Parameter{ids.Add(1) + 2000}
}

func (p *Parameter) Equal(other T) bool {
	o, ok := other.(*Parameter)

	return ok && o == p
}

func (p *Parameter) FindParameters(found *Set) {
	found.Add(p)
}

// ID returns the unique identifier of p.
func (p *Parameter) ID() int64 {
	return p.id
}

func (p *Parameter) Involves(q *Parameter) bool {
	return p == q
}

func (p *Parameter) IsParameterized() bool {
	return true
}

// Match binds p to other unless other is p.
func (p *Parameter) Match(other T) *Match {
	if p.Equal(other) {
		return Result(true)
	}

	return NewMatch(p, other)
}

func (p *Parameter) String() string {
	return "P[" + strconv.FormatInt(p.id, 10) + "]"
}

func (p *Parameter) Substitute(mappings []Mapping) T {
	for _, m := range mappings {
		if m.Parameter == p {
			return m.Type
		}
	}

	return p
}

// Cons is the type of a pair.
type Cons struct {
	Car T
	Cdr T
}

// NewCons creates a pair type.
func NewCons(car, cdr T) *Cons {
	if car == nil || cdr == nil {
		failure.Raise(failure.Malformed, "Expected car and cdr types.")
	}

	return &Cons{car, cdr}
}

func (c *Cons) Equal(other T) bool {
	o, ok := other.(*Cons)

	return ok && c.Car.Equal(o.Car) && c.Cdr.Equal(o.Cdr)
}

func (c *Cons) FindParameters(found *Set) {
	c.Car.FindParameters(found)
	c.Cdr.FindParameters(found)
}

func (c *Cons) Involves(p *Parameter) bool {
	return c.Car.Involves(p) || c.Cdr.Involves(p)
}

func (c *Cons) IsParameterized() bool {
	return c.Car.IsParameterized() || c.Cdr.IsParameterized()
}

func (c *Cons) Match(other T) *Match {
	o, ok := other.(*Cons)
	if !ok {
		return Result(false)
	}

	car := c.Car.Match(o.Car)
	if !car.Matches() {
		return car
	}

	cdr := c.Cdr.Match(o.Cdr)
	if !cdr.Matches() {
		return cdr
	}

	return car.Combine(cdr)
}

func (c *Cons) String() string {
	return "Cons[" + c.Car.String() + ", " + c.Cdr.String() + "]"
}

func (c *Cons) Substitute(mappings []Mapping) T {
	car := c.Car.Substitute(mappings)
	cdr := c.Cdr.Substitute(mappings)

	if car == c.Car && cdr == c.Cdr {
		return c
	}

	return NewCons(car, cdr)
}

// List is the type of a proper list with elements of a single type.
type List struct {
	Element T
}

// NewList creates a list type.
func NewList(element T) *List {
	if element == nil {
		failure.Raise(failure.Malformed, "Expected an element type.")
	}

	return &List{element}
}

func (l *List) Equal(other T) bool {
	o, ok := other.(*List)

	return ok && l.Element.Equal(o.Element)
}

func (l *List) FindParameters(found *Set) {
	l.Element.FindParameters(found)
}

func (l *List) Involves(p *Parameter) bool {
	return l.Element.Involves(p)
}

func (l *List) IsParameterized() bool {
	return l.Element.IsParameterized()
}

func (l *List) Match(other T) *Match {
	o, ok := other.(*List)
	if !ok {
		return Result(false)
	}

	return l.Element.Match(o.Element)
}

func (l *List) String() string {
	return "List[" + l.Element.String() + "]"
}

func (l *List) Substitute(mappings []Mapping) T {
	element := l.Element.Substitute(mappings)
	if element == l.Element {
		return l
	}

	return NewList(element)
}

// Maybe is the type of a value that is either of type Inner or the empty list.
type Maybe struct {
	Inner T
}

// NewMaybe creates an optional type. Maybe(Maybe(x)) is Maybe(x).
func NewMaybe(inner T) *Maybe {
	if inner == nil {
		failure.Raise(failure.Malformed, "Expected an inner type.")
	}

	if Null.Equal(inner) {
		failure.Raise(failure.Malformed, "Maybe cannot wrap the Null type.")
	}

	if m, ok := inner.(*Maybe); ok {
		return m
	}

	return &Maybe{inner}
}

func (m *Maybe) Equal(other T) bool {
	o, ok := other.(*Maybe)

	return ok && m.Inner.Equal(o.Inner)
}

func (m *Maybe) FindParameters(found *Set) {
	m.Inner.FindParameters(found)
}

func (m *Maybe) Involves(p *Parameter) bool {
	return m.Inner.Involves(p)
}

func (m *Maybe) IsParameterized() bool {
	return m.Inner.IsParameterized()
}

// Match accepts another Maybe with a matching inner type, the Null type,
// or anything that matches the inner type.
func (m *Maybe) Match(other T) *Match {
	if o, ok := other.(*Maybe); ok {
		return m.Inner.Match(o.Inner)
	}

	if Null.Equal(other) {
		return Result(true)
	}

	return m.Inner.Match(other)
}

func (m *Maybe) String() string {
	return "Maybe[" + m.Inner.String() + "]"
}

func (m *Maybe) Substitute(mappings []Mapping) T {
	inner := m.Inner.Substitute(mappings)
	if inner == m.Inner {
		return m
	}

	return NewMaybe(inner)
}

// Function is the type of a procedure with a fixed number of arguments.
type Function struct {
	Return    T
	Arguments []T
}

// NewFunction creates a function type.
func NewFunction(ret T, args ...T) *Function {
	if ret == nil {
		failure.Raise(failure.Malformed, "Expected a return type.")
	}

	for _, a := range args {
		if a == nil {
			failure.Raise(failure.Malformed, "Expected an argument type.")
		}
	}

	return &Function{ret, args}
}

func (f *Function) Equal(other T) bool {
	o, ok := other.(*Function)
	if !ok || len(f.Arguments) != len(o.Arguments) || !f.Return.Equal(o.Return) {
		return false
	}

	for i, a := range f.Arguments {
		if !a.Equal(o.Arguments[i]) {
			return false
		}
	}

	return true
}

func (f *Function) FindParameters(found *Set) {
	f.Return.FindParameters(found)

	for _, a := range f.Arguments {
		a.FindParameters(found)
	}
}

func (f *Function) Involves(p *Parameter) bool {
	if f.Return.Involves(p) {
		return true
	}

	for _, a := range f.Arguments {
		if a.Involves(p) {
			return true
		}
	}

	return false
}

func (f *Function) IsParameterized() bool {
	if f.Return.IsParameterized() {
		return true
	}

	for _, a := range f.Arguments {
		if a.IsParameterized() {
			return true
		}
	}

	return false
}

func (f *Function) Match(other T) *Match {
	o, ok := other.(*Function)
	if !ok || len(f.Arguments) != len(o.Arguments) {
		return Result(false)
	}

	result := f.Return.Match(o.Return)
	if !result.Matches() {
		return Result(false)
	}

	for i, a := range f.Arguments {
		result = result.Combine(a.Match(o.Arguments[i]))
	}

	return result
}

func (f *Function) String() string {
	args := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.String()
	}

	return "Function[" + f.Return.String() + "](" + strings.Join(args, ", ") + ")"
}

func (f *Function) Substitute(mappings []Mapping) T {
	changed := false

	ret := f.Return.Substitute(mappings)
	if ret != f.Return {
		changed = true
	}

	args := make([]T, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.Substitute(mappings)
		if args[i] != a {
			changed = true
		}
	}

	if !changed {
		return f
	}

	return NewFunction(ret, args...)
}

func (*Base) sealed()      {}
func (*Parameter) sealed() {}
func (*Cons) sealed()      {}
func (*List) sealed()      {}
func (*Maybe) sealed()     {}
func (*Function) sealed()  {}
