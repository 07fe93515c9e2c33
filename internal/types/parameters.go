// Released under an MIT license. See LICENSE.

package types

import (
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/pair"
)

// Set is a set of parameters that remembers the order of insertion.
type Set struct {
	list []*Parameter
	seen map[*Parameter]struct{}
}

// Add adds p to s.
func (s *Set) Add(p *Parameter) {
	if _, ok := s.seen[p]; ok {
		return
	}

	if s.seen == nil {
		s.seen = map[*Parameter]struct{}{}
	}

	s.seen[p] = struct{}{}
	s.list = append(s.list, p)
}

// Contains returns true if p is in s.
func (s *Set) Contains(p *Parameter) bool {
	_, ok := s.seen[p]

	return ok
}

// Len returns the number of parameters in s.
func (s *Set) Len() int {
	return len(s.list)
}

// List returns the parameters in s in the order they were added.
func (s *Set) List() []*Parameter {
	return append([]*Parameter(nil), s.list...)
}

// FindParameters returns the distinct parameters in t.
func FindParameters(t T) []*Parameter {
	found := &Set{}
	t.FindParameters(found)

	return found.list
}

// UniqueParameters returns a copy of t with each of its parameters
// replaced by a fresh one.
func UniqueParameters(t T) T {
	ps := FindParameters(t)
	if len(ps) == 0 {
		return t
	}

	mappings := make([]Mapping, len(ps))
	for i, p := range ps {
		mappings[i] = Mapping{p, NewParameter()}
	}

	return t.Substitute(mappings)
}

// EqualModuloParameters returns true if a and b are the same type after
// renaming parameters. Parameters may only be mapped to parameters.
func EqualModuloParameters(a, b T) bool {
	if a.IsParameterized() && b.IsParameterized() {
		m := a.Match(b)
		if !m.Matches() {
			return false
		}

		for _, mapping := range m.mappings {
			if _, ok := mapping.Type.(*Parameter); !ok {
				return false
			}
		}

		a = a.Substitute(m.mappings)
	}

	return a.Equal(b)
}

// Of returns the type of the value c.
// Procedures and special forms have no type.
func Of(c cell.I) (T, bool) {
	switch c.Tag() {
	case tag.FixNum:
		return FixNum, true
	case tag.Real:
		return Real, true
	case tag.String:
		return String, true
	case tag.Symbol:
		return Symbol, true
	case tag.Boolean:
		return True, true
	case tag.Null:
		return Null, true
	case tag.Cons:
		car, ok := Of(pair.Car(c))
		if !ok {
			return nil, false
		}

		cdr, ok := Of(pair.Cdr(c))
		if !ok {
			return nil, false
		}

		return NewCons(car, cdr), true
	case tag.Internal, tag.Function, tag.SpecialForm:
	}

	return nil, false
}
