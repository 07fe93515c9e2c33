// Released under an MIT license. See LICENSE.

// Package commands provides slur's primitive procedures.
package commands

import (
	"math"

	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/type/real"
)

// Spec describes a primitive procedure. Its body is called with a frame in
// which each parameter is bound to an argument.
type Spec struct {
	Params []string
	Rest   string
	Body   func(f *frame.T) cell.I
}

// Constants returns the values bound in every base environment.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"E":  real.New(math.E),
		"PI": real.New(math.Pi),
	}
}

// Functions returns the primitive procedures, by name.
func Functions() map[string]Spec {
	m := map[string]Spec{
		"car":     unary(car),
		"cdr":     unary(cdr),
		"cons":    binary(cons),
		"equal?":  binary(equal),
		"isList?": unary(isList),
		"list":    {Rest: "rest", Body: lookup("rest")},
		"match?":  binary(match),
		"not":     unary(not),
	}

	for _, group := range []map[string]Spec{predicates(), unaries(), binaries()} {
		for k, v := range group {
			m[k] = v
		}
	}

	return m
}

func lookup(name string) func(*frame.T) cell.I {
	return func(f *frame.T) cell.I {
		return f.Lookup(name)
	}
}

func unary(fn func(a cell.I) cell.I) Spec {
	return Spec{
		Params: []string{"a"},
		Body: func(f *frame.T) cell.I {
			return fn(f.Lookup("a"))
		},
	}
}

func binary(fn func(a, b cell.I) cell.I) Spec {
	return Spec{
		Params: []string{"a", "b"},
		Body: func(f *frame.T) cell.I {
			return fn(f.Lookup("a"), f.Lookup("b"))
		},
	}
}
