// Released under an MIT license. See LICENSE.

// Package frame provides slur's lexical environment.
//
// A frame is a table of bindings with a link to its parent. The same chain
// is used by the compiler, which shadows names that will be bound at run
// time, and by the evaluator.
package frame

import (
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
)

// T (frame) is a lexical scope.
type T struct {
	parent *frame
	table  map[string]binding
	label  string
	tails  bool
	signal *Signal
}

type frame = T

type binding interface {
	binding()
}

type bound struct {
	value cell.I
}

type shadowed struct{}

func (bound) binding()    {}
func (shadowed) binding() {}

// Root creates a frame with no parent and its own abort signal.
func Root(label string) *frame {
	return &frame{label: label, signal: &Signal{}}
}

// New creates a child of parent labeled label.
// The child inherits parent's tail call mode and abort signal.
func New(parent *frame, label string) *frame {
	if parent == nil {
		return Root(label)
	}

	return &frame{
		parent: parent,
		label:  label,
		tails:  parent.tails,
		signal: parent.signal,
	}
}

// EnableTails returns a child of f with tail call elimination enabled.
func (f *frame) EnableTails() *frame {
	c := New(f, "")
	c.tails = true

	return c
}

// Tails reports whether tail calls are eliminated for evaluations in f.
func (f *frame) Tails() bool {
	return f.tails
}

// Inherit sets the tail call mode of f to that of the frame site.
func (f *frame) Inherit(site *frame) {
	f.tails = site.tails
}

// Label returns the context label for f.
func (f *frame) Label() string {
	return f.label
}

// Parent returns the enclosing frame.
func (f *frame) Parent() *frame {
	return f.parent
}

// Bind binds name to value in f.
func (f *frame) Bind(name string, value cell.I) {
	if value == nil {
		failure.Raise(failure.Malformed, "Cannot bind %s without a value.", name)
	}

	f.put(name, bound{value})
}

// Shadow marks name as bound in f, at run time, to an unknown value.
func (f *frame) Shadow(name string) {
	f.put(name, shadowed{})
}

// Lookup returns the value bound to name. If there is no such binding, or
// the nearest binding is a shadow, it panics.
func (f *frame) Lookup(name string) cell.I {
	v := f.TryLookup(name)
	if v == nil {
		panic(failure.New(failure.Eval, "Symbol not found: %s", name).Within(f.Context()))
	}

	return v
}

// TryLookup returns the value bound to name or nil.
func (f *frame) TryLookup(name string) cell.I {
	for ; f != nil; f = f.parent {
		switch b := f.table[name].(type) {
		case bound:
			return b.value
		case shadowed:
			return nil
		}
	}

	return nil
}

// Set updates the nearest existing binding for name. If there is none,
// name is bound in the root frame.
func (f *frame) Set(name string, value cell.I) {
	if value == nil {
		failure.Raise(failure.Malformed, "Cannot set %s without a value.", name)
	}

	for s := f; ; s = s.parent {
		if _, ok := s.table[name]; ok || s.parent == nil {
			s.put(name, bound{value})

			return
		}
	}
}

// Context returns the labels of f and its ancestors, innermost last.
func (f *frame) Context() []string {
	var labels []string

	for ; f != nil; f = f.parent {
		if f.label != "" {
			labels = append(labels, f.label)
		}
	}

	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return labels
}

// Signal returns the abort signal shared by f's chain.
func (f *frame) Signal() *Signal {
	return f.signal
}

// Check panics with an abort failure if an abort was requested.
func (f *frame) Check() {
	if reason, ok := f.signal.Aborted(); ok {
		panic(failure.New(failure.Abort, "%s", reason).Within(f.Context()))
	}
}

func (f *frame) put(name string, b binding) {
	if f.table == nil {
		f.table = map[string]binding{}
	}

	f.table[name] = b
}
