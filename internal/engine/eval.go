// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/sym"
)

// An expression is a value that does something when evaluated.
// Expressions other than builtins are only created by the compiler.
type expression interface {
	cell.I

	eval(f *frame.T) step
}

// A step is either a value or the next expression to evaluate, and the
// frame to evaluate it in.
type step struct {
	value cell.I
	next  cell.I
	frame *frame.T
}

func done(v cell.I) step {
	return step{value: v}
}

func tail(c cell.I, f *frame.T) step {
	return step{next: c, frame: f}
}

// Eval evaluates c in the frame f.
func Eval(c cell.I, f *frame.T) (v cell.I, err error) {
	defer failure.Recover(&err)

	return run(c, f), nil
}

func run(c cell.I, f *frame.T) cell.I {
	for {
		s := evaluate(c, f)
		if s.next == nil {
			return s.value
		}

		c, f = s.next, s.frame
	}
}

func evaluate(c cell.I, f *frame.T) step {
	switch t := c.(type) {
	case *sym.T:
		return done(f.Lookup(t.String()))
	case *pair.T:
		return apply(t, f)
	case expression:
		return t.eval(f)
	}

	return done(c)
}

// A combination whose head is not a procedure or special form evaluates to
// itself.
func apply(c *pair.T, f *frame.T) step {
	f.Check()

	switch head := run(pair.Car(c), f).(type) {
	case *Func:
		return head.invoke(f, pair.Cdr(c))
	case *SpecialForm:
		return head.run(f, pair.Cdr(c))
	}

	return done(c)
}

// When tail calls are enabled, combinations and expressions in tail
// position are returned to the caller's loop instead of evaluated.
func continueWith(c cell.I, f *frame.T) step {
	if f.Tails() {
		switch c.(type) {
		case *pair.T, expression:
			return tail(c, f)
		}
	}

	return done(run(c, f))
}
