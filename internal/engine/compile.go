// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/sym"
	"github.com/slur-lang/slur/internal/common/validate"
)

// Compile rewrites c into an equivalent expression for evaluation in f.
func Compile(c cell.I, f *frame.T) (v cell.I, err error) {
	defer failure.Recover(&err)

	return compile(c, f), nil
}

func compile(c cell.I, f *frame.T) cell.I {
	switch t := c.(type) {
	case *sym.T:
		if v := f.TryLookup(t.String()); v != nil && constant(v) {
			return v
		}

		return c
	case *pair.T:
		head := compile(pair.Car(t), f)
		args := pair.Cdr(t)

		switch h := head.(type) {
		case *Func:
			return pair.Cons(h, compileList(args, f))
		case *SpecialForm:
			if h.compile != nil {
				return h.compile(h, f, args)
			}

			return pair.Cons(h, compileList(args, f))
		}

		return pair.Cons(head, compileElements(args, f))
	}

	return c
}

// Only values that evaluate to themselves can replace a symbol.
func constant(c cell.I) bool {
	switch c.Tag() {
	case tag.Symbol, tag.Cons:
		return false
	case tag.Internal, tag.Function, tag.SpecialForm,
		tag.FixNum, tag.Real, tag.String, tag.Null, tag.Boolean:
	}

	return true
}

// Arguments to a procedure or special form must form a proper list.
func compileList(args cell.I, f *frame.T) cell.I {
	if args == pair.Null {
		return args
	}

	if !pair.Is(args) {
		panic(failure.New(failure.Compile, "Malformed list.").Within(f.Context()))
	}

	return pair.Cons(compile(pair.Car(args), f), compileList(pair.Cdr(args), f))
}

func compileElements(args cell.I, f *frame.T) cell.I {
	if !pair.Is(args) {
		return args
	}

	return pair.Cons(compile(pair.Car(args), f), compileElements(pair.Cdr(args), f))
}

// The body of fn is compiled with its parameters shadowed.
func compileBody(fn *Func, f *frame.T) {
	body, ok := fn.body.(*statements)
	if !ok {
		return
	}

	scope := frame.New(f, fn.name)

	for _, p := range fn.params {
		scope.Shadow(p)
	}

	if fn.rest != "" {
		scope.Shadow(fn.rest)
	}

	fn.body = compileStatements(body, scope)
}

// Names defined by the statements are shadowed in f, which must be a
// scope created for them.
func compileStatements(s *statements, f *frame.T) *statements {
	for _, c := range s.body {
		if name, ok := defines(c, f); ok {
			f.Shadow(name)
		}
	}

	body := make([]cell.I, len(s.body))
	for i, c := range s.body {
		body[i] = compile(c, f)
	}

	return &statements{body: body}
}

// The name bound by c, if c is a define.
func defines(c cell.I, f *frame.T) (string, bool) {
	if !pair.Is(c) {
		return "", false
	}

	head := pair.Car(c)
	if name, ok := validate.Symbol(head); ok {
		head = f.TryLookup(name)
	}

	if s, ok := head.(*SpecialForm); !ok || s.name != "define" {
		return "", false
	}

	target := pair.Cdr(c)
	if !pair.Is(target) {
		return "", false
	}

	target = pair.Car(target)
	if pair.Is(target) {
		target = pair.Car(target)
	}

	return validate.Symbol(target)
}
