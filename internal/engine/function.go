// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
)

// Func is a procedure. Its arguments are evaluated before it is invoked.
type Func struct {
	name   string
	params []string
	rest   string
	body   cell.I
	frame  *frame.T
}

// NewFunc creates a procedure named name. If rest is not empty, it names
// a parameter that collects any remaining arguments. A nil f means the
// procedure is evaluated in a child of the frame it is called from.
func NewFunc(name string, params []string, rest string, body cell.I, f *frame.T) *Func {
	if body == nil {
		failure.Raise(failure.Malformed, "Malformed function definition.")
	}

	return &Func{name: name, params: params, rest: rest, body: body, frame: f}
}

// Equal returns true if c is the same procedure.
func (fn *Func) Equal(c cell.I) bool {
	return c == cell.I(fn)
}

// Literal returns the name of the procedure.
func (fn *Func) Literal() string {
	return fn.name
}

// Name returns the type name for a procedure.
func (fn *Func) Name() string {
	return "function"
}

// Params returns the parameter names and the rest parameter name.
func (fn *Func) Params() ([]string, string) {
	return fn.params, fn.rest
}

// String returns the name of the procedure.
func (fn *Func) String() string {
	return fn.name
}

// Tag returns the tag for a procedure.
func (fn *Func) Tag() tag.T {
	return tag.Function
}

func (fn *Func) closure(f *frame.T) *Func {
	c := *fn
	c.frame = f

	return &c
}

func (fn *Func) invoke(site *frame.T, args cell.I) step {
	parent := fn.frame
	if parent == nil {
		parent = site
	}

	call := frame.New(parent, fn.name)
	call.Inherit(site)

	actual := args
	for _, p := range fn.params {
		if actual == pair.Null {
			fn.fail(site, args, "Insufficient arguments")
		}

		if !pair.Is(actual) {
			fn.fail(site, args, "Malformed expression")
		}

		call.Bind(p, run(pair.Car(actual), site))

		actual = pair.Cdr(actual)
	}

	if fn.rest != "" {
		values, tail := list.Split(actual)
		if tail != pair.Null {
			fn.fail(site, args, "Malformed expression")
		}

		for i, v := range values {
			values[i] = run(v, site)
		}

		call.Bind(fn.rest, list.New(values...))
	} else if actual != pair.Null {
		fn.fail(site, args, "Too many arguments")
	}

	return continueWith(fn.body, call)
}

func (fn *Func) fail(site *frame.T, args cell.I, msg string) {
	e := failure.New(failure.Invocation, "%s", msg)
	e.Function = fn.name
	e.Args = args

	panic(e.Within(site.Context()))
}

// SpecialForm is a control construct. Its operands are passed to it
// unevaluated.
type SpecialForm struct {
	name    string
	run     func(f *frame.T, args cell.I) step
	compile func(s *SpecialForm, f *frame.T, args cell.I) cell.I
}

// Equal returns true if c is the same special form.
func (s *SpecialForm) Equal(c cell.I) bool {
	return c == cell.I(s)
}

// Literal returns the name of the special form.
func (s *SpecialForm) Literal() string {
	return s.name
}

// Name returns the type name for a special form.
func (s *SpecialForm) Name() string {
	return "special form"
}

// String returns the name of the special form.
func (s *SpecialForm) String() string {
	return s.name
}

// Tag returns the tag for a special form.
func (s *SpecialForm) Tag() tag.T {
	return tag.SpecialForm
}

// Builtin is the body of a primitive procedure. It is called with the
// frame holding the procedure's arguments.
type Builtin struct {
	name string
	fn   func(f *frame.T) cell.I
}

// NewBuiltin creates a procedure named name with a native body.
func NewBuiltin(name string, params []string, rest string, body func(f *frame.T) cell.I) *Func {
	return NewFunc(name, params, rest, &Builtin{name: name, fn: body}, nil)
}

// Equal returns true if c is the same builtin.
func (b *Builtin) Equal(c cell.I) bool {
	return c == cell.I(b)
}

// Literal returns a placeholder for the native body.
func (b *Builtin) Literal() string {
	return "<builtin " + b.name + ">"
}

// Name returns the type name for a builtin.
func (b *Builtin) Name() string {
	return "builtin"
}

// Tag returns the tag for a builtin.
func (b *Builtin) Tag() tag.T {
	return tag.Internal
}

func (b *Builtin) eval(f *frame.T) step {
	v := b.fn(f)
	if v == nil {
		failure.Raise(failure.Eval, "%s returned no value.", b.name)
	}

	return done(v)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var fn Func

	// The Func type is a cell.
	_ = cell.I(&fn)

	// The Func type has a literal representation.
	_ = literal.I(&fn)

	// The Func type is a stringer.
	_ = common.Stringer(&fn)

	var s SpecialForm

	// The SpecialForm type is a cell.
	_ = cell.I(&s)

	// The SpecialForm type has a literal representation.
	_ = literal.I(&s)

	// The Builtin type is an expression.
	_ = expression(&Builtin{})
}
