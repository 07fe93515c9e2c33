// Released under an MIT license. See LICENSE.

package engine

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/boolean"
	"github.com/slur-lang/slur/internal/common/type/pair"
)

var lambdas atomic.Int64 //nolint:gochecknoglobals

func lambdaName() string {
	return "lambda#" + strconv.FormatInt(lambdas.Add(1)+10000, 10)
}

// The expressions below are produced by the compiler. They are all
// self-contained: evaluating one never re-examines the source form.
type internal struct{}

func (internal) Name() string {
	return "internal"
}

func (internal) Tag() tag.T {
	return tag.Internal
}

type ifExpression struct {
	internal

	predicate   cell.I
	consequent  cell.I
	alternative cell.I
}

func (e *ifExpression) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *ifExpression) Literal() string {
	return "(if " + literal.String(e.predicate) + " " +
		literal.String(e.consequent) + " " +
		literal.String(e.alternative) + ")"
}

func (e *ifExpression) eval(f *frame.T) step {
	if boolean.Truthy(run(e.predicate, f)) {
		return continueWith(e.consequent, f)
	}

	return continueWith(e.alternative, f)
}

type clause struct {
	predicate cell.I
	result    cell.I
}

type condClauses struct {
	internal

	clauses []clause
}

func (e *condClauses) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *condClauses) Literal() string {
	s := make([]string, len(e.clauses))
	for i, c := range e.clauses {
		s[i] = "(" + literal.String(c.predicate) + " " + literal.String(c.result) + ")"
	}

	return "(cond " + strings.Join(s, " ") + ")"
}

func (e *condClauses) eval(f *frame.T) step {
	for _, c := range e.clauses {
		if boolean.Truthy(run(c.predicate, f)) {
			return continueWith(c.result, f)
		}
	}

	return done(pair.Null)
}

type binding struct {
	name  string
	value cell.I
}

type letExpression struct {
	internal

	sequential bool
	bindings   []binding
	body       *statements
}

func (e *letExpression) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *letExpression) Literal() string {
	s := make([]string, len(e.bindings))
	for i, b := range e.bindings {
		s[i] = "(" + b.name + " " + literal.String(b.value) + ")"
	}

	name := "let"
	if e.sequential {
		name = "let*"
	}

	return "(" + name + " (" + strings.Join(s, " ") + ") " + e.body.inner() + ")"
}

func (e *letExpression) eval(f *frame.T) step {
	scope := frame.New(f, "")

	for _, b := range e.bindings {
		env := f
		if e.sequential {
			env = scope
		}

		scope.Bind(b.name, run(b.value, env))
	}

	return continueWith(e.body, scope)
}

type labelsExpression struct {
	internal

	functions []*Func
	body      *statements
}

func (e *labelsExpression) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *labelsExpression) Literal() string {
	s := make([]string, len(e.functions))
	for i, fn := range e.functions {
		s[i] = "(" + fn.name + ")"
	}

	return "(labels (" + strings.Join(s, " ") + ") " + e.body.inner() + ")"
}

func (e *labelsExpression) eval(f *frame.T) step {
	scope := frame.New(f, "")

	for _, fn := range e.functions {
		scope.Bind(fn.name, fn.closure(scope))
	}

	return continueWith(e.body, scope)
}

// Only the last statement is in tail position.
type statements struct {
	internal

	body []cell.I
}

func (e *statements) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *statements) Literal() string {
	return "(begin " + e.inner() + ")"
}

func (e *statements) eval(f *frame.T) step {
	last := len(e.body) - 1

	for _, c := range e.body[:last] {
		run(c, f)
	}

	return continueWith(e.body[last], f)
}

func (e *statements) inner() string {
	s := make([]string, len(e.body))
	for i, c := range e.body {
		s[i] = literal.String(c)
	}

	return strings.Join(s, " ")
}

// A compiledLambda creates a closure over the frame it is evaluated in.
type compiledLambda struct {
	internal

	name string
	fn   *Func
}

func (e *compiledLambda) Equal(c cell.I) bool {
	return c == cell.I(e)
}

func (e *compiledLambda) Literal() string {
	return e.name
}

func (e *compiledLambda) eval(f *frame.T) step {
	fn := e.fn.closure(f)
	fn.name = e.name

	return done(fn)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func expressions() { //nolint:deadcode,unused
	_ = expression(&ifExpression{})
	_ = expression(&condClauses{})
	_ = expression(&letExpression{})
	_ = expression(&labelsExpression{})
	_ = expression(&statements{})
	_ = expression(&compiledLambda{})
}
