// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/type/boolean"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/sym"
	"github.com/slur-lang/slur/internal/common/validate"
)

// Shape errors are compile errors when found by the compiler and eval
// errors when found while evaluating source directly.
func malformed(k failure.Kind, f *frame.T, format string, a ...interface{}) {
	panic(failure.New(k, format, a...).Within(f.Context()))
}

func specials() map[string]*SpecialForm {
	forms := map[string]*SpecialForm{
		"and":    {run: and},
		"cond":   {run: condRun, compile: condCompile},
		"define": {run: defineRun, compile: defineCompile},
		"if":     {run: ifRun, compile: ifCompile},
		"labels": {run: labelsRun, compile: labelsCompile},
		"lambda": {run: lambdaRun, compile: lambdaCompile},
		"let":    {run: letRun(false), compile: letCompile(false)},
		"let*":   {run: letRun(true), compile: letCompile(true)},
		"or":     {run: or},
		"quote":  {run: quoteRun, compile: quoteCompile},
	}

	for k, v := range forms {
		v.name = k
	}

	return forms
}

func quoteRun(f *frame.T, args cell.I) step {
	v, ok := validate.Fixed(args, 1, 1)
	if !ok {
		malformed(failure.Eval, f, "Malformed quote.")
	}

	return done(v[0])
}

func quoteCompile(s *SpecialForm, f *frame.T, args cell.I) cell.I {
	if _, ok := validate.Fixed(args, 1, 1); !ok {
		malformed(failure.Compile, f, "Malformed quote.")
	}

	return pair.Cons(s, args)
}

func processIf(k failure.Kind, f *frame.T, args cell.I) *ifExpression {
	v, ok := validate.Fixed(args, 2, 3)
	if !ok {
		malformed(k, f, "Malformed if.")
	}

	e := &ifExpression{predicate: v[0], consequent: v[1], alternative: pair.Null}
	if len(v) == 3 {
		e.alternative = v[2]
	}

	return e
}

func ifRun(f *frame.T, args cell.I) step {
	return processIf(failure.Eval, f, args).eval(f)
}

func ifCompile(_ *SpecialForm, f *frame.T, args cell.I) cell.I {
	e := processIf(failure.Compile, f, args)

	e.predicate = compile(e.predicate, f)
	e.consequent = compile(e.consequent, f)
	e.alternative = compile(e.alternative, f)

	return e
}

func and(f *frame.T, args cell.I) step {
	if !pair.Is(args) {
		malformed(failure.Eval, f, "Malformed and.")
	}

	for ; pair.Is(args); args = pair.Cdr(args) {
		if !boolean.Truthy(run(pair.Car(args), f)) {
			return done(pair.Null)
		}
	}

	if args != pair.Null {
		malformed(failure.Eval, f, "Malformed and.")
	}

	return done(boolean.True)
}

func or(f *frame.T, args cell.I) step {
	if !pair.Is(args) {
		malformed(failure.Eval, f, "Malformed or.")
	}

	for ; pair.Is(args); args = pair.Cdr(args) {
		if boolean.Truthy(run(pair.Car(args), f)) {
			return done(boolean.True)
		}
	}

	if args != pair.Null {
		malformed(failure.Eval, f, "Malformed or.")
	}

	return done(pair.Null)
}

func processCond(k failure.Kind, f *frame.T, args cell.I) *condClauses {
	e := &condClauses{}

	for ; pair.Is(args); args = pair.Cdr(args) {
		v, ok := validate.Fixed(pair.Car(args), 2, 2)
		if !ok {
			malformed(k, f, "Malformed clause.")
		}

		e.clauses = append(e.clauses, clause{predicate: v[0], result: v[1]})
	}

	if args != pair.Null {
		malformed(k, f, "Malformed clauses.")
	}

	return e
}

func condRun(f *frame.T, args cell.I) step {
	return processCond(failure.Eval, f, args).eval(f)
}

func condCompile(_ *SpecialForm, f *frame.T, args cell.I) cell.I {
	e := processCond(failure.Compile, f, args)

	for i, c := range e.clauses {
		e.clauses[i] = clause{predicate: compile(c.predicate, f), result: compile(c.result, f)}
	}

	return e
}

func processStatements(k failure.Kind, f *frame.T, body cell.I) *statements {
	s, tail := list.Split(body)
	if len(s) == 0 || tail != pair.Null {
		malformed(k, f, "Malformed statements.")
	}

	return &statements{body: s}
}

func buildFunction(k failure.Kind, f *frame.T, name string, params, body cell.I) *Func {
	var names []string

	for ; pair.Is(params); params = pair.Cdr(params) {
		p, ok := validate.Symbol(pair.Car(params))
		if !ok {
			malformed(k, f, "Malformed function parameters.")
		}

		names = append(names, p)
	}

	rest := ""
	if params != pair.Null {
		p, ok := validate.Symbol(params)
		if !ok {
			malformed(k, f, "Malformed function parameters.")
		}

		rest = p
	}

	if !pair.Is(body) {
		malformed(k, f, "Malformed function body.")
	}

	return NewFunc(name, names, rest, processStatements(k, f, body), nil)
}

func lambdaRun(f *frame.T, args cell.I) step {
	if !pair.Is(args) {
		malformed(failure.Eval, f, "Malformed lambda.")
	}

	fn := buildFunction(failure.Eval, f, lambdaName(), pair.Car(args), pair.Cdr(args))

	return done(fn.closure(f))
}

func lambdaCompile(_ *SpecialForm, f *frame.T, args cell.I) cell.I {
	if !pair.Is(args) {
		malformed(failure.Compile, f, "Malformed lambda.")
	}

	name := lambdaName()

	fn := buildFunction(failure.Compile, f, name, pair.Car(args), pair.Cdr(args))
	compileBody(fn, f)

	return &compiledLambda{name: name, fn: fn}
}

func processLet(k failure.Kind, f *frame.T, args cell.I, sequential, compiling bool) *letExpression {
	if !pair.Is(args) {
		malformed(k, f, "Malformed let.")
	}

	e := &letExpression{sequential: sequential}
	scope := frame.New(f, "")

	lets := pair.Car(args)
	for ; pair.Is(lets); lets = pair.Cdr(lets) {
		v, ok := validate.Fixed(pair.Car(lets), 2, 2)
		if !ok {
			malformed(k, f, "Malformed let clause.")
		}

		name, ok := validate.Symbol(v[0])
		if !ok {
			malformed(k, f, "Malformed let, Symbol expected.")
		}

		value := v[1]
		if compiling {
			env := f
			if sequential {
				env = scope
			}

			value = compile(value, env)
			scope.Shadow(name)
		}

		e.bindings = append(e.bindings, binding{name: name, value: value})
	}

	if lets != pair.Null {
		malformed(k, f, "Malformed let clauses.")
	}

	e.body = processStatements(k, f, pair.Cdr(args))
	if compiling {
		e.body = compileStatements(e.body, scope)
	}

	return e
}

func letRun(sequential bool) func(*frame.T, cell.I) step {
	return func(f *frame.T, args cell.I) step {
		return processLet(failure.Eval, f, args, sequential, false).eval(f)
	}
}

func letCompile(sequential bool) func(*SpecialForm, *frame.T, cell.I) cell.I {
	return func(_ *SpecialForm, f *frame.T, args cell.I) cell.I {
		return processLet(failure.Compile, f, args, sequential, true)
	}
}

func processLabels(k failure.Kind, f *frame.T, args cell.I, compiling bool) *labelsExpression {
	if !pair.Is(args) {
		malformed(k, f, "Malformed labels.")
	}

	e := &labelsExpression{}
	scope := frame.New(f, "")

	labels := pair.Car(args)
	for ; pair.Is(labels); labels = pair.Cdr(labels) {
		v, rest, ok := validate.Variadic(pair.Car(labels), 2, 2)
		if !ok {
			malformed(k, f, "Malformed labels clause.")
		}

		name, ok := validate.Symbol(v[0])
		if !ok {
			malformed(k, f, "Symbol expected.")
		}

		if rest == pair.Null {
			malformed(k, f, "Function body expected.")
		}

		scope.Shadow(name)

		e.functions = append(e.functions, buildFunction(k, f, name, v[1], rest))
	}

	if labels != pair.Null {
		malformed(k, f, "Malformed labels clauses.")
	}

	e.body = processStatements(k, f, pair.Cdr(args))

	if compiling {
		e.body = compileStatements(e.body, scope)

		for _, fn := range e.functions {
			compileBody(fn, scope)
		}
	}

	return e
}

func labelsRun(f *frame.T, args cell.I) step {
	return processLabels(failure.Eval, f, args, false).eval(f)
}

func labelsCompile(_ *SpecialForm, f *frame.T, args cell.I) cell.I {
	return processLabels(failure.Compile, f, args, true)
}

// A define binds a name in the frame it is evaluated in and returns the
// name as a symbol.
func defineRun(f *frame.T, args cell.I) step {
	if !pair.Is(args) {
		malformed(failure.Eval, f, "Malformed define.")
	}

	target := pair.Car(args)

	if pair.Is(target) {
		name, ok := validate.Symbol(pair.Car(target))
		if !ok {
			malformed(failure.Eval, f, "Malformed define.")
		}

		fn := buildFunction(failure.Eval, f, name, pair.Cdr(target), pair.Cdr(args))
		f.Bind(name, fn.closure(f))

		return done(sym.New(name))
	}

	name, ok := validate.Symbol(target)
	if !ok {
		malformed(failure.Eval, f, "Malformed define.")
	}

	v, ok := validate.Fixed(pair.Cdr(args), 1, 1)
	if !ok {
		malformed(failure.Eval, f, "Malformed define.")
	}

	f.Bind(name, run(v[0], f))

	return done(sym.New(name))
}

func defineCompile(s *SpecialForm, f *frame.T, args cell.I) cell.I {
	if !pair.Is(args) {
		malformed(failure.Compile, f, "Malformed define.")
	}

	target := pair.Car(args)

	if pair.Is(target) {
		name, ok := validate.Symbol(pair.Car(target))
		if !ok {
			malformed(failure.Compile, f, "Malformed define.")
		}

		fn := buildFunction(failure.Compile, f, name, pair.Cdr(target), pair.Cdr(args))

		scope := frame.New(f, name+" - compiled")
		scope.Shadow(name)
		compileBody(fn, scope)

		return list.New(s, sym.New(name), &compiledLambda{name: name, fn: fn})
	}

	if !sym.Is(target) {
		malformed(failure.Compile, f, "Malformed define.")
	}

	v, ok := validate.Fixed(pair.Cdr(args), 1, 1)
	if !ok {
		malformed(failure.Compile, f, "Malformed define.")
	}

	return list.New(s, target, compile(v[0], f))
}
