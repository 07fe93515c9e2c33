// Released under an MIT license. See LICENSE.

// Package engine provides a compiler and evaluator for slur code.
//
// An engine holds a base environment, with the special forms and primitive
// procedures, and a top frame where programs define things. Forms are
// compiled against the top frame and then evaluated by a loop that, when
// tail calls are enabled, runs calls in tail position without growing the
// Go stack.
package engine

import (
	"context"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/engine/boot"
	"github.com/slur-lang/slur/internal/engine/commands"
	"github.com/slur-lang/slur/internal/reader/parser"
)

// T (engine) is a facade in front of the machinery for evaluating slur code.
type T struct {
	base    *frame.T
	top     *frame.T
	compile bool
	tails   bool
	tracer  tracing.Trace
}

type engine = T

// Option configures an engine.
type Option func(e *engine)

// WithTracer directs the engine's diagnostics to t.
func WithTracer(t tracing.Trace) Option {
	return func(e *engine) {
		e.tracer = t
	}
}

// WithoutCompile evaluates forms as read.
func WithoutCompile() Option {
	return func(e *engine) {
		e.compile = false
	}
}

// WithoutTails disables tail call elimination.
func WithoutTails() Option {
	return func(e *engine) {
		e.tails = false
	}
}

// Base creates a root frame containing the special forms, constants and
// primitive procedures.
func Base() *frame.T {
	f := frame.Root("")

	for name, s := range specials() {
		f.Bind(name, s)
	}

	for name, c := range commands.Constants() {
		f.Bind(name, c)
	}

	for name, s := range commands.Functions() {
		f.Bind(name, NewBuiltin(name, s.Params, s.Rest, s.Body))
	}

	return f
}

// New creates an engine over a new base environment.
func New(opts ...Option) *T {
	e := &engine{
		compile: true,
		tails:   true,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.tracer == nil {
		e.tracer = gologadapter.New()
	}

	e.base = Base()

	if e.tails {
		e.top = e.base.EnableTails()
	} else {
		e.top = frame.New(e.base, "")
	}

	return e
}

// Default creates an engine and loads the standard libraries into it.
func Default(opts ...Option) *T {
	e := New(opts...)

	e.Load(context.Background(), boot.Libraries()...)

	return e
}

// Abort requests that the current evaluation stop.
func (e *engine) Abort(reason string) {
	e.top.Signal().Abort(reason)
}

// Bind binds name to v in the top frame.
func (e *engine) Bind(name string, v cell.I) {
	e.top.Bind(name, v)
}

// Define binds name to a primitive procedure in the top frame.
func (e *engine) Define(name string, params []string, rest string, body func(f *frame.T) cell.I) {
	e.top.Bind(name, NewBuiltin(name, params, rest, body))
}

// Evaluate reads and runs each form in text in turn. It stops at the first
// form that cannot be read or run. It returns the value of the last form.
func (e *engine) Evaluate(ctx context.Context, text string) (cell.I, error) {
	var v cell.I = pair.Null

	for offset := 0; ; {
		c, next, err := parser.Parse(text, offset)
		if err != nil {
			return nil, err
		}

		if c == nil {
			return v, nil
		}

		v, err = e.Run(ctx, c)
		if err != nil {
			return nil, err
		}

		offset = next
	}
}

// Frame returns the top frame.
func (e *engine) Frame() *frame.T {
	return e.top
}

// Load evaluates the forms in each source. A failure is traced and ends
// the evaluation of that source.
func (e *engine) Load(ctx context.Context, sources ...boot.Source) {
	for _, src := range sources {
		if _, err := e.Evaluate(ctx, src.Text); err != nil {
			e.tracer.Errorf("%s: %v", src.Name, err)
		}
	}
}

// Run compiles, unless compilation is disabled, and evaluates c.
// Only abort requests made while c is evaluated, or a cancelled ctx, stop
// the evaluation.
func (e *engine) Run(ctx context.Context, c cell.I) (cell.I, error) {
	signal := e.top.Signal()
	signal.Reset()

	if ctx.Err() != nil {
		signal.Abort("Aborted.")
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		select {
		case <-ctx.Done():
			signal.Abort("Aborted.")
		case <-done:
		}
	}()

	v, err := e.run(c)

	close(done)
	<-stopped

	return v, err
}

func (e *engine) run(c cell.I) (v cell.I, err error) {
	defer failure.Recover(&err)

	if e.compile {
		c = compile(c, e.top)
	}

	return run(c, e.top), nil
}
