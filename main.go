// Released under an MIT license. See LICENSE.

/*
Slur is a small Lisp. Programs are compiled, against the environment they
will run in, and then evaluated with tail calls eliminated:

    slur -e "(map (lambda (x) (* x x)) '(1 2 3))"
    slur script.slur first second
    slur

With no script or expression, and a terminal on stdin, slur starts an
interactive session.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/str"
	"github.com/slur-lang/slur/internal/engine"
	"github.com/slur-lang/slur/internal/system/interrupt"
	"github.com/slur-lang/slur/internal/system/options"
	"github.com/slur-lang/slur/internal/ui"
)

func main() {
	options.Parse(os.Args[1:])

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func configure(errs io.Writer) []engine.Option {
	tracer := gologadapter.New()
	tracer.SetOutput(errs)

	opts := []engine.Option{engine.WithTracer(tracer)}

	if options.NoCompile() {
		opts = append(opts, engine.WithoutCompile())
	}

	if options.NoTails() {
		opts = append(opts, engine.WithoutTails())
	}

	return opts
}

func arguments(args []string) cell.I {
	cells := make([]cell.I, len(args))
	for i, a := range args {
		cells[i] = str.New(a)
	}

	return list.New(cells...)
}

// The exit status is 1 if anything failed.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	opts := configure(stderr)

	var e *engine.T
	if options.NoLibraries() {
		e = engine.New(opts...)
	} else {
		e = engine.Default(opts...)
	}

	e.Bind("ARGS", arguments(options.Args()))

	stop := interrupt.Notify(e.Abort)
	defer stop()

	ctx := context.Background()

	switch {
	case options.Expression() != "":
		return evaluate(ctx, e, options.Expression(), stdout, stderr)
	case options.Script() != "":
		text, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		return evaluate(ctx, e, string(text), io.Discard, stderr)
	case options.Interactive():
		if err := ui.Run(e); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		return 0
	}

	s := ui.New(e, stdout, stderr)
	if err := s.Feed(ctx, stdin); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if s.Failed() {
		return 1
	}

	return 0
}

func evaluate(ctx context.Context, e *engine.T, text string, stdout, stderr io.Writer) int {
	v, err := e.Evaluate(ctx, text)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	fmt.Fprintln(stdout, literal.String(v))

	return 0
}
