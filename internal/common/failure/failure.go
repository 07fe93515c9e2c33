// Released under an MIT license. See LICENSE.

// Package failure provides slur's diagnostics.
//
// Inside the reader, the compiler and the evaluator a failure is raised by
// panicking with a *T. Exported entry points recover it with Recover and
// return it as an error.
package failure

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
)

// Kind classifies a failure.
type Kind int

const (
	Parse Kind = iota
	Compile
	Eval
	Invocation
	Abort
	Malformed
)

// ErrAborted is matched, using errors.Is, by every failure of kind Abort.
var ErrAborted = errors.New("aborted") //nolint:gochecknoglobals

// String returns the printable name for the kind k.
func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case Compile:
		return "compile error"
	case Eval:
		return "eval error"
	case Invocation:
		return "invocation error"
	case Abort:
		return "aborted"
	case Malformed:
		return "malformed argument"
	}

	return "error"
}

// T (failure) is a categorized diagnostic.
type T struct {
	Kind    Kind
	Message string

	// Context holds the labels of the enclosing scopes, innermost last.
	Context []string

	// Offset is the input offset for parse failures. Incomplete is set when
	// the input ended before the form did.
	Offset     int
	Incomplete bool

	// Function and Args identify the call for invocation failures.
	Function string
	Args     cell.I

	cause error
}

type failure = T

// New creates a failure of kind k.
func New(k Kind, format string, a ...interface{}) *failure {
	return &failure{Kind: k, Message: fmt.Sprintf(format, a...)}
}

// Wrap creates a failure of kind k with err as its cause.
func Wrap(k Kind, err error) *failure {
	return &failure{Kind: k, Message: err.Error(), cause: err}
}

// Raise panics with a new failure of kind k.
func Raise(k Kind, format string, a ...interface{}) {
	panic(New(k, format, a...))
}

// At panics with a parse failure at offset.
func At(offset int, incomplete bool, format string, a ...interface{}) {
	f := New(Parse, format, a...)
	f.Offset = offset
	f.Incomplete = incomplete

	panic(f)
}

// Error returns the text of the failure f.
func (f *failure) Error() string {
	var b strings.Builder

	b.WriteString(f.Kind.String())

	if f.Kind == Parse {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(f.Offset))
	}

	if f.Message != "" {
		b.WriteString(": ")
		b.WriteString(f.Message)
	}

	if f.Function != "" {
		b.WriteString(" calling ")
		b.WriteString(f.Function)
	}

	if f.Args != nil {
		b.WriteString(" with ")
		b.WriteString(literal.String(f.Args))
	}

	if len(f.Context) > 0 {
		b.WriteString(" - in functions ")
		b.WriteString(strings.Join(f.Context, ", "))
	}

	return b.String()
}

// Is reports whether target is ErrAborted and f is an abort.
func (f *failure) Is(target error) bool {
	return target == ErrAborted && f.Kind == Abort
}

// Unwrap returns the underlying cause, if any.
func (f *failure) Unwrap() error {
	return f.cause
}

// Within records ctx as the context of f unless it already has one.
func (f *failure) Within(ctx []string) *failure {
	if f.Context == nil && len(ctx) > 0 {
		f.Context = ctx
	}

	return f
}

// KindOf returns the kind of err, if err is, or wraps, a failure.
func KindOf(err error) (Kind, bool) {
	var f *failure
	if errors.As(err, &f) {
		return f.Kind, true
	}

	return 0, false
}

// Recover converts a panic into an error stored in err.
// It must be called directly by defer.
// Runtime errors are programming errors and are re-raised. A Go stack
// overflow is fatal and never reaches Recover.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = From(r)
	if *err == nil {
		panic(r)
	}
}

// From converts a recovered value into a failure.
// It returns nil for runtime errors.
func From(r interface{}) error {
	switch r := r.(type) {
	case *failure:
		return r
	case runtime.Error:
		return nil
	case error:
		return Wrap(Eval, r)
	case string:
		return New(Eval, "%s", r)
	case fmt.Stringer:
		return New(Eval, "%s", r.String())
	}

	return New(Eval, "unexpected error: %v", r)
}
