// Released under an MIT license. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/reader"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Run(ctx context.Context, c cell.I) (cell.I, error)
}

// Session reads forms a line at a time. The value of each form is
// printed to out and failures are printed to errs.
type Session struct {
	e    Evaluator
	r    *reader.T
	out  io.Writer
	errs io.Writer

	failed bool
}

// New creates a session that sends forms to e.
func New(e Evaluator, out, errs io.Writer) *Session {
	return &Session{e: e, r: reader.New("stdin"), out: out, errs: errs}
}

// Failed reports whether any form failed to read or evaluate.
func (s *Session) Failed() bool {
	return s.failed
}

// Feed reads lines from r until it is exhausted.
func (s *Session) Feed(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.Line(ctx, scanner.Text())
	}

	if s.r.Pending() {
		s.report(fmt.Errorf("%s: unexpected end of input", s.r.Name()))
		s.r.Reset()
	}

	return scanner.Err()
}

// Line reads text and evaluates every form it completes.
func (s *Session) Line(ctx context.Context, text string) {
	forms, err := s.r.Scan(text + "\n")

	for _, c := range forms {
		v, err := s.e.Run(ctx, c)
		if err != nil {
			s.report(err)

			continue
		}

		fmt.Fprintln(s.out, literal.String(v))
	}

	if err != nil {
		s.report(err)
	}
}

// Prompt returns the prompt for the next line.
func (s *Session) Prompt() string {
	if s.r.Pending() {
		return "  "
	}

	return ": "
}

// Reset discards any partial form.
func (s *Session) Reset() {
	s.r.Reset()
}

func (s *Session) report(err error) {
	s.failed = true

	fmt.Fprintln(s.errs, err)
}
