// Released under an MIT license. See LICENSE.

package ui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/slur-lang/slur/internal/engine"
	"github.com/slur-lang/slur/internal/ui"
)

func TestSession(t *testing.T) {
	var out, errs bytes.Buffer

	s := ui.New(engine.Default(), &out, &errs)
	ctx := context.Background()

	if s.Prompt() != ": " {
		t.Errorf("unexpected prompt %q", s.Prompt())
	}

	s.Line(ctx, "(define (square x)")

	if s.Prompt() != "  " {
		t.Errorf("expected a continuation prompt, got %q", s.Prompt())
	}

	s.Line(ctx, "  (* x x)) (square 4)")
	s.Line(ctx, "(map square '(1 2 3))")

	if got := out.String(); got != "square\n16\n(1 4 9)\n" {
		t.Errorf("unexpected output %q", got)
	}

	if s.Failed() {
		t.Errorf("unexpected failure: %s", errs.String())
	}

	s.Line(ctx, "(car ())")

	if !s.Failed() || !strings.Contains(errs.String(), "Cons expected.") {
		t.Errorf("expected a failure, got %q", errs.String())
	}
}

func TestFeed(t *testing.T) {
	var out, errs bytes.Buffer

	s := ui.New(engine.Default(), &out, &errs)

	err := s.Feed(context.Background(), strings.NewReader("(+ 1\n2)\n(reverse '(a b))\n(car"))
	if err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "3\n(b a)\n" {
		t.Errorf("unexpected output %q", got)
	}

	if !strings.Contains(errs.String(), "unexpected end of input") {
		t.Errorf("expected an error for the unfinished form, got %q", errs.String())
	}
}
