// Released under an MIT license. See LICENSE.

// Package reader accumulates slur source text and yields complete forms.
package reader

import (
	"errors"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/reader/parser"
)

// T (reader) holds text that has not yet formed a complete expression.
type T struct {
	name    string
	pending string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Name returns the name of the reader r.
func (r *reader) Name() string {
	return r.name
}

// Pending returns true if r holds part of a form.
func (r *reader) Pending() bool {
	return r.pending != ""
}

// Reset discards any partial form.
func (r *reader) Reset() {
	r.pending = ""
}

// Scan appends text and returns every form that is now complete.
// A form cut short by the end of the text is held until the next call.
// After any other parse error the held text is discarded.
func (r *reader) Scan(text string) ([]cell.I, error) {
	text = r.pending + text
	r.pending = ""

	var forms []cell.I

	for offset := 0; ; {
		c, next, err := parser.Parse(text, offset)
		if err != nil {
			var f *failure.T
			if errors.As(err, &f) && f.Incomplete {
				r.pending = text[offset:]

				return forms, nil
			}

			return forms, err
		}

		if c == nil {
			return forms, nil
		}

		forms = append(forms, c)
		offset = next
	}
}
