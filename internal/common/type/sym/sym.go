// Released under an MIT license. See LICENSE.

// Package sym provides slur's symbol cell type.
package sym

import (
	"sync"

	"github.com/slur-lang/slur/internal/common"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/tag"
)

const (
	name  = "symbol"
	short = 8
)

// T (sym) wraps Go's string type. Short and common strings are interned.
// Two syms are the same symbol if they have the same name.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Tag returns the tag for a sym.
func (s *sym) Tag() tag.T {
	return tag.Symbol
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
