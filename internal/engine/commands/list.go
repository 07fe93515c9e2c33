// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/boolean"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/str"
)

func car(c cell.I) cell.I {
	return pair.Car(c)
}

func cdr(c cell.I) cell.I {
	return pair.Cdr(c)
}

func cons(a, b cell.I) cell.I {
	return pair.Cons(a, b)
}

func equal(a, b cell.I) cell.I {
	return boolean.Bool(a.Equal(b))
}

func isList(c cell.I) cell.I {
	return boolean.Bool(list.Is(c))
}

// The pattern is a shell glob.
func match(pattern, s cell.I) cell.I {
	ok, err := adapted.Match(str.To(pattern).String(), str.To(s).String())
	if err != nil {
		panic(failure.Wrap(failure.Eval, err))
	}

	return boolean.Bool(ok)
}

func not(c cell.I) cell.I {
	return boolean.Bool(!boolean.Truthy(c))
}
