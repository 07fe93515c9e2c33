// Released under an MIT license. See LICENSE.

package list_test

import (
	"testing"

	"github.com/slur-lang/slur/internal/common/interface/literal"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/sym"
)

func TestList(t *testing.T) {
	l := list.New(fixnum.New(1), sym.New("a"), pair.Null)

	if s := literal.String(l); s != "(1 a ())" {
		t.Errorf("unexpected literal %s", s)
	}

	if !list.Is(l) || !list.Is(pair.Null) {
		t.Error("proper lists should be lists")
	}

	d := list.Dotted(fixnum.New(3), fixnum.New(1), fixnum.New(2))
	if s := literal.String(d); s != "(1 2 . 3)" {
		t.Errorf("unexpected literal %s", s)
	}

	if list.Is(d) {
		t.Error("dotted lists are not lists")
	}

	elements, tail := list.Split(d)
	if len(elements) != 2 || !tail.Equal(fixnum.New(3)) {
		t.Errorf("unexpected split %v %v", elements, tail)
	}

	if !l.Equal(list.New(fixnum.New(1), sym.New("a"), pair.Null)) {
		t.Error("lists with equal elements should be equal")
	}
}
