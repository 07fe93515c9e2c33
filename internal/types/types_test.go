// Released under an MIT license. See LICENSE.

package types_test

import (
	"testing"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/list"
	"github.com/slur-lang/slur/internal/common/type/pair"
	"github.com/slur-lang/slur/internal/common/type/str"
	"github.com/slur-lang/slur/internal/types"
)

func malformed(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()

		e, ok := r.(*failure.T)
		if !ok || e.Kind != failure.Malformed {
			t.Fatalf("expected a malformed argument panic, got %v", r)
		}
	}()

	f()
}

func mapping(t *testing.T, m *types.Match, p *types.Parameter) types.T {
	t.Helper()

	for _, mapping := range m.Mappings() {
		if mapping.Parameter == p {
			return mapping.Type
		}
	}

	t.Fatalf("no mapping for %s in %s", p, m)

	return nil
}

func TestResult(t *testing.T) {
	if !types.Result(true).Matches() || len(types.Result(true).Mappings()) != 0 {
		t.Fatal("expected an empty successful match")
	}

	if types.Result(false).Matches() || len(types.Result(false).Mappings()) != 0 {
		t.Fatal("expected an empty failed match")
	}
}

func TestConstruct(t *testing.T) {
	p := types.NewParameter()

	m := types.NewMatch(p, types.FixNum)
	if !m.Matches() || len(m.Mappings()) != 1 {
		t.Fatalf("unexpected match %s", m)
	}

	if got := m.Mappings()[0]; got.Parameter != p || !got.Type.Equal(types.FixNum) {
		t.Fatalf("unexpected mapping %s", got)
	}

	q := types.NewParameter()
	m.Map(q, types.String)

	if !m.Matches() || len(m.Mappings()) != 2 || m.Mappings()[1].Parameter != q {
		t.Fatalf("unexpected match %s", m)
	}
}

func TestCombinePassFail(t *testing.T) {
	pass := types.Result(true)
	fail := types.Result(false)

	if !pass.Combine(pass).Matches() {
		t.Fatal("pass and pass should pass")
	}

	if pass.Combine(fail).Matches() || fail.Combine(pass).Matches() || fail.Combine(fail).Matches() {
		t.Fatal("any failure should fail")
	}

	p := types.NewParameter()
	m := types.NewMatch(p, types.FixNum)

	if m.Combine(fail).Matches() || fail.Combine(m).Matches() {
		t.Fatal("any failure should fail")
	}

	for _, c := range []*types.Match{m.Combine(pass), pass.Combine(m)} {
		if !c.Matches() || len(c.Mappings()) != 1 || !c.Mappings()[0].Equal(m.Mappings()[0]) {
			t.Fatalf("unexpected combination %s", c)
		}
	}
}

func TestCombine(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()

	c := types.NewMatch(p, types.FixNum).Combine(types.NewMatch(q, types.Real))
	if !c.Matches() || len(c.Mappings()) != 2 {
		t.Fatalf("unexpected combination %s", c)
	}

	if !mapping(t, c, p).Equal(types.FixNum) || !mapping(t, c, q).Equal(types.Real) {
		t.Fatalf("unexpected combination %s", c)
	}

	if types.NewMatch(p, types.FixNum).Combine(types.NewMatch(p, types.Real)).Matches() {
		t.Fatal("incompatible mappings should not combine")
	}
}

func TestCombineNested(t *testing.T) {
	for i := 0; i < 2; i++ {
		p := types.NewParameter()
		q := types.NewParameter()

		var a, b types.T = types.NewList(q), types.NewList(types.String)
		if i != 0 {
			a, b = b, a
		}

		c := types.NewMatch(p, a).Combine(types.NewMatch(p, b))
		if !c.Matches() || len(c.Mappings()) != 2 {
			t.Fatalf("unexpected combination %s", c)
		}

		if !mapping(t, c, p).Equal(types.NewList(types.String)) {
			t.Fatalf("unexpected combination %s", c)
		}

		if !mapping(t, c, q).Equal(types.String) {
			t.Fatalf("unexpected combination %s", c)
		}
	}
}

func TestMatchCons(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()

	m := types.NewCons(p, types.Real).Match(types.NewCons(types.String, types.Real))
	if !m.Matches() || len(m.Mappings()) != 1 || !mapping(t, m, p).Equal(types.String) {
		t.Fatalf("unexpected match %s", m)
	}

	m = types.NewCons(p, types.Real).Match(types.NewCons(q, types.Real))
	if !m.Matches() || len(m.Mappings()) != 1 || mapping(t, m, p) != types.T(q) {
		t.Fatalf("unexpected match %s", m)
	}

	if types.NewCons(p, types.Real).Match(types.NewCons(q, types.Symbol)).Matches() {
		t.Fatal("Real should not match Symbol")
	}

	if types.NewCons(p, types.Real).Match(types.NewList(types.Real)).Matches() {
		t.Fatal("a cons type should not match a list type")
	}

	if types.FixNum.Match(p).Matches() {
		t.Fatal("a base type should not match a parameter")
	}
}

func TestOccursCheck(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()

	if p.Match(types.NewList(p)).Matches() {
		t.Fatal("p should not match a list of p")
	}

	// p -> q first, then q -> List[p] would make p a list of itself.
	m := types.NewCons(p, q).Match(types.NewCons(q, types.NewList(p)))
	if m.Matches() {
		t.Fatalf("expected a cyclic match to fail, got %s", m)
	}

	if !p.Match(p).Matches() || len(p.Match(p).Mappings()) != 0 {
		t.Fatal("a parameter should trivially match itself")
	}
}

func TestBackSubstitution(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()

	m := types.NewCons(p, q).Match(types.NewCons(types.NewList(q), types.FixNum))
	if !m.Matches() {
		t.Fatalf("expected a match, got %s", m)
	}

	if !mapping(t, m, p).Equal(types.NewList(types.FixNum)) {
		t.Fatalf("expected p to be reduced, got %s", m)
	}

	for _, a := range m.Mappings() {
		for _, b := range m.Mappings() {
			if a.Type.Involves(b.Parameter) {
				t.Fatalf("mappings are not reduced: %s", m)
			}
		}
	}
}

func TestFunction(t *testing.T) {
	p := types.NewParameter()
	f := types.NewFunction(p, p, types.NewList(p))

	m := f.Match(types.NewFunction(types.FixNum, types.FixNum, types.NewList(types.FixNum)))
	if !m.Matches() || !mapping(t, m, p).Equal(types.FixNum) {
		t.Fatalf("unexpected match %s", m)
	}

	if f.Match(types.NewFunction(types.FixNum, types.FixNum, types.NewList(types.Real))).Matches() {
		t.Fatal("conflicting arguments should not match")
	}

	if f.Match(types.NewFunction(types.FixNum, types.FixNum)).Matches() {
		t.Fatal("different arities should not match")
	}

	if s := f.Substitute(m.Mappings()); !s.Equal(types.NewFunction(types.FixNum, types.FixNum, types.NewList(types.FixNum))) {
		t.Fatalf("unexpected substitution %s", s)
	}
}

func TestMaybe(t *testing.T) {
	maybe := types.NewMaybe(types.String)

	if !maybe.Match(types.Null).Matches() ||
		!maybe.Match(types.String).Matches() ||
		!maybe.Match(types.NewMaybe(types.String)).Matches() {
		t.Fatal("Maybe[String] should accept Null, String and Maybe[String]")
	}

	if maybe.Match(types.FixNum).Matches() {
		t.Fatal("Maybe[String] should not accept FixNum")
	}

	if types.NewMaybe(maybe) != maybe {
		t.Fatal("nested maybe should collapse")
	}

	p := types.NewParameter()
	maybeP := types.NewMaybe(p)

	m := maybeP.Match(maybe)
	if !m.Matches() || !mapping(t, m, p).Equal(types.String) {
		t.Fatalf("unexpected match %s", m)
	}

	target := types.NewMaybe(types.Symbol)
	if s := maybeP.Substitute(maybeP.Match(target).Mappings()); !s.Equal(target) {
		t.Fatalf("unexpected substitution %s", s)
	}

	if maybe.Equal(types.String) || !maybeP.Equal(types.NewMaybe(p)) {
		t.Fatal("unexpected maybe equality")
	}

	if !maybeP.IsParameterized() || !maybeP.Involves(p) || maybe.IsParameterized() {
		t.Fatal("unexpected maybe parameters")
	}

	if types.NewMaybe(types.Symbol).String() != "Maybe[Symbol]" {
		t.Fatalf("unexpected string %s", types.NewMaybe(types.Symbol))
	}
}

func TestMalformed(t *testing.T) {
	malformed(t, func() { types.NewMaybe(types.Null) })
	malformed(t, func() { types.NewMaybe(nil) })
	malformed(t, func() { types.NewCons(types.FixNum, nil) })
	malformed(t, func() { types.NewList(nil) })
	malformed(t, func() { types.NewFunction(nil) })
}

func TestSubstituteUnchanged(t *testing.T) {
	p := types.NewParameter()
	c := types.NewCons(types.FixNum, types.NewList(types.String))

	if c.Substitute([]types.Mapping{{Parameter: p, Type: types.Real}}) != types.T(c) {
		t.Fatal("substitution without changes should return the receiver")
	}
}

func TestUniqueParameters(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()
	f := types.NewFunction(types.NewList(p), p, q)

	a := types.UniqueParameters(f)
	b := types.UniqueParameters(f)

	if !a.Match(b).Matches() || !b.Match(a).Matches() {
		t.Fatal("renamed copies should match each other")
	}

	pa := types.FindParameters(a)
	pb := types.FindParameters(b)

	if len(pa) != 2 || len(pb) != 2 {
		t.Fatalf("expected two parameters, got %d and %d", len(pa), len(pb))
	}

	for _, x := range pa {
		if x == p || x == q {
			t.Fatal("renamed copy shares a parameter with its source")
		}

		for _, y := range pb {
			if x == y {
				t.Fatal("renamed copies share a parameter")
			}
		}
	}

	if types.UniqueParameters(types.FixNum) != types.T(types.FixNum) {
		t.Fatal("a type without parameters should not be copied")
	}
}

func TestEqualModuloParameters(t *testing.T) {
	p := types.NewParameter()
	q := types.NewParameter()
	r := types.NewParameter()

	fn := func(ret types.T, args ...types.T) types.T { return types.NewFunction(ret, args...) }
	sig := fn(types.NewList(types.String), types.NewCons(types.FixNum, types.FixNum), types.Bool)

	for i, c := range []struct {
		a, b  types.T
		equal bool
	}{
		{types.String, types.String, true},
		{types.FixNum, types.Real, false},
		{types.NewMaybe(types.String), types.NewMaybe(types.String), true},
		{types.NewMaybe(types.FixNum), types.FixNum, false},
		{types.NewCons(types.Real, types.Null), types.NewMaybe(types.Real), false},
		{types.NewList(types.FixNum), types.NewCons(types.FixNum, types.Null), false},
		{sig, fn(types.NewList(types.String), types.NewCons(types.FixNum, types.FixNum), types.Bool), true},
		{sig, fn(types.NewList(types.Symbol), types.NewCons(types.FixNum, types.FixNum), types.Bool), false},
		{sig, fn(types.NewList(types.String), types.NewCons(types.FixNum, types.FixNum)), false},
		{p, p, true},
		{p, q, true},
		{p, types.True, false},
		{types.NewList(p), types.NewList(q), true},
		{types.NewCons(p, p), types.NewCons(q, q), true},
		{types.NewCons(p, p), types.NewCons(q, r), false},
		{fn(p, p), fn(q, q), true},
		{fn(p, p, q), fn(r, r, q), true},
		// Parameters may only be renamed, not bound to concrete types.
		{types.NewCons(p, q), types.NewCons(types.FixNum, q), false},
	} {
		if got := types.EqualModuloParameters(c.a, c.b); got != c.equal {
			t.Fatalf("%d: %s and %s: expected %v", i, c.a, c.b, c.equal)
		}
	}
}

func TestOf(t *testing.T) {
	v := pair.Cons(fixnum.New(1), list.New(str.New("a")))

	got, ok := types.Of(v)
	if !ok {
		t.Fatal("expected a type")
	}

	want := types.NewCons(types.FixNum, types.NewCons(types.String, types.Null))
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
