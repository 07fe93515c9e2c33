package frame_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/struct/frame"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
)

func lookup(f *frame.T, name string) (err error) {
	defer failure.Recover(&err)

	f.Lookup(name)

	return nil
}

func TestBindAndLookup(t *testing.T) {
	root := frame.Root("base")
	root.Bind("x", fixnum.New(1))

	child := frame.New(root, "f")
	child.Bind("y", fixnum.New(2))

	if !child.Lookup("x").Equal(fixnum.New(1)) {
		t.Fatal("expected x to be found in the parent")
	}

	if root.TryLookup("y") != nil {
		t.Fatal("parent should not see the child's bindings")
	}
}

func TestShadowBlocksLookup(t *testing.T) {
	root := frame.Root("base")
	root.Bind("x", fixnum.New(1))

	child := frame.New(root, "")
	child.Shadow("x")

	if child.TryLookup("x") != nil {
		t.Fatal("shadowed name should not be found")
	}

	err := lookup(child, "x")
	if err == nil || !strings.Contains(err.Error(), "Symbol not found: x") {
		t.Fatalf("expected symbol not found, got %v", err)
	}

	if k, _ := failure.KindOf(err); k != failure.Eval {
		t.Fatalf("expected an eval error, got %v", k)
	}
}

func TestBindNil(t *testing.T) {
	var err error

	func() {
		defer failure.Recover(&err)

		frame.Root("").Bind("x", nil)
	}()

	if k, ok := failure.KindOf(err); !ok || k != failure.Malformed {
		t.Fatalf("expected a malformed argument error, got %v", err)
	}
}

func TestSet(t *testing.T) {
	root := frame.Root("base")
	mid := frame.New(root, "")
	mid.Bind("x", fixnum.New(1))

	leaf := frame.New(mid, "")
	leaf.Set("x", fixnum.New(2))
	leaf.Set("y", fixnum.New(3))

	if !mid.Lookup("x").Equal(fixnum.New(2)) {
		t.Fatal("set should update the nearest binding")
	}

	if !root.Lookup("y").Equal(fixnum.New(3)) {
		t.Fatal("set should bind unknown names in the root")
	}
}

func TestContext(t *testing.T) {
	f := frame.New(frame.New(frame.New(frame.Root("base"), "outer"), ""), "inner")

	got := strings.Join(f.Context(), ",")
	if got != "base,outer,inner" {
		t.Fatalf("unexpected context %q", got)
	}
}

func TestTailsAreInherited(t *testing.T) {
	root := frame.Root("")
	if root.Tails() {
		t.Fatal("tails should be disabled by default")
	}

	top := root.EnableTails()
	if !frame.New(top, "").Tails() {
		t.Fatal("tails should be inherited")
	}

	other := frame.New(root, "")
	other.Inherit(top)

	if !other.Tails() {
		t.Fatal("inherit should copy the tail call mode")
	}
}

func TestAbort(t *testing.T) {
	root := frame.Root("")
	child := frame.New(root, "f")

	child.Signal().Abort("stop")

	var err error

	func() {
		defer failure.Recover(&err)

		root.Check()
	}()

	if !errors.Is(err, failure.ErrAborted) {
		t.Fatalf("expected an abort, got %v", err)
	}

	root.Signal().Reset()

	if _, ok := child.Signal().Aborted(); ok {
		t.Fatal("reset should clear the request")
	}

	if frame.Root("").Signal() == root.Signal() {
		t.Fatal("root frames should not share a signal")
	}
}
