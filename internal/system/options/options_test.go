// Released under an MIT license. See LICENSE.

package options_test

import (
	"os"
	"strings"
	"testing"

	"github.com/mattn/go-isatty"

	"github.com/slur-lang/slur/internal/system/options"
)

func TestScript(t *testing.T) {
	options.Parse([]string{"-nt", "hello.slur", "a", "-b"})

	if options.Script() != "hello.slur" {
		t.Errorf("unexpected script %q", options.Script())
	}

	if got := strings.Join(options.Args(), " "); got != "a -b" {
		t.Errorf("unexpected arguments %q", got)
	}

	if options.Interactive() {
		t.Errorf("a script should not be interactive")
	}

	if options.NoCompile() || !options.NoLibraries() || !options.NoTails() {
		t.Errorf("unexpected flags")
	}
}

func TestExpression(t *testing.T) {
	options.Parse([]string{"-c", "-e", "(+ 1 2)"})

	if options.Expression() != "(+ 1 2)" {
		t.Errorf("unexpected expression %q", options.Expression())
	}

	if options.Script() != "" || len(options.Args()) != 0 {
		t.Errorf("unexpected script or arguments")
	}

	if !options.NoCompile() || options.NoLibraries() || options.NoTails() {
		t.Errorf("unexpected flags")
	}

}

func TestInteractive(t *testing.T) {
	terminal := isatty.IsTerminal(os.Stdin.Fd())

	options.Parse([]string{})

	if options.Interactive() != terminal {
		t.Errorf("interactive mode should follow stdin")
	}

	options.Parse([]string{"-i"})

	if options.Interactive() == terminal {
		t.Errorf("-i should invert interactive mode")
	}
}
