// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slur-lang/slur/internal/system/options"
)

func TestExpression(t *testing.T) {
	var stdout, stderr bytes.Buffer

	options.Parse([]string{"-e", "(reverse (iota 3))"})

	if status := run(strings.NewReader(""), &stdout, &stderr); status != 0 {
		t.Fatalf("unexpected status %d: %s", status, stderr.String())
	}

	if stdout.String() != "(2 1 0)\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestNoLibraries(t *testing.T) {
	var stdout, stderr bytes.Buffer

	options.Parse([]string{"-n", "-e", "(reverse '(1 2))"})

	if status := run(strings.NewReader(""), &stdout, &stderr); status != 1 {
		t.Fatalf("expected a failure, got %d", status)
	}

	if !strings.Contains(stderr.String(), "Symbol not found: reverse") {
		t.Errorf("unexpected error %q", stderr.String())
	}
}

func TestScriptArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	path := filepath.Join(t.TempDir(), "args.slur")

	err := os.WriteFile(path, []byte(`(if (equal? ARGS '("a" "b")) 'ok (car ()))`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	options.Parse([]string{path, "a", "b"})

	if status := run(strings.NewReader(""), &stdout, &stderr); status != 0 {
		t.Fatalf("unexpected status %d: %s", status, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Errorf("a script should not print its value, got %q", stdout.String())
	}
}

func TestStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	options.Parse([]string{"-s"})

	if options.Interactive() {
		t.Skip("stdin is a terminal")
	}

	status := run(strings.NewReader("ARGS\n(+ 1 2.5)\n(car ())\n"), &stdout, &stderr)
	if status != 1 {
		t.Errorf("expected a failure status, got %d", status)
	}

	if stdout.String() != "()\n3.5\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}

	if !strings.Contains(stderr.String(), "Cons expected.") {
		t.Errorf("unexpected error %q", stderr.String())
	}
}
