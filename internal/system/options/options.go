// Released under an MIT license. See LICENSE.

// Package options parses slur's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "slur 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	expression  string
	interactive bool
	noCompile   bool
	noLibraries bool
	noTails     bool
	script      string
	usage       = `slur

Usage:
  slur [-cnt] SCRIPT [ARGUMENTS...]
  slur [-cnt] -e EXPRESSION
  slur [-cint] [-s]
  slur -h
  slur -v

Arguments:
  ARGUMENTS  Bound, as a list of strings, to ARGS.
  SCRIPT     Path to slur script.

Options:
  -e, --expression=EXPRESSION  Evaluate the specified expression.
  -c, --no-compile             Evaluate forms without compiling them.
  -n, --no-libraries           Do not load the standard libraries.
  -t, --no-tails               Disable tail call elimination.
  -i, --interactive            Invert interactive mode.
  -s, --stdin                  Read forms from stdin.
  -h, --help                   Display this help.
  -v, --version                Print slur version.

If slur's stdin is a TTY, and slur was invoked with no script or expression,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Args returns the arguments that follow the script.
func Args() []string {
	return args
}

// Expression returns the expression passed with -e.
func Expression() string {
	return expression
}

// Interactive is true if slur should read forms from a line editor.
func Interactive() bool {
	return interactive
}

func NoCompile() bool {
	return noCompile
}

func NoLibraries() bool {
	return noLibraries
}

func NoTails() bool {
	return noTails
}

// Parse parses argv, which excludes the program name. On a usage error,
// or when help or the version is requested, it prints and exits.
func Parse(argv []string) {
	p := &docopt.Parser{
		HelpHandler:  docopt.PrintHelpAndExit,
		OptionsFirst: true,
	}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--expression")
	script, _ = opts.String("SCRIPT")

	interactive = false
	if script == "" && expression == "" {
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	noCompile, _ = opts.Bool("--no-compile")
	noLibraries, _ = opts.Bool("--no-libraries")
	noTails, _ = opts.Bool("--no-tails")

	args, _ = opts["ARGUMENTS"].([]string)
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}
