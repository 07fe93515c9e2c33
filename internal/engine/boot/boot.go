// Released under an MIT license. See LICENSE.

// Package boot provides the library sources loaded into slur's default
// environment.
package boot

import _ "embed" // Blank import required by embed.

// Source is a named library.
type Source struct {
	Name string
	Text string
}

//go:embed consCombos.slur
var consCombos string //nolint:gochecknoglobals

//go:embed list.slur
var lists string //nolint:gochecknoglobals

//go:embed map.slur
var maps string //nolint:gochecknoglobals

//go:embed reduce.slur
var reduce string //nolint:gochecknoglobals

//go:embed reverse.slur
var reverse string //nolint:gochecknoglobals

// Libraries returns the library sources in the order they must be loaded.
func Libraries() []Source {
	return []Source{
		{"consCombos.slur", consCombos},
		{"list.slur", lists},
		{"map.slur", maps},
		{"reduce.slur", reduce},
		{"reverse.slur", reverse},
	}
}
