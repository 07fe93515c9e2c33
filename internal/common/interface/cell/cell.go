// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all slur values.
package cell

import "github.com/slur-lang/slur/internal/common/tag"

// I (cell) is the basic unit of storage in slur.
type I interface {
	Equal(c I) bool
	Name() string
	Tag() tag.T
}
