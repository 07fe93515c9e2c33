// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/slur-lang/slur/internal/common/failure"
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/boolean"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/real"
	"github.com/slur-lang/slur/internal/common/validate"
)

// The result of an arithmetic operation on two fixnums is a fixnum.
// Otherwise it is a real.
func binaries() map[string]Spec {
	return map[string]Spec{
		"!=": relational(
			func(a, b int64) bool { return a != b },
			func(a, b float64) bool { return a != b },
		),
		"*": arithmetic(
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b },
		),
		"+": arithmetic(
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b },
		),
		"-": arithmetic(
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b },
		),
		"/": arithmetic(
			func(a, b int64) int64 {
				if b == 0 {
					failure.Raise(failure.Eval, "Division by zero.")
				}

				return a / b
			},
			func(a, b float64) float64 { return a / b },
		),
		"<": relational(
			func(a, b int64) bool { return a < b },
			func(a, b float64) bool { return a < b },
		),
		"<=": relational(
			func(a, b int64) bool { return a <= b },
			func(a, b float64) bool { return a <= b },
		),
		"=": relational(
			func(a, b int64) bool { return a == b },
			func(a, b float64) bool { return a == b },
		),
		">": relational(
			func(a, b int64) bool { return a > b },
			func(a, b float64) bool { return a > b },
		),
		">=": relational(
			func(a, b int64) bool { return a >= b },
			func(a, b float64) bool { return a >= b },
		),
		"atan2": binary(func(y, x cell.I) cell.I {
			_, a, _ := validate.Number(y)
			_, b, _ := validate.Number(x)

			return real.New(math.Atan2(a, b))
		}),
		"max": arithmetic(
			func(a, b int64) int64 {
				if a > b {
					return a
				}

				return b
			},
			math.Max,
		),
		"min": arithmetic(
			func(a, b int64) int64 {
				if a < b {
					return a
				}

				return b
			},
			math.Min,
		),
		"pow": arithmetic(
			func(a, b int64) int64 {
				return int64(math.Pow(float64(a), float64(b)))
			},
			math.Pow,
		),
	}
}

func arithmetic(fix func(a, b int64) int64, flt func(a, b float64) float64) Spec {
	return binary(func(a, b cell.I) cell.I {
		ai, af, aFix := validate.Number(a)
		bi, bf, bFix := validate.Number(b)

		if aFix && bFix {
			return fixnum.New(fix(ai, bi))
		}

		return real.New(flt(af, bf))
	})
}

func relational(fix func(a, b int64) bool, flt func(a, b float64) bool) Spec {
	return binary(func(a, b cell.I) cell.I {
		ai, af, aFix := validate.Number(a)
		bi, bf, bFix := validate.Number(b)

		if aFix && bFix {
			return boolean.Bool(fix(ai, bi))
		}

		return boolean.Bool(flt(af, bf))
	})
}
