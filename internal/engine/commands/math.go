// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/type/fixnum"
	"github.com/slur-lang/slur/internal/common/type/real"
	"github.com/slur-lang/slur/internal/common/validate"
)

func unaries() map[string]Spec {
	m := map[string]Spec{
		"abs": unary(func(c cell.I) cell.I {
			i, r, isFix := validate.Number(c)
			if !isFix {
				return real.New(math.Abs(r))
			}

			if i < 0 {
				i = -i
			}

			return fixnum.New(i)
		}),
	}

	for name, fn := range map[string]func(float64) float64{
		"acos": math.Acos,
		"asin": math.Asin,
		"atan": math.Atan,
		"cos":  math.Cos,
		"sin":  math.Sin,
		"tan":  math.Tan,
	} {
		m[name] = toReal(fn)
	}

	for name, fn := range map[string]func(float64) float64{
		"ceil":  math.Ceil,
		"floor": math.Floor,
		"round": func(x float64) float64 { return math.Floor(x + 0.5) },
		"trunc": math.Trunc,
	} {
		m[name] = toFixNum(fn)
	}

	return m
}

func toFixNum(fn func(float64) float64) Spec {
	return unary(func(c cell.I) cell.I {
		if _, r, isFix := validate.Number(c); !isFix {
			return fixnum.Truncate(fn(r))
		}

		return c
	})
}

func toReal(fn func(float64) float64) Spec {
	return unary(func(c cell.I) cell.I {
		_, r, _ := validate.Number(c)

		return real.New(fn(r))
	})
}
