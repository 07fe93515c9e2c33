// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/slur-lang/slur/internal/common/interface/cell"
	"github.com/slur-lang/slur/internal/common/tag"
	"github.com/slur-lang/slur/internal/common/type/boolean"
)

func predicates() map[string]Spec {
	m := map[string]Spec{}

	for name, t := range map[string]tag.T{
		"isCons?":   tag.Cons,
		"isFixNum?": tag.FixNum,
		"isFn?":     tag.Function,
		"isMacro?":  tag.SpecialForm,
		"isNull?":   tag.Null,
		"isReal?":   tag.Real,
		"isString?": tag.String,
		"isSym?":    tag.Symbol,
	} {
		t := t

		m[name] = unary(func(c cell.I) cell.I {
			return boolean.Bool(c.Tag() == t)
		})
	}

	return m
}
