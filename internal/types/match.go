// Released under an MIT license. See LICENSE.

package types

// Mapping binds a parameter to a type.
type Mapping struct {
	Parameter *Parameter
	Type      T
}

// Equal returns true if m and o bind the same parameter to equal types.
func (m Mapping) Equal(o Mapping) bool {
	return m.Parameter == o.Parameter && m.Type.Equal(o.Type)
}

func (m Mapping) String() string {
	return m.Parameter.String() + " -> " + m.Type.String()
}

// Match is the result of matching two types.
//
// The mappings of a successful match bind each parameter at most once and
// no mapped type involves a parameter that is itself mapped.
type Match struct {
	matched  bool
	mappings []Mapping
}

// Result returns a match, with no mappings, that succeeded if matched.
func Result(matched bool) *Match {
	return &Match{matched: matched}
}

// NewMatch returns a match binding p to t.
func NewMatch(p *Parameter, t T) *Match {
	m := Result(true)
	m.Map(p, t)

	return m
}

// Combine returns the union of the matches m and o.
// It fails if either fails or if their mappings conflict.
func (m *Match) Combine(o *Match) *Match {
	if !m.matched || !o.matched {
		return Result(false)
	}

	if len(m.mappings) == 0 {
		return o.copy()
	}

	if len(o.mappings) == 0 {
		return m.copy()
	}

	combined := o.copy()
	for _, mapping := range m.mappings {
		if !combined.add(mapping) {
			return Result(false)
		}
	}

	return combined
}

// Map adds a mapping from p to t. If it conflicts with the mappings
// already present, or t involves p, the match fails.
func (m *Match) Map(p *Parameter, t T) {
	if t.Involves(p) || !m.add(Mapping{p, t}) {
		m.matched = false
	}
}

// Mappings returns a copy of the mappings for m.
func (m *Match) Mappings() []Mapping {
	return append([]Mapping(nil), m.mappings...)
}

// Matches returns true if the match succeeded.
func (m *Match) Matches() bool {
	return m.matched
}

func (m *Match) String() string {
	if !m.matched {
		return "no match"
	}

	s := "match"
	for _, mapping := range m.mappings {
		s += " " + mapping.String()
	}

	return s
}

func (m *Match) add(next Mapping) bool {
	i := m.find(next.Parameter)
	if i < 0 {
		return m.addAndSubstitute(next)
	}

	same := m.mappings[i]
	if same.Equal(next) {
		return true
	}

	unified := same.Type.Match(next.Type)
	if !unified.Matches() {
		unified = next.Type.Match(same.Type)
		if !unified.Matches() {
			return false
		}
	}

	for _, mapping := range unified.mappings {
		if !m.add(mapping) {
			return false
		}
	}

	return true
}

func (m *Match) addAndSubstitute(next Mapping) bool {
	t := next.Type.Substitute(m.mappings)
	if t.Involves(next.Parameter) {
		// Cyclic.
		return false
	}

	reduced := Mapping{next.Parameter, t}
	for i, mapping := range m.mappings {
		if t.Involves(mapping.Parameter) {
			return false
		}

		s := mapping.Type.Substitute([]Mapping{reduced})
		if s.Involves(mapping.Parameter) {
			return false
		}

		m.mappings[i].Type = s
	}

	m.mappings = append(m.mappings, reduced)

	return true
}

func (m *Match) copy() *Match {
	return &Match{matched: m.matched, mappings: m.Mappings()}
}

func (m *Match) find(p *Parameter) int {
	for i, mapping := range m.mappings {
		if mapping.Parameter == p {
			return i
		}
	}

	return -1
}
