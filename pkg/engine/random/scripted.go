package random

import "fmt"

// Scripted is a Source that replays fixed values, for tests that need to
// force room sizes, coordinates, or door rolls.
//
// Ints are returned in order by UniformInt; each value must lie in the
// requested range. Chances are returned in order by PercentChance; once
// they run out the Default value is used. Running out of ints panics.
type Scripted struct {
	Ints    []int
	Chances []bool
	Default bool

	intCalls    int
	chanceCalls int
}

// NewScripted creates a Scripted source returning ints in order
func NewScripted(ints ...int) *Scripted {
	return &Scripted{Ints: ints}
}

// Always creates a Scripted source whose PercentChance always returns v
func Always(v bool) *Scripted {
	return &Scripted{Default: v}
}

// UniformInt returns the next scripted integer
func (s *Scripted) UniformInt(min, max int) int {
	if s.intCalls >= len(s.Ints) {
		panic(fmt.Sprintf("random: scripted source exhausted after %d ints", len(s.Ints)))
	}
	v := s.Ints[s.intCalls]
	s.intCalls++
	if v < min || v >= max {
		panic(fmt.Sprintf("random: scripted int %d outside [%d,%d)", v, min, max))
	}
	return v
}

// PercentChance returns the next scripted outcome, or Default when none remain
func (s *Scripted) PercentChance(float64) bool {
	if s.chanceCalls < len(s.Chances) {
		v := s.Chances[s.chanceCalls]
		s.chanceCalls++
		return v
	}
	s.chanceCalls++
	return s.Default
}

// IntCalls returns how many integers have been drawn
func (s *Scripted) IntCalls() int {
	return s.intCalls
}

// ChanceCalls returns how many percent-chance rolls have been made
func (s *Scripted) ChanceCalls() int {
	return s.chanceCalls
}

var _ Source = (*Scripted)(nil)
