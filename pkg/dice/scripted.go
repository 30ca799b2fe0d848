package dice

// Scripted is a Roller that returns a fixed sequence of sums and performs
// no shuffling. Tests use it to pin down market prices and junkyard loot.
type Scripted struct {
	Sums []int
	next int
}

// NewScripted returns a Roller that yields the given sums in order.
// Once the sums are exhausted, Sum returns the last value.
func NewScripted(sums ...int) *Scripted {
	return &Scripted{Sums: sums}
}

func (s *Scripted) Sum(n int) int {
	if len(s.Sums) == 0 {
		return 0
	}
	if s.next >= len(s.Sums) {
		return s.Sums[len(s.Sums)-1]
	}
	v := s.Sums[s.next]
	s.next++
	return v
}

// Shuffle leaves the order unchanged.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {}
