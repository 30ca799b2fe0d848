package dice

import "math/rand/v2"

// Roller is the game's single source of randomness. Loot pricing and
// merchant stock are built on sums of six-sided dice; the Junkyard also
// needs a shuffle. Injecting the roller keeps those paths deterministic
// under test.
type Roller interface {
	// Sum rolls n six-sided dice and returns their total.
	Sum(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

type randRoller struct {
	rng *rand.Rand
}

// New returns a Roller backed by a randomly seeded PCG source.
func New() Roller {
	return &randRoller{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Roller with a fixed seed for reproducible runs.
func NewSeeded(seed uint64) Roller {
	return &randRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *randRoller) Sum(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.rng.IntN(6) + 1
	}
	return total
}

func (r *randRoller) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}
