package engine

import "math/rand"

// RNG is the injected randomness source for damage variance and AI draws.
// Implementations return a value in [0, n). Tests substitute a scripted
// sequence so resolutions are fully deterministic.
type RNG interface {
	NextBounded(n int) int
}

type seededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns a math/rand backed source. The same seed always
// reproduces the same battle.
func NewSeededRNG(seed int64) RNG {
	return &seededRNG{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRNG) NextBounded(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}
