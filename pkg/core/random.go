package core

import (
	"math"
	"math/rand"
)

// Random provides uniform variates to every stochastic part of the renderer.
// It is injected rather than read from global state so renders are reproducible
// and tests can substitute a fixed sequence. Implementations are not required
// to be safe for concurrent use; each render tile owns one.
type Random interface {
	// Rand returns a value in [0, 1)
	Rand() float64
	// RandInterval returns a value in [min, max)
	RandInterval(min, max float64) float64
	// RandIntInterval returns an integer in [min, max)
	RandIntInterval(min, max int) int
}

// RandRandom wraps a standard Go random generator
type RandRandom struct {
	random *rand.Rand
}

// NewRandom creates a seeded random source
func NewRandom(seed int64) *RandRandom {
	return &RandRandom{random: rand.New(rand.NewSource(seed))}
}

// Rand returns a random float64 in [0, 1)
func (r *RandRandom) Rand() float64 {
	return r.random.Float64()
}

// RandInterval returns a random float64 in [min, max)
func (r *RandRandom) RandInterval(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// RandIntInterval returns a random int in [min, max)
func (r *RandRandom) RandIntInterval(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.random.Intn(max-min)
}

// SequenceRandom replays a fixed list of values in order, wrapping around at
// the end. It makes stochastic code paths bit-exact for regression fixtures.
type SequenceRandom struct {
	values []float64
	index  int
}

// NewSequenceRandom creates a source that cycles through values
func NewSequenceRandom(values ...float64) *SequenceRandom {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &SequenceRandom{values: values}
}

// NewSpreadSequenceRandom creates a source of n values evenly spread over [0,1),
// visited with a stride coprime to n so consecutive draws are decorrelated.
func NewSpreadSequenceRandom(n int) *SequenceRandom {
	values := make([]float64, n)
	stride := 7919 % n
	for gcd(stride, n) != 1 {
		stride++
	}
	for i := range values {
		values[i] = float64((i*stride)%n) / float64(n)
	}
	return &SequenceRandom{values: values}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Rand returns the next value in the sequence
func (s *SequenceRandom) Rand() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

// RandInterval maps the next value into [min, max)
func (s *SequenceRandom) RandInterval(min, max float64) float64 {
	return min + (max-min)*s.Rand()
}

// RandIntInterval maps the next value into [min, max)
func (s *SequenceRandom) RandIntInterval(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(math.Floor(s.Rand()*float64(max-min)))
}

// Draws returns how many values have been consumed
func (s *SequenceRandom) Draws() int {
	return s.index
}
