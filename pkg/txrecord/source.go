package txrecord

import (
	"math"
	"math/rand/v2"
)

// Source supplies the random draws used by a Generator
type Source interface {
	// IntRange returns a uniform integer in [minInclusive, maxInclusive]
	IntRange(minInclusive, maxInclusive int) int

	// FloatRange returns a uniform real in [minInclusive, maxExclusive)
	FloatRange(minInclusive, maxExclusive float64) float64
}

// randSource adapts a math/rand/v2 generator to Source
type randSource struct {
	rand *rand.Rand
}

// NewSource wraps r. A nil r draws from the process-wide source.
func NewSource(r *rand.Rand) Source {
	return &randSource{rand: r}
}

// NewSeededSource returns a deterministic source seeded with seed
func NewSeededSource(seed uint64) Source {
	return NewSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *randSource) float64() float64 {
	if s.rand == nil {
		return rand.Float64()
	}
	return s.rand.Float64()
}

// IntRange scales a continuous draw over max-min+1 values and floors it.
func (s *randSource) IntRange(minInclusive, maxInclusive int) int {
	span := float64(maxInclusive - minInclusive + 1)
	return int(math.Floor(s.float64()*span + float64(minInclusive)))
}

func (s *randSource) FloatRange(minInclusive, maxExclusive float64) float64 {
	return s.float64()*(maxExclusive-minInclusive) + minInclusive
}
