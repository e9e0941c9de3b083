package catch

// RNG is the random source consumed by the simulation.
// It is always injected so runs can be replayed with a scripted sequence.
type RNG interface {
	// UniformInt returns an integer in [min, max], inclusive of both bounds.
	UniformInt(min, max int) int
}

// LCG is a deterministic pseudo-random number generator.
// Uses a 64-bit linear congruential step and draws from the high bits.
type LCG struct {
	state uint64
}

// NewRNG creates a new generator with the given seed.
func NewRNG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

func (r *LCG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// UniformInt returns an integer in [min, max]. Swapped bounds are tolerated.
func (r *LCG) UniformInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := uint64(max-min) + 1 //#nosec G115 -- max >= min
	return min + int((r.next()>>11)%span) //#nosec G115 -- result < span
}
