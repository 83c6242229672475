// Package rand provides a small seedable Tausworthe generator used to draw
// sample coordinates. It is deterministic for a given seed and is not
// involved in table construction.
package rand

// State holds the internal state of the Tausworthe PRNG.
// It requires 3 int64 values for the combined generator.
type State [3]int64

// New creates a new random state from a seed.
func New(seed int64) State {
	// Initialize state from seed using simple LCG
	s := State{}
	s[0] = seed
	if s[0] == 0 {
		s[0] = 1
	}
	s[1] = s[0]*6364136223846793005 + 1442695040888963407
	s[2] = s[1]*6364136223846793005 + 1442695040888963407
	// Warm up
	for range 10 {
		Int(&s)
	}
	return s
}

// Int generates a pseudo-random int32 using the combined Tausworthe step.
func Int(state *State) int32 {
	state[0] = (((state[0] & 4294967294) << 12) & 0xFFFFFFFF) ^
		((((state[0] << 13) & 0xFFFFFFFF) ^ state[0]) >> 19)
	state[1] = (((state[1] & 4294967288) << 4) & 0xFFFFFFFF) ^
		((((state[1] << 2) & 0xFFFFFFFF) ^ state[1]) >> 25)
	state[2] = (((state[2] & 4294967280) << 17) & 0xFFFFFFFF) ^
		((((state[2] << 3) & 0xFFFFFFFF) ^ state[2]) >> 11)
	return int32(state[0] ^ state[1] ^ state[2])
}

// Float32 generates a pseudo-random float32 in [0, 1].
func Float32(state *State) float32 {
	i := int64(Int(state))
	if i < 0 {
		i = -i
	}
	return float32(float64(i) / float64(1<<31))
}

// Range generates a pseudo-random float32 in [lo, hi].
func Range(state *State, lo, hi float32) float32 {
	return lo + (hi-lo)*Float32(state)
}

// Intn returns a non-negative pseudo-random int in [0, n).
func Intn(state *State, n int) int {
	if n <= 0 {
		return 0
	}
	i := int64(Int(state))
	if i < 0 {
		i = -i
	}
	return int(i % int64(n))
}

// Point fills p with coordinates drawn from [lo, hi].
func Point(state *State, p []float32, lo, hi float32) {
	for k := range p {
		p[k] = Range(state, lo, hi)
	}
}
