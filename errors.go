package noise

import (
	"github.com/grossbear/noise/internal/math"
	"github.com/pkg/errors"
)

// MaxCoordinate bounds the supported coordinate magnitude. At and beyond it
// a float32 has no fractional part, so every sample lands on a lattice
// plane.
const MaxCoordinate = 1 << 24

var (
	// ErrDimension is returned for coordinate vectors outside 1..4 dimensions.
	ErrDimension = errors.New("noise: unsupported dimension")
	// ErrNonFinite is returned for NaN or infinite coordinates.
	ErrNonFinite = errors.New("noise: non-finite coordinate")
	// ErrOutOfRange is returned for coordinates with |x| >= MaxCoordinate.
	ErrOutOfRange = errors.New("noise: coordinate out of range")
)

// Validate checks that every coordinate is finite and within MaxCoordinate.
func Validate(p ...float32) error {
	for i, x := range p {
		if !math.IsFinite32(x) {
			return errors.Wrapf(ErrNonFinite, "axis %d", i)
		}
		if math.Abs32(x) >= MaxCoordinate {
			return errors.Wrapf(ErrOutOfRange, "axis %d: %g", i, x)
		}
	}
	return nil
}

func finite(p []float32) bool {
	for _, x := range p {
		if !math.IsFinite32(x) {
			return false
		}
	}
	return true
}
