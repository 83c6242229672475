// Package math provides float32 vector and interpolation utilities for the
// noise tables and evaluator.
//
// Products that feed an addition are wrapped in an explicit float32
// conversion. Go may otherwise fuse them into a single FMA instruction on
// some architectures, which would change the low bits of the result.
package math

import "github.com/chewxy/math32"

// Sqrt32 computes the square root of a float32.
func Sqrt32(x float32) float32 {
	return math32.Sqrt(x)
}

// Floor32 returns the greatest integer value less than or equal to x.
func Floor32(x float32) float32 {
	return math32.Floor(x)
}

// Mod32 returns the floating-point remainder of x/y.
func Mod32(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Abs32 returns the absolute value of a float32.
func Abs32(x float32) float32 {
	return math32.Abs(x)
}

// IsFinite32 reports whether x is neither NaN nor an infinity.
func IsFinite32(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// NormSquared computes the squared L2 norm of a vector, summing left to right.
func NormSquared(vec []float32) float32 {
	if len(vec) == 0 {
		return 0
	}
	sum := float32(vec[0] * vec[0])
	for _, v := range vec[1:] {
		sum += float32(v * v)
	}
	return sum
}

// Norm computes the L2 norm of a vector.
func Norm(vec []float32) float32 {
	return Sqrt32(NormSquared(vec))
}

// Dot computes the dot product of two vectors.
// The first product seeds the sum so a single-element dot is a plain product.
func Dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	sum := float32(a[0] * b[0])
	for i := 1; i < n; i++ {
		sum += float32(a[i] * b[i])
	}
	return sum
}

// Normalize scales vec in place to unit length.
// A zero-length vector is replaced by the unit vector along the first axis
// and Normalize reports false.
func Normalize(vec []float32) bool {
	l := Norm(vec)
	if l == 0 || !IsFinite32(l) {
		for i := range vec {
			vec[i] = 0
		}
		if len(vec) > 0 {
			vec[0] = 1
		}
		return false
	}
	for i := range vec {
		vec[i] = vec[i] / l
	}
	return true
}

// SCurve is the smoothstep fade 3t^2 - 2t^3, evaluated as t*t*(3-2t).
// It is 0 at t=0, 1 at t=1 and has zero slope at both ends.
func SCurve(t float32) float32 {
	return t * t * (3 - float32(2*t))
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(t, a, b float32) float32 {
	return a + float32(t*(b-a))
}

// Pack01 maps a value from [-1, 1] onto [0, 1].
func Pack01(v float32) float32 {
	return float32(v*0.5) + 0.5
}
