// Package hash provides the integer-to-float pseudo-random functions that
// seed the noise tables.
//
// Every function is pure: the same integers always give the same float32 on
// every platform. The arithmetic is done on int32, whose overflow wraps, so
// seeded tables stay stable.
package hash

const (
	// Weights that fold extra coordinates into a single integer.
	weightY = 57
	weightZ = 131
	weightW = 323

	// 2^30, maps the masked 31-bit hash onto [0, 2).
	scale = 1073741824.0
)

// Hash1 returns a pseudo-random value in [-1, 1] derived from x.
func Hash1(x int32) float32 {
	return mix(x)
}

// Hash2 returns a pseudo-random value in [-1, 1] derived from (x, y).
func Hash2(x, y int32) float32 {
	return mix(x + y*weightY)
}

// Hash3 returns a pseudo-random value in [-1, 1] derived from (x, y, z).
func Hash3(x, y, z int32) float32 {
	return mix(x + y*weightY + z*weightZ)
}

// Hash4 returns a pseudo-random value in [-1, 1] derived from (x, y, z, w).
func Hash4(x, y, z, w int32) float32 {
	return mix(x + y*weightY + z*weightZ + w*weightW)
}

// mix scrambles n and normalizes the result.
// The sign bit is cleared before the float conversion.
func mix(n int32) float32 {
	n = (n << 13) ^ n
	h := n*(n*n*15731+789221) + 1376312589
	h &= 0x7fffffff
	return 1 - float32(h)/scale
}
