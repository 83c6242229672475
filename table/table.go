// Package table builds the permutation and gradient tables that drive
// lattice noise.
//
// A table set is fully determined by its seed. Building twice with the same
// seed gives bit-identical tables. Each table holds Size entries followed by
// a copy of its first Size+2 entries, so lookups of the form
// perm[perm[i]+j] never need a modulo.
package table

import (
	"github.com/grossbear/noise/hash"
	"github.com/grossbear/noise/internal/math"
)

const (
	// Size is the number of lattice slots. It must be a power of two so
	// that (i % Size) == (i & Mask).
	Size = 256
	// Mask reduces a lattice coordinate to a slot index.
	Mask = Size - 1
	// Len is the length of every table including the wrap-around copy.
	Len = 2*Size + 2

	// seedModulus reduces a seed to the starting cursor position.
	seedModulus = 0xffff
)

// Permutation is a bijection over [0, Size) followed by its wrap-around copy.
type Permutation [Len]uint8

// Tables is one generator state: a permutation table and one gradient table
// per dimension. Gradients for two or more dimensions have unit length.
//
// A built Tables is never modified and may be read from any number of
// goroutines.
type Tables struct {
	Seed  uint32
	Perm  Permutation
	Grad1 [Len]float32
	Grad2 [Len][2]float32
	Grad3 [Len][3]float32
	Grad4 [Len][4]float32
}

// NormalizeSeed reduces seed to the starting cursor position.
// Seeds that are congruent modulo 0xffff build the same tables.
func NormalizeSeed(seed uint32) int32 {
	return int32(seed % seedModulus)
}

// Build constructs the tables for seed.
func Build(seed uint32) *Tables {
	t := &Tables{Seed: seed}
	pos := NormalizeSeed(seed)

	t.setGradients(pos)
	t.setPermutation()

	return t
}

// cursor is a running position into the Hash1 input domain.
type cursor struct {
	pos int32
}

// next returns the hash at the current position and advances.
func (c *cursor) next() float32 {
	v := hash.Hash1(c.pos)
	c.pos++
	return v
}

// fill draws len(vec) consecutive values into vec.
func (c *cursor) fill(vec []float32) {
	for i := range vec {
		vec[i] = c.next()
	}
}

// setGradients fills the gradient tables from a cursor starting at pos.
// Each slot consumes 10 positions: 1 scalar, then 2, 3 and 4 vector
// components. The cursor never rewinds between slots.
func (t *Tables) setGradients(pos int32) {
	c := cursor{pos: pos}

	for i := range Size {
		t.Grad1[i] = c.next()

		c.fill(t.Grad2[i][:])
		math.Normalize(t.Grad2[i][:])

		c.fill(t.Grad3[i][:])
		math.Normalize(t.Grad3[i][:])

		c.fill(t.Grad4[i][:])
		math.Normalize(t.Grad4[i][:])
	}

	for i := range Size + 2 {
		t.Grad1[Size+i] = t.Grad1[i]
		t.Grad2[Size+i] = t.Grad2[i]
		t.Grad3[Size+i] = t.Grad3[i]
		t.Grad4[Size+i] = t.Grad4[i]
	}
}

// setPermutation fills the permutation table with a shuffled identity.
//
// The swap target for slot i is drawn from Hash1(i), so the permutation does
// not depend on the seed. Existing noise fields rely on this.
func (t *Tables) setPermutation() {
	for i := range Size {
		t.Perm[i] = uint8(i)
	}

	shuffle(t.Perm[:Size])

	for i := range Size + 2 {
		t.Perm[Size+i] = t.Perm[i]
	}
}

// shuffle permutes p in place, walking from the last slot down to the first.
func shuffle(p []uint8) {
	for i := len(p) - 1; i >= 0; i-- {
		v := math.Pack01(hash.Hash1(int32(i)))
		j := int(v * Mask)
		p[i], p[j] = p[j], p[i]
	}
}
