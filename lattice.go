package noise

import (
	"github.com/grossbear/noise/internal/math"
	"github.com/grossbear/noise/table"
)

const (
	// largePwr2 shifts coordinates so that the lattice cell of any
	// x >= -largePwr2 has a non-negative integer part.
	largePwr2 = 4096

	// maxDims is the highest supported dimensionality.
	maxDims = 4

	// exactIndexLimit bounds the shifted coordinates whose floor converts
	// to int64 without overflow.
	exactIndexLimit = 1 << 62
)

// axis holds the per-axis lattice data for one coordinate.
type axis struct {
	b0, b1 int     // lower and upper lattice slots
	r0, r1 float32 // offsets from the lower and upper lattice points
	s      float32 // fade weight
}

func makeAxis(x float32) axis {
	t := x + largePwr2
	ft := math.Floor32(t)
	b0 := latticeIndex(ft)
	r0 := t - ft

	return axis{
		b0: b0,
		b1: (b0 + 1) & table.Mask,
		r0: r0,
		r1: r0 - 1,
		s:  math.SCurve(r0),
	}
}

// latticeIndex reduces an integral float to a slot index.
func latticeIndex(ft float32) int {
	if math.Abs32(ft) < exactIndexLimit {
		return int(int64(ft) & table.Mask)
	}
	m := math.Mod32(ft, table.Size)
	if m < 0 {
		m += table.Size
	}
	return int(m) & table.Mask
}

// pick returns the slot and offset of axis a for a corner: the upper
// neighbour when upper is set, otherwise the lower one.
func (a *axis) pick(upper bool) (int, float32) {
	if upper {
		return a.b1, a.r1
	}
	return a.b0, a.r0
}

// gradient returns the d-dimensional gradient stored at idx.
func gradient(t *table.Tables, d, idx int) []float32 {
	switch d {
	case 1:
		return t.Grad1[idx : idx+1]
	case 2:
		return t.Grad2[idx][:]
	case 3:
		return t.Grad3[idx][:]
	default:
		return t.Grad4[idx][:]
	}
}

// evaluate computes lattice noise at p (1 <= len(p) <= 4).
//
// Corner c takes the upper neighbour on axis k when bit k of c is set. Its
// gradient index chains through the permutation one axis at a time:
// idx = perm[b_0], then idx = perm[idx+b_k] for every further axis. Corner
// contributions are blended by collapsing axis 0 first, then axis 1, and so
// on. For one dimension this is exactly the classic 1-D lookup.
func evaluate(t *table.Tables, p []float32) float32 {
	d := len(p)

	var axes [maxDims]axis
	for k, x := range p {
		axes[k] = makeAxis(x)
	}

	var values [1 << maxDims]float32
	var r [maxDims]float32
	n := 1 << d
	for c := range n {
		b, off := axes[0].pick(c&1 != 0)
		idx := int(t.Perm[b])
		r[0] = off
		for k := 1; k < d; k++ {
			b, off = axes[k].pick(c&(1<<k) != 0)
			idx = int(t.Perm[idx+b])
			r[k] = off
		}
		values[c] = math.Dot(gradient(t, d, idx), r[:d])
	}

	for k := range d {
		n >>= 1
		for i := range n {
			values[i] = math.Lerp(axes[k].s, values[2*i], values[2*i+1])
		}
	}
	return values[0]
}
