package table

import (
	"github.com/grossbear/noise/internal/math"
	"github.com/pkg/errors"
)

// UnitTolerance is the allowed deviation of a gradient's length from 1.
const UnitTolerance = 1e-5

// ErrInvariant is returned by Check when a table is malformed.
var ErrInvariant = errors.New("table invariant violated")

// Check verifies the structural invariants of t: the permutation is a
// bijection over [0, Size), every table mirrors its head after Size, and
// every vector gradient has unit length.
func (t *Tables) Check() error {
	var seen [Size]bool
	for i := range Size {
		v := t.Perm[i]
		if seen[v] {
			return errors.Wrapf(ErrInvariant, "permutation value %d repeated at slot %d", v, i)
		}
		seen[v] = true
	}

	for i := range Size + 2 {
		switch {
		case t.Perm[Size+i] != t.Perm[i]:
			return errors.Wrapf(ErrInvariant, "permutation slot %d does not mirror slot %d", Size+i, i)
		case t.Grad1[Size+i] != t.Grad1[i]:
			return errors.Wrapf(ErrInvariant, "1-D gradient slot %d does not mirror slot %d", Size+i, i)
		case t.Grad2[Size+i] != t.Grad2[i]:
			return errors.Wrapf(ErrInvariant, "2-D gradient slot %d does not mirror slot %d", Size+i, i)
		case t.Grad3[Size+i] != t.Grad3[i]:
			return errors.Wrapf(ErrInvariant, "3-D gradient slot %d does not mirror slot %d", Size+i, i)
		case t.Grad4[Size+i] != t.Grad4[i]:
			return errors.Wrapf(ErrInvariant, "4-D gradient slot %d does not mirror slot %d", Size+i, i)
		}
	}

	for i := range Len {
		if err := checkUnit(t.Grad2[i][:], i); err != nil {
			return err
		}
		if err := checkUnit(t.Grad3[i][:], i); err != nil {
			return err
		}
		if err := checkUnit(t.Grad4[i][:], i); err != nil {
			return err
		}
	}
	return nil
}

func checkUnit(g []float32, slot int) error {
	l := math.Norm(g)
	if math.Abs32(l-1) > UnitTolerance {
		return errors.Wrapf(ErrInvariant, "%d-D gradient at slot %d has length %g", len(g), slot, l)
	}
	return nil
}
