// Package noise implements seedable, deterministic Perlin-style lattice
// noise in one to four dimensions.
//
// A Generator is built from a seed and then evaluated any number of times.
// The field is smooth, band-limited, exactly zero at integer lattice points
// and periodic with period table.Size along every axis.
//
// Basic usage:
//
//	g := noise.New(1234)
//	v := g.Noise2(x, y)
//
// The one-dimensional field matches the C mnoise library bit for bit, so
// content seeded with it keeps its values.
package noise

import (
	"sync"
	"sync/atomic"

	"github.com/grossbear/noise/table"
	"github.com/pkg/errors"
)

// Generator evaluates lattice noise for one seed.
//
// Evaluation methods take no lock and may be called from any number of
// goroutines. Reseed builds a complete new table set before publishing it,
// so every evaluation reads a single consistent table set.
type Generator struct {
	mu     sync.Mutex // serializes Reseed
	tables atomic.Pointer[table.Tables]
}

// New creates a generator for seed.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.tables.Store(table.Build(seed))
	return g
}

// Reseed replaces all tables with the ones built for seed.
func (g *Generator) Reseed(seed uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tables.Store(table.Build(seed))
}

// Seed returns the seed of the current tables.
func (g *Generator) Seed() uint32 {
	return g.tables.Load().Seed
}

// Tables returns the current table set. It must not be modified.
func (g *Generator) Tables() *table.Tables {
	return g.tables.Load()
}

// Noise1 returns one-dimensional noise at x.
// A NaN or infinite x yields 0.
func (g *Generator) Noise1(x float32) float32 {
	p := [1]float32{x}
	return g.eval(p[:])
}

// Noise2 returns two-dimensional noise at (x, y).
func (g *Generator) Noise2(x, y float32) float32 {
	p := [2]float32{x, y}
	return g.eval(p[:])
}

// Noise3 returns three-dimensional noise at (x, y, z).
func (g *Generator) Noise3(x, y, z float32) float32 {
	p := [3]float32{x, y, z}
	return g.eval(p[:])
}

// Noise4 returns four-dimensional noise at (x, y, z, w).
func (g *Generator) Noise4(x, y, z, w float32) float32 {
	p := [4]float32{x, y, z, w}
	return g.eval(p[:])
}

// Eval returns noise at p, whose length selects the dimensionality.
// Unlike the NoiseN methods it reports bad input instead of returning 0.
func (g *Generator) Eval(p []float32) (float32, error) {
	if len(p) < 1 || len(p) > maxDims {
		return 0, errors.Wrapf(ErrDimension, "got %d coordinates", len(p))
	}
	if err := Validate(p...); err != nil {
		return 0, err
	}
	return evaluate(g.tables.Load(), p), nil
}

func (g *Generator) eval(p []float32) float32 {
	if !finite(p) {
		return 0
	}
	return evaluate(g.tables.Load(), p)
}
