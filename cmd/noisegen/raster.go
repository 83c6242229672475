package main

import (
	"github.com/grossbear/noise"
	"github.com/grossbear/noise/internal/parallel"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var errInvalidConfig = errors.New("invalid config")

// Config configures raster sampling.
type Config struct {
	// Seed selects the noise tables.
	// Default: 0
	Seed uint32

	// Dims is the dimensionality of the sampled field (1 to 4).
	// A 1-D field is sampled along x only and always has one row.
	// Default: 2
	Dims int

	// Width and Height are the raster size in pixels.
	// Default: 256 x 256
	Width  int
	Height int

	// Scale is the distance in lattice units between adjacent pixels.
	// Default: 1/32
	Scale float32

	// X0 and Y0 are the lattice coordinates of the top-left pixel.
	X0, Y0 float32

	// Z and W fix the remaining coordinates of 3-D and 4-D fields.
	Z, W float32

	// NumWorkers for parallel row filling.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int

	// Verbose enables progress output.
	// Default: false
	Verbose bool
}

// DefaultConfig returns the default sampling configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       0,
		Dims:       2,
		Width:      256,
		Height:     256,
		Scale:      1.0 / 32,
		NumWorkers: 0,
		Verbose:    false,
	}
}

// rows returns the number of raster rows sampled for c.
func (c Config) rows() int {
	if c.Dims == 1 {
		return 1
	}
	return c.Height
}

// validate checks the configuration, including both raster corners.
func (c Config) validate() error {
	if c.Dims < 1 || c.Dims > 4 {
		return errors.Wrapf(errInvalidConfig, "dims must be between 1 and 4, got %d", c.Dims)
	}
	if c.Width <= 0 || c.rows() <= 0 {
		return errors.Wrapf(errInvalidConfig, "raster must not be empty, got %dx%d", c.Width, c.rows())
	}
	if !(c.Scale > 0) {
		return errors.Wrapf(errInvalidConfig, "scale must be positive, got %g", c.Scale)
	}

	last := c.point(c.Width-1, c.rows()-1, nil)
	if err := noise.Validate(last...); err != nil {
		return errors.Wrap(err, "far corner")
	}
	if err := noise.Validate(c.point(0, 0, nil)...); err != nil {
		return errors.Wrap(err, "origin")
	}
	return nil
}

// point returns the lattice coordinates of pixel (col, row), reusing buf
// when it has room.
func (c Config) point(col, row int, buf []float32) []float32 {
	p := buf[:0]
	p = append(p, c.X0+float32(col)*c.Scale)
	if c.Dims >= 2 {
		p = append(p, c.Y0+float32(row)*c.Scale)
	}
	if c.Dims >= 3 {
		p = append(p, c.Z)
	}
	if c.Dims >= 4 {
		p = append(p, c.W)
	}
	return p
}

// Raster is a row-major grid of noise samples.
type Raster struct {
	Width  int
	Height int
	Values []float32
}

// At returns the sample at column x, row y.
func (r *Raster) At(x, y int) float32 {
	return r.Values[y*r.Width+x]
}

// Row returns the samples of row y.
func (r *Raster) Row(y int) []float32 {
	return r.Values[y*r.Width : (y+1)*r.Width]
}

// Sample evaluates g over the raster described by cfg.
func Sample(g *noise.Generator, cfg Config) (*Raster, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Raster{
		Width:  cfg.Width,
		Height: cfg.rows(),
	}
	r.Values = make([]float32, r.Width*r.Height)

	workers := parallel.Resolve(cfg.NumWorkers)
	parallel.For(0, r.Height, workers, func(y int) {
		row := r.Row(y)
		var buf [4]float32
		for x := range row {
			row[x] = evalAt(g, cfg.point(x, y, buf[:]))
		}
	})

	return r, nil
}

func evalAt(g *noise.Generator, p []float32) float32 {
	switch len(p) {
	case 1:
		return g.Noise1(p[0])
	case 2:
		return g.Noise2(p[0], p[1])
	case 3:
		return g.Noise3(p[0], p[1], p[2])
	default:
		return g.Noise4(p[0], p[1], p[2], p[3])
	}
}

// Summary holds basic statistics of a sampled raster.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes statistics over values.
func Summarize(values []float32) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(data, nil)
	return Summary{
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Mean:   mean,
		StdDev: std,
	}
}
