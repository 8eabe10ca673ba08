package shtools

import (
	"fmt"
	"math"
)

// Normalization selects the spherical-harmonic normalization convention.
// The numeric values match the option codes used throughout the toolkit.
type Normalization int

const (
	// FourPi is the geodesy 4-pi normalization (default)
	FourPi Normalization = iota + 1
	// Schmidt is the Schmidt semi-normalization
	Schmidt
	// Unnormalized uses raw associated Legendre functions
	Unnormalized
	// Orthonormal is the orthonormalized convention
	Orthonormal
)

// String returns the normalization as a string
func (n Normalization) String() string {
	switch n {
	case FourPi:
		return "4pi"
	case Schmidt:
		return "schmidt"
	case Unnormalized:
		return "unnormalized"
	case Orthonormal:
		return "orthonormal"
	default:
		return fmt.Sprintf("normalization(%d)", int(n))
	}
}

// Sampling selects the longitude sampling of the output grid.
type Sampling int

const (
	// SampleEqual produces an N x N grid
	SampleEqual Sampling = iota + 1
	// SampleDouble produces an N x 2N grid
	SampleDouble
)

// GridOptions are the optional parameters of a synthesis call. The zero
// value of a field selects its default; use DefaultGridOptions for a fully
// populated set.
type GridOptions struct {
	// Norm is the normalization convention. Default FourPi.
	Norm Normalization

	// Sampling selects N x N or N x 2N output. Default SampleEqual.
	Sampling Sampling

	// CSPhase is +1 to exclude the Condon-Shortley phase factor from the
	// Legendre functions, -1 to include it. Default +1.
	CSPhase int

	// LmaxCalc caps the degree used in the synthesis. Zero or negative means
	// no cap. Must not exceed the requested truncation degree.
	LmaxCalc int

	// Extend adds a 360-degree longitude column and a 90-degree-south
	// latitude row to the output grid.
	Extend bool

	// Workers is the number of goroutines synthesizing latitude rings.
	// Values below 1 are treated as 1. Each worker uses its own transform
	// plans and scratch; the recursion cache is built once up front.
	Workers int
}

// DefaultGridOptions returns the default synthesis options.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Norm:     FourPi,
		Sampling: SampleEqual,
		CSPhase:  1,
		LmaxCalc: -1,
		Extend:   false,
		Workers:  1,
	}
}

// gridConfig is a resolved, validated configuration for one synthesis call.
type gridConfig struct {
	norm     Normalization
	sampling Sampling
	phase    float64 // +1 or -1, multiplied into each sectorial step
	lmax     int     // requested truncation degree, fixes the grid shape
	lmaxComp int     // effective degree used for computation
	nlat     int     // latitude rows before extension, always 2*(lmax+1)
	nlong    int     // longitude columns before extension
	extend   bool
	workers  int
}

// nlatOut and nlongOut are the output grid dimensions including extension.
func (c *gridConfig) nlatOut() int {
	if c.extend {
		return c.nlat + 1
	}
	return c.nlat
}

func (c *gridConfig) nlongOut() int {
	if c.extend {
		return c.nlong + 1
	}
	return c.nlong
}

// normSeed is the degree-0 Legendre value under the configured convention.
func (c *gridConfig) normSeed() float64 {
	if c.norm == Orthonormal {
		return 1.0 / math.Sqrt(4.0*math.Pi)
	}
	return 1.0
}

// resolveGridConfig validates the call parameters in the toolkit's canonical
// order (sampling, input shape, output shape, normalization, phase, degree
// cap) and produces the configuration. availLmax is the highest degree the
// coefficient array covers; outNLat/outNLon are the dimensions of a
// caller-supplied output grid, or -1 when the grid is allocated internally.
func resolveGridConfig(op string, lmax, availLmax int, outNLat, outNLon int, opts *GridOptions) (gridConfig, error) {
	var cfg gridConfig
	o := DefaultGridOptions()
	if opts != nil {
		o = *opts
	}
	if o.Norm == 0 {
		o.Norm = FourPi
	}
	if o.Sampling == 0 {
		o.Sampling = SampleEqual
	}
	if o.CSPhase == 0 {
		o.CSPhase = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	if o.Sampling != SampleEqual && o.Sampling != SampleDouble {
		return cfg, NewOptionError(op, fmt.Sprintf("sampling must be 1 (NxN) or 2 (Nx2N): got %d", int(o.Sampling)))
	}

	if lmax < 0 {
		return cfg, NewDimensionError(op, fmt.Sprintf("truncation degree must be non-negative: got %d", lmax))
	}
	if availLmax < 0 {
		return cfg, NewDimensionError(op, "coefficient array is nil or covers no degrees")
	}
	if lmax > MaxDegree {
		return cfg, NewAllocError(op, fmt.Sprintf("degree %d exceeds the maximum addressable degree %d", lmax, MaxDegree), nil)
	}

	cfg.lmax = lmax
	cfg.nlat = latBandsPerDegree * (lmax + 1)
	cfg.nlong = cfg.nlat
	if o.Sampling == SampleDouble {
		cfg.nlong = 2 * cfg.nlat
	}
	cfg.extend = o.Extend

	if outNLat >= 0 || outNLon >= 0 {
		if outNLat != cfg.nlatOut() || outNLon != cfg.nlongOut() {
			return cfg, NewDimensionError(op, fmt.Sprintf(
				"output grid is %d x %d but degree %d requires %d x %d",
				outNLat, outNLon, lmax, cfg.nlatOut(), cfg.nlongOut()))
		}
	}

	if o.Norm < FourPi || o.Norm > Orthonormal {
		return cfg, NewOptionError(op, fmt.Sprintf("normalization must be in 1..4: got %d", int(o.Norm)))
	}
	if o.CSPhase != 1 && o.CSPhase != -1 {
		return cfg, NewOptionError(op, fmt.Sprintf("csphase must be +1 or -1: got %d", o.CSPhase))
	}
	if o.LmaxCalc > lmax {
		return cfg, NewOptionError(op, fmt.Sprintf("degree cap %d exceeds requested degree %d", o.LmaxCalc, lmax))
	}

	cfg.norm = o.Norm
	cfg.sampling = o.Sampling
	cfg.phase = float64(o.CSPhase)
	cfg.workers = o.Workers

	cfg.lmaxComp = lmax
	if availLmax < cfg.lmaxComp {
		cfg.lmaxComp = availLmax
	}
	if o.LmaxCalc > 0 && o.LmaxCalc < cfg.lmaxComp {
		cfg.lmaxComp = o.LmaxCalc
	}
	return cfg, nil
}
