package shtools

import (
	"math"
)

// legendreCache holds every constant the three-term Legendre recursion
//
//	P(l,m) = z*f1(l,m)*P(l-1,m) - f2(l,m)*P(l-2,m)
//
// needs for one (degree, normalization) pair: a square-root table, the two
// recursion factor tables, the sectorial chain factors and the parity signs
// used for the equator symmetry split. A Synthesizer owns exactly one cache
// and rebuilds it whenever the key changes; the cache must never be shared
// between concurrently running synthesizers.
type legendreCache struct {
	lmax  int
	norm  Normalization
	valid bool

	// rebuild count, observed by tests
	rebuilds int

	sqr     []float64 // sqr[i] = sqrt(i)
	f1      []float64 // first recursion factor, stride lmax+1
	f2      []float64 // second recursion factor, stride lmax+1
	sect    []float64 // sectorial chain factor m-1 -> m, excluding u and phase
	symsign []float64 // +1 for even l-m, -1 for odd, stride lmax+1
}

// The sectorial chain factors follow the complex-harmonic conventions,
// which carry no (2 - delta(m,0)) term. The real synthesis accounts for
// that term with a single extra sqrt(2) on its first sectorial step.

func (c *legendreCache) idx(l, m int) int {
	return l*(c.lmax+1) + m
}

// rebuildIfStale makes the cache valid for (lmax, norm), rebuilding from
// scratch only when the key differs from the cached one.
func (c *legendreCache) rebuildIfStale(lmax int, norm Normalization) {
	if c.valid && c.lmax == lmax && c.norm == norm {
		return
	}
	c.build(lmax, norm)
}

func (c *legendreCache) build(lmax int, norm Normalization) {
	c.lmax = lmax
	c.norm = norm
	c.valid = false
	c.rebuilds++

	side := lmax + 1
	c.sqr = make([]float64, 2*lmax+4)
	for i := range c.sqr {
		c.sqr[i] = math.Sqrt(float64(i))
	}
	c.f1 = make([]float64, side*side)
	c.f2 = make([]float64, side*side)
	c.sect = make([]float64, side)
	c.symsign = make([]float64, side*side)

	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			if (l-m)%2 == 0 {
				c.symsign[c.idx(l, m)] = 1
			} else {
				c.symsign[c.idx(l, m)] = -1
			}
		}
	}

	sqr := c.sqr
	switch norm {
	case FourPi, Orthonormal:
		if lmax >= 1 {
			c.f1[c.idx(1, 0)] = sqr[3]
			c.sect[1] = sqr[3] / sqr[2]
		}
		for l := 2; l <= lmax; l++ {
			for m := 0; m <= l-2; m++ {
				i := c.idx(l, m)
				c.f1[i] = sqr[2*l-1] * sqr[2*l+1] / (sqr[l-m] * sqr[l+m])
				c.f2[i] = sqr[2*l+1] * sqr[l-m-1] * sqr[l+m-1] /
					(sqr[2*l-3] * sqr[l-m] * sqr[l+m])
			}
			c.f1[c.idx(l, l-1)] = sqr[2*l+1]
			c.sect[l] = sqr[2*l+1] / sqr[2*l]
		}

	case Schmidt:
		if lmax >= 1 {
			c.f1[c.idx(1, 0)] = 1
			c.sect[1] = 1 / sqr[2]
		}
		for l := 2; l <= lmax; l++ {
			for m := 0; m <= l-2; m++ {
				i := c.idx(l, m)
				c.f1[i] = float64(2*l-1) / (sqr[l-m] * sqr[l+m])
				c.f2[i] = sqr[l-m-1] * sqr[l+m-1] / (sqr[l-m] * sqr[l+m])
			}
			c.f1[c.idx(l, l-1)] = sqr[2*l-1]
			c.sect[l] = sqr[2*l-1] / sqr[2*l]
		}

	case Unnormalized:
		if lmax >= 1 {
			c.f1[c.idx(1, 0)] = 1
			c.sect[1] = 1
		}
		for l := 2; l <= lmax; l++ {
			for m := 0; m <= l-2; m++ {
				i := c.idx(l, m)
				c.f1[i] = float64(2*l-1) / float64(l-m)
				c.f2[i] = float64(l+m-1) / float64(l-m)
			}
			c.f1[c.idx(l, l-1)] = float64(2*l - 1)
			c.sect[l] = float64(2*l - 1)
		}
	}

	c.valid = true
}
