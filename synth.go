package shtools

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Synthesizer performs inverse spherical-harmonic transforms. It keeps the
// Legendre recursion coefficient cache and the Fourier transform plans warm
// across calls, so reusing one Synthesizer for many grids at the same degree
// and normalization amortizes all precomputation.
//
// A Synthesizer is not safe for concurrent use. Concurrent callers must use
// one Synthesizer each; two calls with different configurations interleaving
// on a shared instance would corrupt the cache.
type Synthesizer struct {
	cache  legendreCache
	cplans map[int]*fourier.CmplxFFT
	rplans map[int]*fourier.FFT
}

// NewSynthesizer returns a Synthesizer with empty caches.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		cplans: make(map[int]*fourier.CmplxFFT),
		rplans: make(map[int]*fourier.FFT),
	}
}

func (s *Synthesizer) cmplxPlan(n int) *fourier.CmplxFFT {
	if p, ok := s.cplans[n]; ok {
		return p
	}
	p := fourier.NewCmplxFFT(n)
	s.cplans[n] = p
	return p
}

func (s *Synthesizer) realPlan(n int) *fourier.FFT {
	if p, ok := s.rplans[n]; ok {
		return p
	}
	p := fourier.NewFFT(n)
	s.rplans[n] = p
	return p
}

// MakeGridDHC synthesizes a complex field on a Driscoll-Healy grid from the
// coefficient set cilm truncated at degree lmax. The grid has
// N = 2*(lmax+1) latitude rows and N (or 2N, see GridOptions.Sampling)
// longitude columns, plus one extra row and column when Extend is set.
//
// A nil opts selects all defaults.
func (s *Synthesizer) MakeGridDHC(cilm *Coeffs, lmax int, opts *GridOptions) (*Grid, error) {
	cfg, err := resolveGridConfig("MakeGridDHC", lmax, coeffsLmax(cilm), -1, -1, opts)
	if err != nil {
		return nil, err
	}
	grid := &Grid{
		data:     make([]complex128, cfg.nlatOut()*cfg.nlongOut()),
		nlat:     cfg.nlatOut(),
		nlong:    cfg.nlongOut(),
		nbase:    cfg.nlat,
		extended: cfg.extend,
	}
	s.synthesizeC(grid, cilm, &cfg)
	return grid, nil
}

// MakeGridDHCInto synthesizes into a caller-allocated grid, which must have
// been created by NewGrid with a shape matching lmax and the options.
func (s *Synthesizer) MakeGridDHCInto(grid *Grid, cilm *Coeffs, lmax int, opts *GridOptions) error {
	if grid == nil {
		return NewDimensionError("MakeGridDHCInto", "output grid is nil")
	}
	cfg, err := resolveGridConfig("MakeGridDHCInto", lmax, coeffsLmax(cilm), grid.nlat, grid.nlong, opts)
	if err != nil {
		return err
	}
	s.synthesizeC(grid, cilm, &cfg)
	return nil
}

// MakeGridDHC synthesizes a complex field with a one-shot Synthesizer; see
// Synthesizer.MakeGridDHC.
func MakeGridDHC(cilm *Coeffs, lmax int, opts *GridOptions) (*Grid, error) {
	return NewSynthesizer().MakeGridDHC(cilm, lmax, opts)
}

func coeffsLmax(c *Coeffs) int {
	if c == nil {
		return -1
	}
	return c.Lmax()
}

// synthesizeC runs the ring loop. Validation is complete by this point; the
// grid is written row by row and no failure paths remain.
func (s *Synthesizer) synthesizeC(grid *Grid, cilm *Coeffs, cfg *gridConfig) {
	if cfg.lmaxComp == 0 {
		v := cilm.At(PlanePos, 0, 0) * complex(cfg.normSeed(), 0)
		for i := range grid.data {
			grid.data[i] = v
		}
		return
	}

	s.cache.rebuildIfStale(cfg.lmaxComp, cfg.norm)

	iEq := cfg.nlat / 2
	if cfg.workers > 1 {
		s.ringLoopCParallel(grid, cilm, cfg, iEq)
	} else {
		rs := newRingScratchC(cfg.nlong, s.cmplxPlan(cfg.nlong))
		for i := 0; i <= iEq; i++ {
			s.ringC(grid, cilm, cfg, rs, i, iEq)
		}
	}

	if cfg.extend {
		extendColumnsC(grid)
	}
}

// ringLoopCParallel distributes rings across workers. The recursion cache is
// already built and read-only; each worker owns its transform plan and
// scratch, and rings map to disjoint grid rows.
func (s *Synthesizer) ringLoopCParallel(grid *Grid, cilm *Coeffs, cfg *gridConfig, iEq int) {
	workers := cfg.workers
	if workers > iEq+1 {
		workers = iEq + 1
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			rs := newRingScratchC(cfg.nlong, fourier.NewCmplxFFT(cfg.nlong))
			for i := w; i <= iEq; i += workers {
				s.ringC(grid, cilm, cfg, rs, i, iEq)
			}
		}(w)
	}
	wg.Wait()
}

// ringScratchC is the per-ring Fourier-domain state for the complex
// synthesis: one accumulator for the northern ring and one for its mirror.
type ringScratchC struct {
	coef  []complex128
	coefs []complex128
	plan  *fourier.CmplxFFT
}

func newRingScratchC(nlong int, plan *fourier.CmplxFFT) *ringScratchC {
	return &ringScratchC{
		coef:  make([]complex128, nlong),
		coefs: make([]complex128, nlong),
		plan:  plan,
	}
}

// ringC synthesizes the ring at latitude index i and, via the symmetry
// split, its southern mirror. The equatorial ring (i == iEq) is its own
// mirror and is computed once; the mirror of the north pole ring is the
// explicit south pole row, present only on extended grids.
func (s *Synthesizer) ringC(grid *Grid, cilm *Coeffs, cfg *gridConfig, rs *ringScratchC, i, iEq int) {
	n := cfg.nlat
	theta := math.Pi * float64(i) / float64(n)
	z := math.Cos(theta)
	u := math.Sqrt((1 - z) * (1 + z))

	for k := range rs.coef {
		rs.coef[k] = 0
		rs.coefs[k] = 0
	}
	accumulateRingC(&s.cache, cilm, cfg, z, u, rs.coef, rs.coefs)

	rs.plan.Sequence(grid.Row(i)[:cfg.nlong], rs.coef)
	switch {
	case i == 0:
		if cfg.extend {
			rs.plan.Sequence(grid.Row(n)[:cfg.nlong], rs.coefs)
		}
	case i < iEq:
		rs.plan.Sequence(grid.Row(n-i)[:cfg.nlong], rs.coefs)
	}
}

// accumulateRingC evaluates the scaled Legendre recursion at z = cos(theta)
// and assembles the Fourier-domain accumulators for the ring (coef) and its
// equatorial mirror (coefs). Positive-order coefficients feed bin m,
// negative-order coefficients feed bin nlong-m through the conjugation
// relation Y(l,-m) = (-1)^m * conj(Y(l,m)) evaluated at fixed latitude.
func accumulateRingC(c *legendreCache, cilm *Coeffs, cfg *gridConfig, z, u float64, coef, coefs []complex128) {
	lc := cfg.lmaxComp
	nlong := cfg.nlong
	phase := cfg.phase

	cs := c.lmax + 1     // cache table stride
	ms := cilm.lmax + 1  // coefficient plane stride
	pos := cilm.data[0 : ms*ms]
	neg := cilm.data[ms*ms : 2*ms*ms]

	// Order 0 runs unscaled: the zonal values stay within a factor
	// sqrt(2l+1) of unity for the normalized conventions.
	pm2 := cfg.normSeed()
	var accN, accS complex128
	t := pos[0] * complex(pm2, 0)
	accN += t
	accS += t
	pm1 := c.f1[cs] * z * pm2
	t = pos[ms] * complex(pm1, 0)
	accN += t
	accS -= t
	for l := 2; l <= lc; l++ {
		p := z*c.f1[l*cs]*pm1 - c.f2[l*cs]*pm2
		t = pos[l*ms] * complex(p, 0)
		accN += t
		accS += t * complex(c.symsign[l*cs], 0)
		pm2, pm1 = pm1, p
	}
	coef[0] += accN
	coefs[0] += accS

	// Interior orders: the sectorial seed carries the shrink factor and the
	// convention's degree-0 value, the rescale multiplier carries u^m and the
	// compensation, applied to the finished accumulators of each order.
	pmm := scaleFactor * cfg.normSeed()
	rescalem := 1.0 / scaleFactor
	negm := 1.0
	for m := 1; m < lc; m++ {
		rescalem *= u
		negm = -negm
		pmm = phase * pmm * c.sect[m]
		pm2 = pmm

		var pN, pS, nN, nS complex128
		cp := pos[m*ms+m]
		cn := neg[m*ms+m] * complex(negm, 0)
		t = cp * complex(pm2, 0)
		pN += t
		pS += t
		t = cn * complex(pm2, 0)
		nN += t
		nS += t

		pm1 = z * c.f1[(m+1)*cs+m] * pm2
		t = pos[(m+1)*ms+m] * complex(pm1, 0)
		pN += t
		pS -= t
		t = neg[(m+1)*ms+m] * complex(negm*pm1, 0)
		nN += t
		nS -= t

		for l := m + 2; l <= lc; l++ {
			il := l*cs + m
			p := z*c.f1[il]*pm1 - c.f2[il]*pm2
			sym := complex(c.symsign[il], 0)
			t = pos[l*ms+m] * complex(p, 0)
			pN += t
			pS += t * sym
			t = neg[l*ms+m] * complex(negm*p, 0)
			nN += t
			nS += t * sym
			pm2, pm1 = pm1, p
		}

		r := complex(rescalem, 0)
		coef[m] += pN * r
		coefs[m] += pS * r
		coef[nlong-m] += nN * r
		coefs[nlong-m] += nS * r
	}

	// Highest order carries only the sectorial term.
	rescalem *= u
	negm = -negm
	pmm = phase * pmm * c.sect[lc]
	p := complex(pmm*rescalem, 0)
	t = pos[lc*ms+lc] * p
	coef[lc] += t
	coefs[lc] += t
	t = neg[lc*ms+lc] * complex(negm, 0) * p
	coef[nlong-lc] += t
	coefs[nlong-lc] += t
}

// extendColumnsC duplicates longitude 0 into the wraparound 360-degree
// column of every row.
func extendColumnsC(grid *Grid) {
	last := grid.nlong - 1
	for i := 0; i < grid.nlat; i++ {
		row := grid.Row(i)
		row[last] = row[0]
	}
}
