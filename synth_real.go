package shtools

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MakeGridDH synthesizes a real field on a Driscoll-Healy grid from the
// real coefficient set cilm truncated at degree lmax: PlanePos carries the
// cosine coefficients C(l,m), PlaneNeg the sine coefficients S(l,m). Grid
// shape follows MakeGridDHC.
func (s *Synthesizer) MakeGridDH(cilm *RealCoeffs, lmax int, opts *GridOptions) (*RealGrid, error) {
	cfg, err := resolveGridConfig("MakeGridDH", lmax, realCoeffsLmax(cilm), -1, -1, opts)
	if err != nil {
		return nil, err
	}
	grid := &RealGrid{
		data:     make([]float64, cfg.nlatOut()*cfg.nlongOut()),
		nlat:     cfg.nlatOut(),
		nlong:    cfg.nlongOut(),
		nbase:    cfg.nlat,
		extended: cfg.extend,
	}
	s.synthesizeR(grid, cilm, &cfg)
	return grid, nil
}

// MakeGridDHInto synthesizes into a caller-allocated real grid created by
// NewRealGrid with a shape matching lmax and the options.
func (s *Synthesizer) MakeGridDHInto(grid *RealGrid, cilm *RealCoeffs, lmax int, opts *GridOptions) error {
	if grid == nil {
		return NewDimensionError("MakeGridDHInto", "output grid is nil")
	}
	cfg, err := resolveGridConfig("MakeGridDHInto", lmax, realCoeffsLmax(cilm), grid.nlat, grid.nlong, opts)
	if err != nil {
		return err
	}
	s.synthesizeR(grid, cilm, &cfg)
	return nil
}

// MakeGridDH synthesizes a real field with a one-shot Synthesizer; see
// Synthesizer.MakeGridDH.
func MakeGridDH(cilm *RealCoeffs, lmax int, opts *GridOptions) (*RealGrid, error) {
	return NewSynthesizer().MakeGridDH(cilm, lmax, opts)
}

func realCoeffsLmax(c *RealCoeffs) int {
	if c == nil {
		return -1
	}
	return c.Lmax()
}

func (s *Synthesizer) synthesizeR(grid *RealGrid, cilm *RealCoeffs, cfg *gridConfig) {
	if cfg.lmaxComp == 0 {
		v := cilm.At(PlanePos, 0, 0) * cfg.normSeed()
		for i := range grid.data {
			grid.data[i] = v
		}
		return
	}

	s.cache.rebuildIfStale(cfg.lmaxComp, cfg.norm)

	iEq := cfg.nlat / 2
	if cfg.workers > 1 {
		s.ringLoopRParallel(grid, cilm, cfg, iEq)
	} else {
		rs := newRingScratchR(cfg.nlong, s.realPlan(cfg.nlong))
		for i := 0; i <= iEq; i++ {
			s.ringR(grid, cilm, cfg, rs, i, iEq)
		}
	}

	if cfg.extend {
		last := grid.nlong - 1
		for i := 0; i < grid.nlat; i++ {
			row := grid.Row(i)
			row[last] = row[0]
		}
	}
}

func (s *Synthesizer) ringLoopRParallel(grid *RealGrid, cilm *RealCoeffs, cfg *gridConfig, iEq int) {
	workers := cfg.workers
	if workers > iEq+1 {
		workers = iEq + 1
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			rs := newRingScratchR(cfg.nlong, fourier.NewFFT(cfg.nlong))
			for i := w; i <= iEq; i += workers {
				s.ringR(grid, cilm, cfg, rs, i, iEq)
			}
		}(w)
	}
	wg.Wait()
}

// ringScratchR holds the half-spectrum accumulators for the real synthesis.
type ringScratchR struct {
	coef  []complex128
	coefs []complex128
	plan  *fourier.FFT
}

func newRingScratchR(nlong int, plan *fourier.FFT) *ringScratchR {
	return &ringScratchR{
		coef:  make([]complex128, nlong/2+1),
		coefs: make([]complex128, nlong/2+1),
		plan:  plan,
	}
}

func (s *Synthesizer) ringR(grid *RealGrid, cilm *RealCoeffs, cfg *gridConfig, rs *ringScratchR, i, iEq int) {
	n := cfg.nlat
	theta := math.Pi * float64(i) / float64(n)
	z := math.Cos(theta)
	u := math.Sqrt((1 - z) * (1 + z))

	for k := range rs.coef {
		rs.coef[k] = 0
		rs.coefs[k] = 0
	}
	accumulateRingR(&s.cache, cilm, cfg, z, u, rs.coef, rs.coefs)

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

// accumulateRingR is the real-coefficient counterpart of accumulateRingC.
// Half-spectrum bin m receives (C(l,m) - i*S(l,m))/2 times the Legendre
// value, which the unnormalized inverse real transform turns into
// P*(C*cos(m*phi) + S*sin(m*phi)); bin 0 receives C(l,0) directly.
func accumulateRingR(c *legendreCache, cilm *RealCoeffs, cfg *gridConfig, z, u float64, coef, coefs []complex128) {
	lc := cfg.lmaxComp
	phase := cfg.phase

	cs := c.lmax + 1
	ms := cilm.lmax + 1
	cosP := cilm.data[0 : ms*ms]
	sinP := cilm.data[ms*ms : 2*ms*ms]

	pm2 := cfg.normSeed()
	var accN, accS float64
	accN += cosP[0] * pm2
	accS += cosP[0] * pm2
	pm1 := c.f1[cs] * z * pm2
	accN += cosP[ms] * pm1
	accS -= cosP[ms] * pm1
	for l := 2; l <= lc; l++ {
		p := z*c.f1[l*cs]*pm1 - c.f2[l*cs]*pm2
		t := cosP[l*ms] * p
		accN += t
		accS += t * c.symsign[l*cs]
		pm2, pm1 = pm1, p
	}
	coef[0] += complex(accN, 0)
	coefs[0] += complex(accS, 0)

	// Real harmonics carry a (2 - delta(m,0)) normalization term the
	// complex conventions lack; it enters the chain once, at m = 1.
	delta := math.Sqrt2
	if cfg.norm == Unnormalized {
		delta = 1
	}

	pmm := scaleFactor * cfg.normSeed()
	rescalem := 1.0 / scaleFactor
	for m := 1; m < lc; m++ {
		rescalem *= u
		pmm = phase * pmm * c.sect[m]
		if m == 1 {
			pmm *= delta
		}
		pm2 = pmm

		var reN, imN, reS, imS float64
		reN += cosP[m*ms+m] * pm2
		imN -= sinP[m*ms+m] * pm2
		reS, imS = reN, imN

		pm1 = z * c.f1[(m+1)*cs+m] * pm2
		tc := cosP[(m+1)*ms+m] * pm1
		ts := sinP[(m+1)*ms+m] * pm1
		reN += tc
		imN -= ts
		reS -= tc
		imS += ts

		for l := m + 2; l <= lc; l++ {
			il := l*cs + m
			p := z*c.f1[il]*pm1 - c.f2[il]*pm2
			sym := c.symsign[il]
			tc = cosP[l*ms+m] * p
			ts = sinP[l*ms+m] * p
			reN += tc
			imN -= ts
			reS += tc * sym
			imS -= ts * sym
			pm2, pm1 = pm1, p
		}

		half := 0.5 * rescalem
		coef[m] += complex(reN*half, imN*half)
		coefs[m] += complex(reS*half, imS*half)
	}

	rescalem *= u
	pmm = phase * pmm * c.sect[lc]
	if lc == 1 {
		pmm *= delta
	}
	half := 0.5 * pmm * rescalem
	coef[lc] += complex(cosP[lc*ms+lc]*half, -sinP[lc*ms+lc]*half)
	coefs[lc] += complex(cosP[lc*ms+lc]*half, -sinP[lc*ms+lc]*half)
}
