package shtools

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// legendreOracle evaluates the associated Legendre functions at z for every
// (l, m) with l <= lmax, independently of the synthesis cache: the raw
// unnormalized recursion runs first and explicit factorial-ratio scaling is
// applied afterwards. Values follow the complex-harmonic conventions (no
// (2 - delta(m,0)) term). Only usable at low degree, where the factorials
// stay representable.
func legendreOracle(norm Normalization, lmax int, z float64, csphase int) [][]float64 {
	u := math.Sqrt((1 - z) * (1 + z))

	// Unnormalized values first.
	p := make([][]float64, lmax+1)
	for l := range p {
		p[l] = make([]float64, l+1)
	}
	p[0][0] = 1
	for m := 1; m <= lmax; m++ {
		p[m][m] = p[m-1][m-1] * float64(2*m-1) * u
	}
	for m := 0; m < lmax; m++ {
		p[m+1][m] = z * float64(2*m+1) * p[m][m]
		for l := m + 2; l <= lmax; l++ {
			p[l][m] = (z*float64(2*l-1)*p[l-1][m] - float64(l+m-1)*p[l-2][m]) /
				float64(l-m)
		}
	}

	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			scale := 1.0
			switch norm {
			case FourPi, Orthonormal:
				scale = math.Sqrt(float64(2*l+1) * factorialRatio(l, m))
				if norm == Orthonormal {
					scale /= math.Sqrt(4 * math.Pi)
				}
			case Schmidt:
				scale = math.Sqrt(factorialRatio(l, m))
			case Unnormalized:
				scale = 1
			}
			if csphase == -1 && m%2 == 1 {
				scale = -scale
			}
			p[l][m] *= scale
		}
	}
	return p
}

// factorialRatio returns (l-m)!/(l+m)!.
func factorialRatio(l, m int) float64 {
	r := 1.0
	for k := l - m + 1; k <= l+m; k++ {
		r /= float64(k)
	}
	return r
}

// directFieldC evaluates the complex field at (theta, phi) by the plain
// double sum over degrees and orders, with no symmetry exploitation and no
// Fourier transform.
func directFieldC(cilm *Coeffs, lmax int, norm Normalization, csphase int, theta, phi float64) complex128 {
	plm := legendreOracle(norm, lmax, math.Cos(theta), csphase)
	var sum complex128
	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			sum += cilm.At(PlanePos, l, m) * complex(plm[l][m], 0) *
				cmplx.Exp(complex(0, float64(m)*phi))
			if m > 0 {
				negm := 1.0
				if m%2 == 1 {
					negm = -1
				}
				sum += cilm.At(PlaneNeg, l, m) * complex(negm*plm[l][m], 0) *
					cmplx.Exp(complex(0, -float64(m)*phi))
			}
		}
	}
	return sum
}

// directFieldR evaluates the real field at (theta, phi) by the plain double
// sum over cosine and sine coefficients. Real harmonics include the
// (2 - delta(m,0)) normalization term for the normalized conventions.
func directFieldR(cilm *RealCoeffs, lmax int, norm Normalization, csphase int, theta, phi float64) float64 {
	plm := legendreOracle(norm, lmax, math.Cos(theta), csphase)
	delta := math.Sqrt2
	if norm == Unnormalized {
		delta = 1
	}
	sum := 0.0
	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			p := plm[l][m]
			if m > 0 {
				p *= delta
			}
			sum += p * (cilm.At(PlanePos, l, m)*math.Cos(float64(m)*phi) +
				cilm.At(PlaneNeg, l, m)*math.Sin(float64(m)*phi))
		}
	}
	return sum
}

// randomCoeffs fills a complex coefficient set with standard normal draws.
func randomCoeffs(lmax int, seed int64) *Coeffs {
	rng := rand.New(rand.NewSource(seed))
	cilm, err := NewCoeffs(lmax)
	if err != nil {
		panic(err)
	}
	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			cilm.SetCoeff(PlanePos, l, m, complex(rng.NormFloat64(), rng.NormFloat64()))
			if m > 0 {
				cilm.SetCoeff(PlaneNeg, l, m, complex(rng.NormFloat64(), rng.NormFloat64()))
			}
		}
	}
	return cilm
}

// randomRealCoeffs fills a real coefficient set with standard normal draws.
func randomRealCoeffs(lmax int, seed int64) *RealCoeffs {
	rng := rand.New(rand.NewSource(seed))
	cilm, err := NewRealCoeffs(lmax)
	if err != nil {
		panic(err)
	}
	for l := 0; l <= lmax; l++ {
		for m := 0; m <= l; m++ {
			cilm.SetCoeff(PlanePos, l, m, rng.NormFloat64())
			if m > 0 {
				cilm.SetCoeff(PlaneNeg, l, m, rng.NormFloat64())
			}
		}
	}
	return cilm
}
