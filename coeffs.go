package shtools

import (
	"fmt"
)

// Plane identifiers for the two sign-of-order coefficient planes.
const (
	// PlanePos holds coefficients of non-negative orders m >= 0
	PlanePos = 0
	// PlaneNeg holds coefficients of negative orders -m
	PlaneNeg = 1
)

// Coeffs holds a triangular set of complex spherical-harmonic coefficients
// to degree Lmax: two sign-of-order planes, each (lmax+1) x (lmax+1), with
// entries only meaningful for order <= degree. The backing storage is flat
// and row-major within each plane.
//
// A Coeffs is read-only to the synthesis core.
type Coeffs struct {
	lmax int
	data []complex128
}

// NewCoeffs returns a zeroed coefficient set truncated at degree lmax.
func NewCoeffs(lmax int) (*Coeffs, error) {
	if lmax < 0 {
		return nil, NewDimensionError("NewCoeffs", fmt.Sprintf("degree must be non-negative: got %d", lmax))
	}
	if lmax > MaxDegree {
		return nil, NewAllocError("NewCoeffs", fmt.Sprintf("degree %d exceeds the maximum addressable degree %d", lmax, MaxDegree), nil)
	}
	side := lmax + 1
	return &Coeffs{lmax: lmax, data: make([]complex128, 2*side*side)}, nil
}

// CoeffsFromSlice wraps caller-owned flat storage as a coefficient set. The
// slice must hold exactly 2*(lmax+1)*(lmax+1) entries: plane, then degree,
// then order, row-major. No copy is made.
func CoeffsFromSlice(data []complex128, lmax int) (*Coeffs, error) {
	if lmax < 0 {
		return nil, NewDimensionError("CoeffsFromSlice", fmt.Sprintf("degree must be non-negative: got %d", lmax))
	}
	side := lmax + 1
	if len(data) != 2*side*side {
		return nil, NewDimensionError("CoeffsFromSlice", fmt.Sprintf(
			"backing slice holds %d entries but degree %d requires %d", len(data), lmax, 2*side*side))
	}
	return &Coeffs{lmax: lmax, data: data}, nil
}

// Lmax returns the truncation degree of the set.
func (c *Coeffs) Lmax() int { return c.lmax }

func (c *Coeffs) index(plane, l, m int) int {
	if plane < 0 || plane > 1 || l < 0 || l > c.lmax || m < 0 || m > l {
		panic(fmt.Sprintf("shtools: coefficient index (%d,%d,%d) out of range for degree %d", plane, l, m, c.lmax))
	}
	side := c.lmax + 1
	return plane*side*side + l*side + m
}

// At returns the coefficient for (plane, degree l, order m). PlanePos holds
// the weight of Y(l,m); PlaneNeg holds the weight of Y(l,-m).
func (c *Coeffs) At(plane, l, m int) complex128 {
	return c.data[c.index(plane, l, m)]
}

// SetCoeff sets the coefficient for (plane, degree l, order m).
func (c *Coeffs) SetCoeff(plane, l, m int, v complex128) {
	c.data[c.index(plane, l, m)] = v
}

// RealCoeffs holds a triangular set of real spherical-harmonic coefficients:
// PlanePos carries the cosine terms C(l,m), PlaneNeg the sine terms S(l,m).
// Layout matches Coeffs with float64 entries.
type RealCoeffs struct {
	lmax int
	data []float64
}

// NewRealCoeffs returns a zeroed real coefficient set truncated at lmax.
func NewRealCoeffs(lmax int) (*RealCoeffs, error) {
	if lmax < 0 {
		return nil, NewDimensionError("NewRealCoeffs", fmt.Sprintf("degree must be non-negative: got %d", lmax))
	}
	if lmax > MaxDegree {
		return nil, NewAllocError("NewRealCoeffs", fmt.Sprintf("degree %d exceeds the maximum addressable degree %d", lmax, MaxDegree), nil)
	}
	side := lmax + 1
	return &RealCoeffs{lmax: lmax, data: make([]float64, 2*side*side)}, nil
}

// RealCoeffsFromSlice wraps caller-owned flat storage; see CoeffsFromSlice.
func RealCoeffsFromSlice(data []float64, lmax int) (*RealCoeffs, error) {
	if lmax < 0 {
		return nil, NewDimensionError("RealCoeffsFromSlice", fmt.Sprintf("degree must be non-negative: got %d", lmax))
	}
	side := lmax + 1
	if len(data) != 2*side*side {
		return nil, NewDimensionError("RealCoeffsFromSlice", fmt.Sprintf(
			"backing slice holds %d entries but degree %d requires %d", len(data), lmax, 2*side*side))
	}
	return &RealCoeffs{lmax: lmax, data: data}, nil
}

// Lmax returns the truncation degree of the set.
func (c *RealCoeffs) Lmax() int { return c.lmax }

func (c *RealCoeffs) index(plane, l, m int) int {
	if plane < 0 || plane > 1 || l < 0 || l > c.lmax || m < 0 || m > l {
		panic(fmt.Sprintf("shtools: coefficient index (%d,%d,%d) out of range for degree %d", plane, l, m, c.lmax))
	}
	side := c.lmax + 1
	return plane*side*side + l*side + m
}

// At returns the coefficient for (plane, degree l, order m).
func (c *RealCoeffs) At(plane, l, m int) float64 {
	return c.data[c.index(plane, l, m)]
}

// SetCoeff sets the coefficient for (plane, degree l, order m).
func (c *RealCoeffs) SetCoeff(plane, l, m int, v float64) {
	c.data[c.index(plane, l, m)] = v
}
