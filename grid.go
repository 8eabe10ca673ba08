package shtools

import (
	"fmt"
)

// Grid is an equiangular latitude-longitude grid of complex samples. Row 0
// is the north pole band (90 degrees latitude) and rows advance southward;
// column 0 is 0 degrees longitude and columns advance eastward. An extended
// grid carries one extra row (90 degrees south) and column (360 degrees).
type Grid struct {
	data     []complex128
	nlat     int // rows including extension
	nlong    int // columns including extension
	nbase    int // latitude bands before extension, 2*(lmax+1)
	extended bool
}

// NewGrid allocates a zeroed grid for the given truncation degree, sampling
// mode and extension flag. Use it to pre-allocate the target of
// MakeGridDHCInto.
func NewGrid(lmax int, sampling Sampling, extend bool) (*Grid, error) {
	nlat, nlong, err := gridShape("NewGrid", lmax, sampling, extend)
	if err != nil {
		return nil, err
	}
	return &Grid{
		data:     make([]complex128, nlat*nlong),
		nlat:     nlat,
		nlong:    nlong,
		nbase:    latBandsPerDegree * (lmax + 1),
		extended: extend,
	}, nil
}

// NLat returns the number of latitude rows, including any extension row.
func (g *Grid) NLat() int { return g.nlat }

// NLon returns the number of longitude columns, including any extension
// column.
func (g *Grid) NLon() int { return g.nlong }

// Extended reports whether the grid carries the wraparound column and the
// south-pole row.
func (g *Grid) Extended() bool { return g.extended }

// At returns the sample at latitude row i, longitude column j.
func (g *Grid) At(i, j int) complex128 {
	if i < 0 || i >= g.nlat || j < 0 || j >= g.nlong {
		panic(fmt.Sprintf("shtools: grid index (%d,%d) out of range for %d x %d grid", i, j, g.nlat, g.nlong))
	}
	return g.data[i*g.nlong+j]
}

// Row returns latitude row i, backed by the grid's own storage.
func (g *Grid) Row(i int) []complex128 {
	if i < 0 || i >= g.nlat {
		panic(fmt.Sprintf("shtools: grid row %d out of range for %d rows", i, g.nlat))
	}
	return g.data[i*g.nlong : (i+1)*g.nlong]
}

// Lats returns the latitude of each row in degrees, north positive.
func (g *Grid) Lats() []float64 {
	return gridLats(g.nlat, g.nbase)
}

// Lons returns the longitude of each column in degrees east.
func (g *Grid) Lons() []float64 {
	nb := g.nlong
	if g.extended {
		nb--
	}
	return gridLons(g.nlong, nb)
}

// RealGrid is the float64-sample counterpart of Grid produced by the
// real-field synthesis.
type RealGrid struct {
	data     []float64
	nlat     int
	nlong    int
	nbase    int
	extended bool
}

// NewRealGrid allocates a zeroed real grid; see NewGrid.
func NewRealGrid(lmax int, sampling Sampling, extend bool) (*RealGrid, error) {
	nlat, nlong, err := gridShape("NewRealGrid", lmax, sampling, extend)
	if err != nil {
		return nil, err
	}
	return &RealGrid{
		data:     make([]float64, nlat*nlong),
		nlat:     nlat,
		nlong:    nlong,
		nbase:    latBandsPerDegree * (lmax + 1),
		extended: extend,
	}, nil
}

// NLat returns the number of latitude rows, including any extension row.
func (g *RealGrid) NLat() int { return g.nlat }

// NLon returns the number of longitude columns, including any extension
// column.
func (g *RealGrid) NLon() int { return g.nlong }

// Extended reports whether the grid carries the wraparound column and the
// south-pole row.
func (g *RealGrid) Extended() bool { return g.extended }

// At returns the sample at latitude row i, longitude column j.
func (g *RealGrid) At(i, j int) float64 {
	if i < 0 || i >= g.nlat || j < 0 || j >= g.nlong {
		panic(fmt.Sprintf("shtools: grid index (%d,%d) out of range for %d x %d grid", i, j, g.nlat, g.nlong))
	}
	return g.data[i*g.nlong+j]
}

// Row returns latitude row i, backed by the grid's own storage.
func (g *RealGrid) Row(i int) []float64 {
	if i < 0 || i >= g.nlat {
		panic(fmt.Sprintf("shtools: grid row %d out of range for %d rows", i, g.nlat))
	}
	return g.data[i*g.nlong : (i+1)*g.nlong]
}

// Lats returns the latitude of each row in degrees, north positive.
func (g *RealGrid) Lats() []float64 {
	return gridLats(g.nlat, g.nbase)
}

// Lons returns the longitude of each column in degrees east.
func (g *RealGrid) Lons() []float64 {
	nb := g.nlong
	if g.extended {
		nb--
	}
	return gridLons(g.nlong, nb)
}

func gridShape(op string, lmax int, sampling Sampling, extend bool) (nlat, nlong int, err error) {
	if sampling == 0 {
		sampling = SampleEqual
	}
	if sampling != SampleEqual && sampling != SampleDouble {
		return 0, 0, NewOptionError(op, fmt.Sprintf("sampling must be 1 (NxN) or 2 (Nx2N): got %d", int(sampling)))
	}
	if lmax < 0 {
		return 0, 0, NewDimensionError(op, fmt.Sprintf("degree must be non-negative: got %d", lmax))
	}
	if lmax > MaxDegree {
		return 0, 0, NewAllocError(op, fmt.Sprintf("degree %d exceeds the maximum addressable degree %d", lmax, MaxDegree), nil)
	}
	nlat = latBandsPerDegree * (lmax + 1)
	nlong = nlat
	if sampling == SampleDouble {
		nlong = 2 * nlat
	}
	if extend {
		nlat++
		nlong++
	}
	return nlat, nlong, nil
}

func gridLats(nlat, nbase int) []float64 {
	lats := make([]float64, nlat)
	for i := range lats {
		lats[i] = 90.0 - 180.0*float64(i)/float64(nbase)
	}
	return lats
}

func gridLons(nlong, nbase int) []float64 {
	lons := make([]float64, nlong)
	for j := range lons {
		lons[j] = 360.0 * float64(j) / float64(nbase)
	}
	return lons
}
