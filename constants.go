package shtools

// Recursion scaling parameters
const (
	// Seed multiplier for the sectorial Legendre chain. Shrinking the seed
	// keeps the unscaled recursion values representable to very high degree;
	// the compensating rescale multiplier is applied when an order's
	// accumulation completes.
	scaleFactor = 1e-280

	// Highest truncation degree the normalized conventions remain accurate
	// to under the scaled recursion.
	MaxStableDegree = 2800

	// Highest truncation degree the unnormalized convention remains accurate
	// to. Beyond this the sectorial values overflow double precision.
	MaxStableDegreeUnnormalized = 15
)

// Allocation guard
const (
	// MaxDegree bounds the truncation degree a single call will attempt to
	// allocate recursion tables and grid storage for.
	MaxDegree = 1 << 20
)

// Grid layout
const (
	// Latitude rows per degree band: N = latBandsPerDegree * (lmax + 1)
	latBandsPerDegree = 2
)
