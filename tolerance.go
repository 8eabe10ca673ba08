package shtools

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64
}

// DefaultTolerance returns the tolerance used for low-degree synthesis
// cross-checks.
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-12,
		RelTol: 1e-10,
	}
}

// RelaxedTolerance returns the tolerance for long accumulations at high
// degree.
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-9,
		RelTol: 1e-7,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance.
// NaN never compares equal; matching infinities do.
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	// Any remaining infinity is unmatched; no finite tolerance covers it.
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}
	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*tol.RelTol
}

// Complex128NearEqual checks if two complex128 values are equal within
// tolerance, measured by modulus of the difference.
func Complex128NearEqual(a, b complex128, tol ToleranceConfig) bool {
	if a == b {
		return true
	}
	if cmplx.IsInf(a) || cmplx.IsInf(b) {
		return false
	}
	diff := cmplx.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}
	larger := math.Max(cmplx.Abs(a), cmplx.Abs(b))
	return diff <= larger*tol.RelTol
}

// VerificationResult summarizes an element-wise comparison of two sample
// sets.
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat64 compares two float64 slices and returns detailed results.
func VerifyFloat64(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}
	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}
	for i := range expected {
		if !Float64NearEqual(expected[i], actual[i], tol) {
			result.record(i, math.Abs(expected[i]-actual[i]), math.Abs(expected[i]))
		}
	}
	return result
}

// VerifyComplex128 compares two complex128 slices and returns detailed
// results.
func VerifyComplex128(expected, actual []complex128, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}
	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}
	for i := range expected {
		if !Complex128NearEqual(expected[i], actual[i], tol) {
			result.record(i, cmplx.Abs(expected[i]-actual[i]), cmplx.Abs(expected[i]))
		}
	}
	return result
}

func (r *VerificationResult) record(i int, absDiff, expectedMag float64) {
	r.NumErrors++
	if r.FirstError == -1 {
		r.FirstError = i
	}
	if absDiff > r.MaxAbsError {
		r.MaxAbsError = absDiff
	}
	if expectedMag != 0 {
		relDiff := absDiff / expectedMag
		if relDiff > r.MaxRelError {
			r.MaxRelError = relDiff
		}
	}
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}
	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError,
		r.FirstError)
}
