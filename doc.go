// Package shtools provides spherical-harmonic synthesis on equiangular
// latitude-longitude grids.
//
// The core operation is the inverse spherical-harmonic transform: given a
// truncated set of spherical-harmonic coefficients describing a scalar field
// on a sphere, MakeGridDHC (complex fields) and MakeGridDH (real fields)
// evaluate the field on a Driscoll-Healy sampled grid with N = 2*(lmax+1)
// latitude bands and either N or 2N longitude bands.
//
// Associated Legendre functions are evaluated with the Holmes-Featherstone
// scaled three-term recursion, which keeps the synthesis numerically stable
// to degree 2800 and beyond for the normalized conventions. Per-latitude
// Fourier synthesis uses the gonum dsp/fourier transforms, and north/south
// hemisphere rings are produced from a single recursion pass by splitting
// accumulation on the parity of degree minus order.
//
// A Synthesizer caches the recursion coefficient tables and FFT plans across
// calls. It is not safe for concurrent use; give each worker goroutine its
// own Synthesizer.
package shtools
