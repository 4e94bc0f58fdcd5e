// Package spharm evaluates complex spherical harmonics and plane-wave
// decompositions of spatial Fourier coefficient sets.
package spharm

import (
	"math"
	"math/cmplx"
)

// legendre returns the associated Legendre function P_n^m(x) for m >= 0,
// Condon-Shortley phase included, via the standard upward recurrence.
func legendre(n, m int, x float64) float64 {
	// Seed: P_m^m = (-1)^m (2m-1)!! (1-x^2)^(m/2).
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if n == m {
		return pmm
	}

	// P_{m+1}^m = x (2m+1) P_m^m.
	pmmp1 := x * float64(2*m+1) * pmm
	if n == m+1 {
		return pmmp1
	}

	// (k-m) P_k^m = x (2k-1) P_{k-1}^m - (k+m-1) P_{k-2}^m.
	var pkm float64
	for k := m + 2; k <= n; k++ {
		pkm = (x*float64(2*k-1)*pmmp1 - float64(k+m-1)*pmm) / float64(k-m)
		pmm = pmmp1
		pmmp1 = pkm
	}
	return pkm
}

// Harmonic returns the complex spherical harmonic Y_n^m evaluated at a
// direction (elevation as colatitude, azimuth, radians). Orthonormal
// normalization: integral of |Y_n^m|^2 over the sphere is 1.
func Harmonic(n, m int, elevation, azimuth float64) complex128 {
	am := m
	if am < 0 {
		am = -am
	}

	// sqrt((2n+1)/(4pi) * (n-|m|)!/(n+|m|)!) via log-gamma to stay finite
	// at high orders.
	lgNum, _ := math.Lgamma(float64(n - am + 1))
	lgDen, _ := math.Lgamma(float64(n + am + 1))
	norm := math.Sqrt(float64(2*n+1) / (4 * math.Pi) * math.Exp(lgNum-lgDen))

	y := complex(norm*legendre(n, am, math.Cos(elevation)), 0) *
		cmplx.Exp(complex(0, float64(am)*azimuth))

	if m < 0 {
		y = cmplx.Conj(y)
		if am%2 == 1 {
			y = -y
		}
	}
	return y
}

// HarmonicIndex maps (degree n, order m) to the flat coefficient index
// n*n + n + m used by the coefficient sets (degree-major ordering).
func HarmonicIndex(n, m int) int { return n*n + n + m }

// NumHarmonics returns the number of harmonics up to and including a
// truncation degree: (order+1)^2.
func NumHarmonics(order int) int { return (order + 1) * (order + 1) }
