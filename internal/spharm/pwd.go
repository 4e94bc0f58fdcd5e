package spharm

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// PWD evaluates plane-wave decompositions: a truncated spherical-harmonic
// expansion, weighted per degree by a radial filter, summed at each
// requested direction. The zero value is ready to use.
type PWD struct{}

// Decompose evaluates the expansion at every direction in angles.
//
// coeffs holds one frequency bin of spatial Fourier coefficients in
// degree-major order (index n*n+n+m) and must cover at least
// (order+1)^2 entries; filters holds the matching radial filter bin with
// at least order+1 entries. Shape mismatches are reported as errors and
// are the caller's to surface unchanged.
func (PWD) Decompose(order int, angles []sphgrid.Angle, coeffs, filters []complex128) ([]complex128, error) {
	if order < 0 {
		return nil, fmt.Errorf("spharm: order must be >= 0, got %d", order)
	}
	nh := NumHarmonics(order)
	if len(coeffs) < nh {
		return nil, fmt.Errorf("spharm: %d coefficients cover order %d, need %d for order %d",
			len(coeffs), maxOrder(len(coeffs)), nh, order)
	}
	if len(filters) < order+1 {
		return nil, fmt.Errorf("spharm: %d radial filters, need %d for order %d",
			len(filters), order+1, order)
	}
	if len(angles) == 0 {
		return nil, nil
	}

	// Weight each harmonic by its coefficient and per-degree filter, then
	// evaluate as one matrix-vector product: out = Y * w.
	w := mat.NewCDense(nh, 1, nil)
	for n := 0; n <= order; n++ {
		for m := -n; m <= n; m++ {
			idx := HarmonicIndex(n, m)
			w.Set(idx, 0, filters[n]*coeffs[idx])
		}
	}

	y := mat.NewCDense(len(angles), nh, nil)
	for a, ang := range angles {
		for n := 0; n <= order; n++ {
			for m := -n; m <= n; m++ {
				y.Set(a, HarmonicIndex(n, m), Harmonic(n, m, ang.Elevation, ang.Azimuth))
			}
		}
	}

	result := make([]complex128, len(angles))
	cblas128.Gemv(blas.NoTrans, 1, y.RawCMatrix(),
		cblas128.Vector{N: nh, Inc: 1, Data: w.RawCMatrix().Data},
		0, cblas128.Vector{N: len(angles), Inc: 1, Data: result})
	return result, nil
}

// maxOrder returns the largest truncation degree a coefficient count can
// fully serve.
func maxOrder(numCoeffs int) int {
	order := -1
	for NumHarmonics(order+1) <= numCoeffs {
		order++
	}
	return order
}
