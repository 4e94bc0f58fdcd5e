// Package field evaluates plane-wave decompositions onto the angular
// lattice and normalizes the resulting scalar fields for display.
package field

import (
	"gonum.org/v1/gonum/mat"

	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// ScalarField is one frequency bin of a plane-wave decomposition sampled
// on an angular lattice. Values are complex in general; row/column layout
// follows the lattice (rows = elevation, cols = azimuth).
type ScalarField struct {
	Lattice sphgrid.Lattice
	Data    *mat.CDense
}

// At returns the field value at a lattice cell.
func (f *ScalarField) At(row, col int) complex128 { return f.Data.At(row, col) }

// NormalizedField is a magnitude-reduced, min-max-rescaled scalar field:
// every value lies in [0, 1], with 0 and 1 both attained. It serves as
// both geometric displacement and color intensity.
type NormalizedField struct {
	Lattice sphgrid.Lattice
	Data    *mat.Dense
}

// At returns the normalized value at a lattice cell.
func (f *NormalizedField) At(row, col int) float64 { return f.Data.At(row, col) }

// AtIdx returns the normalized value at a flat lattice index.
func (f *NormalizedField) AtIdx(idx int) float64 {
	row, col := f.Lattice.RowCol(idx)
	return f.Data.At(row, col)
}

// Decomposer evaluates a truncated spherical-harmonic expansion at a list
// of directions. One frequency bin of coefficients (degree-major order)
// and per-degree radial filters are supplied; the result is one complex
// value per direction, in the same order.
type Decomposer interface {
	Decompose(order int, angles []sphgrid.Angle, coeffs, filters []complex128) ([]complex128, error)
}
