package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// Options configure MakeMTX.
type Options struct {
	// Order is the spherical-harmonic truncation degree.
	Order int
	// KRIndex selects the frequency bin (column) of the coefficient and
	// filter matrices.
	KRIndex int
	// Oversize multiplies the lattice resolution. Oversize == 1 produces
	// the 181x360 field the geometry builders require; larger values are
	// for external consumers only.
	Oversize int
}

// DefaultOptions returns the conventional settings: order 3, frequency
// bin 1, no oversizing.
func DefaultOptions() Options {
	return Options{Order: 3, KRIndex: 1, Oversize: 1}
}

// MakeMTX evaluates the plane-wave decomposition of one frequency bin on
// the angular lattice and returns it as a lattice-shaped complex matrix
// (181x360 directions at the default resolution).
//
// coefficients is indexed (harmonic, frequency bin); filters is indexed
// (degree, frequency bin). Decomposer errors, such as a coefficient set
// too small for the requested order, propagate unchanged.
func MakeMTX(dec Decomposer, coefficients, filters *mat.CDense, opts Options) (*ScalarField, error) {
	lattice, err := sphgrid.New(opts.Oversize)
	if err != nil {
		return nil, err
	}

	coeffCol, err := column(coefficients, opts.KRIndex, "coefficients")
	if err != nil {
		return nil, err
	}
	filterCol, err := column(filters, opts.KRIndex, "filters")
	if err != nil {
		return nil, err
	}

	flat, err := dec.Decompose(opts.Order, lattice.Angles(), coeffCol, filterCol)
	if err != nil {
		return nil, err
	}
	if len(flat) != lattice.Len() {
		return nil, fmt.Errorf("field: decomposer returned %d values for %d directions",
			len(flat), lattice.Len())
	}

	// The decomposer output is in lattice flat order, so it is already the
	// row-major backing of the field matrix.
	return &ScalarField{
		Lattice: lattice,
		Data:    mat.NewCDense(lattice.Rows, lattice.Cols, flat),
	}, nil
}

func column(m *mat.CDense, idx int, name string) ([]complex128, error) {
	rows, cols := m.Dims()
	if idx < 0 || idx >= cols {
		return nil, fmt.Errorf("field: kr index %d out of range for %s with %d frequency bins",
			idx, name, cols)
	}
	col := make([]complex128, rows)
	for r := 0; r < rows; r++ {
		col[r] = m.At(r, idx)
	}
	return col, nil
}
