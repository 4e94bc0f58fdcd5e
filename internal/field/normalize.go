package field

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateField reports a field with zero dynamic range: after the
// magnitude reduction every sample is equal, so min-max rescaling has no
// defined result. Constant fields fail loudly instead of producing NaNs.
var ErrDegenerateField = errors.New("field: degenerate field - field has zero dynamic range")

// Normalize reduces a scalar field to element-wise magnitude and rescales
// it to [0, 1]: the global minimum maps to 0 and the global maximum to 1.
// The input field is not modified.
func Normalize(f *ScalarField) (*NormalizedField, error) {
	n := f.Lattice.Len()
	if n == 0 {
		return nil, ErrDegenerateField
	}

	values := make([]float64, n)
	for row := 0; row < f.Lattice.Rows; row++ {
		for col := 0; col < f.Lattice.Cols; col++ {
			values[f.Lattice.Idx(row, col)] = cmplx.Abs(f.Data.At(row, col))
		}
	}

	lo := floats.Min(values)
	span := floats.Max(values) - lo
	if span == 0 {
		return nil, ErrDegenerateField
	}
	for i := range values {
		values[i] = (values[i] - lo) / span
	}

	return &NormalizedField{
		Lattice: f.Lattice,
		Data:    mat.NewDense(f.Lattice.Rows, f.Lattice.Cols, values),
	}, nil
}
