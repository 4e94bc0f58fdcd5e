// Package coeffio reads and writes coefficient sets: spatial Fourier
// coefficients plus their modal radial filters, as produced by an
// upstream spherical-harmonic analysis.
package coeffio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Complex is a complex value serialized as a [real, imaginary] pair.
type Complex [2]float64

// Value returns the native complex value.
func (c Complex) Value() complex128 { return complex(c[0], c[1]) }

// Set is one analysis result: coefficients indexed (harmonic, frequency
// bin) and radial filters indexed (degree, frequency bin). Both share the
// frequency-bin axis.
type Set struct {
	Coefficients  [][]Complex `json:"coefficients"`
	RadialFilters [][]Complex `json:"radial_filters"`
}

// Load decodes a Set from JSON.
func Load(r io.Reader) (*Set, error) {
	var s Set
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("coeffio: decode: %w", err)
	}
	return &s, nil
}

// LoadFile decodes a Set from a JSON file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coeffio: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Write encodes the Set as indented JSON.
func (s *Set) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("coeffio: encode: %w", err)
	}
	return nil
}

// Matrices validates the set's shape and returns it as complex matrices.
// Both arrays must be rectangular, non-empty, and agree on the number of
// frequency bins.
func (s *Set) Matrices() (coefficients, filters *mat.CDense, err error) {
	coefficients, err = matrix(s.Coefficients, "coefficients")
	if err != nil {
		return nil, nil, err
	}
	filters, err = matrix(s.RadialFilters, "radial_filters")
	if err != nil {
		return nil, nil, err
	}

	_, coeffBins := coefficients.Dims()
	_, filterBins := filters.Dims()
	if coeffBins != filterBins {
		return nil, nil, fmt.Errorf("coeffio: coefficients have %d frequency bins, radial_filters have %d",
			coeffBins, filterBins)
	}
	return coefficients, filters, nil
}

func matrix(rows [][]Complex, name string) (*mat.CDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("coeffio: %s is empty", name)
	}
	cols := len(rows[0])
	m := mat.NewCDense(len(rows), cols, nil)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("coeffio: %s row %d has %d bins, row 0 has %d",
				name, r, len(row), cols)
		}
		for c, v := range row {
			m.Set(r, c, v.Value())
		}
	}
	return m, nil
}
