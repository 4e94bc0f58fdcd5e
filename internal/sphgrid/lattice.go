// Package sphgrid defines the angular lattice shared by field evaluation
// and geometry construction: a regular (elevation, azimuth) grid with a
// single flattening convention (elevation-major, azimuth-minor).
package sphgrid

import (
	"fmt"
	"math"
)

// Angle is one lattice direction in radians.
// Elevation is a colatitude in [0, pi]; Azimuth is in [0, 2*pi).
type Angle struct {
	Elevation float64
	Azimuth   float64
}

// Lattice describes a regular angular grid. Rows index elevation from 0 to
// pi inclusive; Cols index azimuth from 0 up to (but excluding) 2*pi.
// The zero value is not usable; construct via Default or New.
type Lattice struct {
	Rows int
	Cols int
}

// Default returns the canonical 1-degree lattice: 181 elevation rows by
// 360 azimuth columns, 65160 directions.
func Default() Lattice {
	return Lattice{Rows: 181, Cols: 360}
}

// New returns a lattice at 1/oversize degree spacing. oversize must be >= 1;
// oversize == 1 yields Default(). Oversized lattices are only suitable for
// external consumption: the geometry builders accept the default lattice.
func New(oversize int) (Lattice, error) {
	if oversize < 1 {
		return Lattice{}, fmt.Errorf("sphgrid: oversize must be >= 1, got %d", oversize)
	}
	return Lattice{Rows: 180*oversize + 1, Cols: 360 * oversize}, nil
}

// Len returns the number of lattice directions.
func (l Lattice) Len() int { return l.Rows * l.Cols }

// Idx maps (row, col) to the flat index.
func (l Lattice) Idx(row, col int) int { return row*l.Cols + col }

// RowCol inverts Idx.
func (l Lattice) RowCol(idx int) (row, col int) { return idx / l.Cols, idx % l.Cols }

// Elevation returns the colatitude of a row, spanning [0, pi] over Rows
// uniform steps.
func (l Lattice) Elevation(row int) float64 {
	return math.Pi * float64(row) / float64(l.Rows-1)
}

// Azimuth returns the azimuth of a column, spanning [0, 2*pi) over Cols
// uniform steps.
func (l Lattice) Azimuth(col int) float64 {
	return 2 * math.Pi * float64(col) / float64(l.Cols)
}

// Angles returns every lattice direction in flat-index order. The slice is
// recomputed on each call; callers own the result.
func (l Lattice) Angles() []Angle {
	angles := make([]Angle, l.Len())
	for row := 0; row < l.Rows; row++ {
		el := l.Elevation(row)
		for col := 0; col < l.Cols; col++ {
			angles[l.Idx(row, col)] = Angle{Elevation: el, Azimuth: l.Azimuth(col)}
		}
	}
	return angles
}

// GenerateAngles returns the 65160 directions of the default 1-degree
// lattice in flat-index order.
func GenerateAngles() []Angle {
	return Default().Angles()
}
