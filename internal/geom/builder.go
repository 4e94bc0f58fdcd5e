package geom

import (
	"fmt"
	"image/color"

	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// Builder constructs geometry from normalized fields. The zero value uses
// the Viridis colormap; set Colormap to inject another mapping.
type Builder struct {
	Colormap Colormap
}

func (b Builder) cmap() Colormap {
	if b.Colormap != nil {
		return b.Colormap
	}
	return Viridis
}

// The builders assume the 1-degree lattice; oversized fields are for
// external consumption only.
func checkLattice(f *field.NormalizedField) error {
	if f.Lattice != sphgrid.Default() {
		return fmt.Errorf("geom: field lattice %dx%d is not the 181x360 render lattice",
			f.Lattice.Rows, f.Lattice.Cols)
	}
	return nil
}

// GenVisual builds the geometry for a style. StyleFlat fails with
// ErrFlatNotImplemented; offset and scale apply to StyleShape only.
func (b Builder) GenVisual(f *field.NormalizedField, style Style, colorize bool, offset, scale float64) (Geometry, error) {
	switch style {
	case StyleShape:
		return b.GenShape(f, offset, scale, colorize)
	case StyleSphere:
		return b.GenSphere(f, colorize)
	case StyleScatter:
		return b.GenScatter(f, colorize)
	case StyleFlat:
		return nil, ErrFlatNotImplemented
	}
	return nil, fmt.Errorf("geom: style %v not available, try sphere, flat, shape or scatter", style)
}

// GenShape builds a surface whose radius at each lattice direction is
// offset + scale * field value.
func (b Builder) GenShape(f *field.NormalizedField, offset, scale float64, colorize bool) (*Mesh, error) {
	return b.mesh(f, colorize, func(v float64) float64 { return offset + scale*v })
}

// GenSphere builds a unit sphere; the field drives vertex colors only.
func (b Builder) GenSphere(f *field.NormalizedField, colorize bool) (*Mesh, error) {
	return b.mesh(f, colorize, func(float64) float64 { return 1 })
}

func (b Builder) mesh(f *field.NormalizedField, colorize bool, radius func(v float64) float64) (*Mesh, error) {
	if err := checkLattice(f); err != nil {
		return nil, err
	}

	l := f.Lattice
	m := &Mesh{Lattice: l, Vertices: make([]Vec3, l.Len())}
	if colorize {
		m.Colors = make([]color.NRGBA, l.Len())
	}
	cm := b.cmap()

	for row := 0; row < l.Rows; row++ {
		el := l.Elevation(row)
		for col := 0; col < l.Cols; col++ {
			idx := l.Idx(row, col)
			v := f.At(row, col)
			x, y, z := sphgrid.SphericalToCartesian(el, l.Azimuth(col), radius(v))
			m.Vertices[idx] = Vec3{X: x, Y: y, Z: z}
			if colorize {
				m.Colors[idx] = cm(v)
			}
		}
	}
	return m, nil
}

// GenScatter builds a point cloud: the lattice directions with the field
// value as radius, 65160 points on the render lattice. Without colorize
// every point renders in a fixed black.
func (b Builder) GenScatter(f *field.NormalizedField, colorize bool) (*PointSet, error) {
	if err := checkLattice(f); err != nil {
		return nil, err
	}

	angles := f.Lattice.Angles()
	ps := &PointSet{
		Points: make([]Vec3, len(angles)),
		Base:   color.NRGBA{A: 0xff},
	}
	if colorize {
		ps.Colors = make([]color.NRGBA, len(angles))
	}
	cm := b.cmap()

	for i, ang := range angles {
		v := f.AtIdx(i)
		x, y, z := sphgrid.SphericalToCartesian(ang.Elevation, ang.Azimuth, v)
		ps.Points[i] = Vec3{X: x, Y: y, Z: z}
		if colorize {
			ps.Colors[i] = cm(v)
		}
	}
	return ps, nil
}
