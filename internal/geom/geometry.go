package geom

import (
	"image/color"
	"math"

	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// Vec3 is a Cartesian position.
type Vec3 struct {
	X, Y, Z float64
}

// Length returns the distance from the origin.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Geometry is a renderable object: either a lattice-topology Mesh or a
// connectivity-free PointSet. The renderer owns a Geometry once handed
// off; builders retain no reference.
type Geometry interface {
	geometry()
}

// Mesh is a grid of vertices with the topology of its lattice: vertex
// (row, col) lives at Vertices[Lattice.Idx(row, col)], and quad
// connectivity between lattice neighbors is implied. Colors, when
// non-nil, holds one color per vertex in the same order.
type Mesh struct {
	Lattice  sphgrid.Lattice
	Vertices []Vec3
	Colors   []color.NRGBA
}

func (*Mesh) geometry() {}

// VertexAt returns the vertex at a lattice cell.
func (m *Mesh) VertexAt(row, col int) Vec3 {
	return m.Vertices[m.Lattice.Idx(row, col)]
}

// PointSet is an unconnected point cloud. Colors, when non-nil, holds one
// color per point; otherwise every point renders in Base.
type PointSet struct {
	Points []Vec3
	Colors []color.NRGBA
	Base   color.NRGBA
}

func (*PointSet) geometry() {}
