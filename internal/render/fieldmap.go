package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/geom"
)

// fieldGrid adapts a normalized field to plotter.GridXYZ: azimuth on X,
// elevation on Y, both in degrees.
type fieldGrid struct {
	f *field.NormalizedField
}

func (g fieldGrid) Dims() (c, r int)   { return g.f.Lattice.Cols, g.f.Lattice.Rows }
func (g fieldGrid) Z(c, r int) float64 { return g.f.At(r, c) }
func (g fieldGrid) X(c int) float64    { return g.f.Lattice.Azimuth(c) * 180 / math.Pi }
func (g fieldGrid) Y(r int) float64    { return g.f.Lattice.Elevation(r) * 180 / math.Pi }

// cmapPalette adapts a geom.Colormap to gonum/plot's palette interface.
type cmapPalette struct {
	cm geom.Colormap
	n  int
}

func (p cmapPalette) Colors() []color.Color {
	cs := make([]color.Color, p.n)
	for i := range cs {
		cs[i] = p.cm(float64(i) / float64(p.n-1))
	}
	return cs
}

// FieldMap plots a normalized field as a 2D elevation-by-azimuth heat map,
// the flat companion view to the 3D projections.
func FieldMap(f *field.NormalizedField, cm geom.Colormap, title string) *plot.Plot {
	if cm == nil {
		cm = geom.Viridis
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "azimuth (deg)"
	p.Y.Label.Text = "elevation (deg)"

	hm := plotter.NewHeatMap(fieldGrid{f: f}, cmapPalette{cm: cm, n: 256})
	p.Add(hm)
	return p
}

// SaveFieldMap writes the heat map as a PNG file.
func SaveFieldMap(f *field.NormalizedField, cm geom.Colormap, title, path string) error {
	return FieldMap(f, cm, title).Save(8*vg.Inch, 4*vg.Inch, path)
}
