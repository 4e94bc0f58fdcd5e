package geom

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/sphgrid"
)

// normField builds a normalized field on the render lattice from a value
// function over (row, col).
func normField(fn func(row, col int) float64) *field.NormalizedField {
	l := sphgrid.Default()
	data := mat.NewDense(l.Rows, l.Cols, nil)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			data.Set(row, col, fn(row, col))
		}
	}
	return &field.NormalizedField{Lattice: l, Data: data}
}

func rampField() *field.NormalizedField {
	l := sphgrid.Default()
	return normField(func(row, col int) float64 {
		return float64(l.Idx(row, col)) / float64(l.Len()-1)
	})
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for tag, want := range map[string]Style{
		"shape":   StyleShape,
		"sphere":  StyleSphere,
		"scatter": StyleScatter,
		"flat":    StyleFlat,
	} {
		got, err := ParseStyle(tag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, tag, got.String())
	}

	_, err := ParseStyle("donut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donut")
	// The error names the valid tags.
	assert.Contains(t, err.Error(), "sphere")
	assert.Contains(t, err.Error(), "scatter")
}

func TestGenSphereUnitRadius(t *testing.T) {
	t.Parallel()

	f := rampField()
	m, err := Builder{}.GenSphere(f, true)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 65160)
	require.Len(t, m.Colors, 65160)

	for i, v := range m.Vertices {
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("vertex %d has radius %v, want 1", i, v.Length())
		}
	}

	// Field values drive color only: extremes differ.
	assert.NotEqual(t, m.Colors[0], m.Colors[65159])
	assert.Equal(t, Viridis(0), m.Colors[0])
	assert.Equal(t, Viridis(1), m.Colors[65159])
}

func TestGenSphereWithoutColors(t *testing.T) {
	t.Parallel()

	m, err := Builder{}.GenSphere(rampField(), false)
	require.NoError(t, err)
	assert.Nil(t, m.Colors)
}

func TestGenShapeSinglePeak(t *testing.T) {
	t.Parallel()

	const peakRow, peakCol = 45, 90
	f := normField(func(row, col int) float64 {
		if row == peakRow && col == peakCol {
			return 1
		}
		return 0
	})

	m, err := Builder{}.GenShape(f, 0, 1, false)
	require.NoError(t, err)

	l := f.Lattice
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			r := m.VertexAt(row, col).Length()
			if row == peakRow && col == peakCol {
				continue
			}
			if r > 1e-12 {
				t.Fatalf("vertex (%d,%d) has radius %v, want 0", row, col, r)
			}
		}
	}

	peak := m.VertexAt(peakRow, peakCol)
	el := l.Elevation(peakRow)
	az := l.Azimuth(peakCol)
	assert.InDelta(t, 1, peak.Length(), 1e-12)
	assert.InDelta(t, math.Sin(el)*math.Cos(az), peak.X, 1e-12)
	assert.InDelta(t, math.Sin(el)*math.Sin(az), peak.Y, 1e-12)
	assert.InDelta(t, math.Cos(el), peak.Z, 1e-12)
}

func TestGenShapeOffsetAndScale(t *testing.T) {
	t.Parallel()

	f := normField(func(row, col int) float64 {
		if row == 0 && col == 0 {
			return 1
		}
		return 0
	})
	m, err := Builder{}.GenShape(f, 0.5, 2, false)
	require.NoError(t, err)

	// radius = offset + scale*value.
	assert.InDelta(t, 2.5, m.VertexAt(0, 0).Length(), 1e-12)
	assert.InDelta(t, 0.5, m.VertexAt(90, 180).Length(), 1e-12)
}

func TestGenScatter(t *testing.T) {
	t.Parallel()

	f := rampField()
	ps, err := Builder{}.GenScatter(f, true)
	require.NoError(t, err)
	require.Len(t, ps.Points, 65160)
	require.Len(t, ps.Colors, 65160)

	// Each point's radius equals the field value at the matching angle
	// index of the generated grid.
	angles := sphgrid.GenerateAngles()
	for _, idx := range []int{0, 1, 360, 5000, 65159} {
		want := f.AtIdx(idx)
		assert.InDelta(t, want, ps.Points[idx].Length(), 1e-12, "idx %d", idx)

		x, y, z := sphgrid.SphericalToCartesian(angles[idx].Elevation, angles[idx].Azimuth, want)
		assert.InDelta(t, x, ps.Points[idx].X, 1e-12)
		assert.InDelta(t, y, ps.Points[idx].Y, 1e-12)
		assert.InDelta(t, z, ps.Points[idx].Z, 1e-12)
	}
}

func TestGenScatterFixedColor(t *testing.T) {
	t.Parallel()

	ps, err := Builder{}.GenScatter(rampField(), false)
	require.NoError(t, err)
	assert.Nil(t, ps.Colors)
	assert.Equal(t, color.NRGBA{A: 0xff}, ps.Base)
}

func TestGenVisualDispatch(t *testing.T) {
	t.Parallel()

	f := rampField()
	b := Builder{}

	t.Run("shape", func(t *testing.T) {
		t.Parallel()
		g, err := b.GenVisual(f, StyleShape, true, 0, 1)
		require.NoError(t, err)
		assert.IsType(t, &Mesh{}, g)
	})

	t.Run("sphere", func(t *testing.T) {
		t.Parallel()
		g, err := b.GenVisual(f, StyleSphere, false, 0, 1)
		require.NoError(t, err)
		assert.IsType(t, &Mesh{}, g)
	})

	t.Run("scatter", func(t *testing.T) {
		t.Parallel()
		g, err := b.GenVisual(f, StyleScatter, true, 0, 1)
		require.NoError(t, err)
		assert.IsType(t, &PointSet{}, g)
	})

	t.Run("flat fails fast with its own error", func(t *testing.T) {
		t.Parallel()
		g, err := b.GenVisual(f, StyleFlat, true, 0, 1)
		assert.ErrorIs(t, err, ErrFlatNotImplemented)
		assert.Nil(t, g)
	})

	t.Run("undefined style value", func(t *testing.T) {
		t.Parallel()
		g, err := b.GenVisual(f, Style(99), true, 0, 1)
		require.Error(t, err)
		assert.Nil(t, g)
		assert.Contains(t, err.Error(), "not available")
	})
}

func TestBuildersRejectOversizedLattice(t *testing.T) {
	t.Parallel()

	l, err := sphgrid.New(2)
	require.NoError(t, err)
	f := &field.NormalizedField{Lattice: l, Data: mat.NewDense(l.Rows, l.Cols, nil)}

	b := Builder{}
	_, err = b.GenShape(f, 0, 1, false)
	assert.ErrorContains(t, err, "181x360")
	_, err = b.GenSphere(f, false)
	assert.Error(t, err)
	_, err = b.GenScatter(f, false)
	assert.Error(t, err)
}

func TestBuilderColormapInjection(t *testing.T) {
	t.Parallel()

	red := func(float64) color.NRGBA { return color.NRGBA{R: 0xff, A: 0xff} }
	m, err := Builder{Colormap: red}.GenSphere(rampField(), true)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, m.Colors[0])
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, m.Colors[65159])
}
