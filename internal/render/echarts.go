package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/acousticlab/soundfield.view/internal/geom"
)

// EChartsCanvas renders geometry as a self-contained HTML document with an
// interactive 3D scatter chart. Meshes are displayed as their vertex
// lattice; echarts' built-in orbit control provides the turntable camera.
type EChartsCanvas struct {
	w     io.Writer
	title string

	cameraMode string
	min, max   float64
	geoms      []geom.Geometry
}

// NewEChartsCanvas returns a canvas writing its HTML to w on Show.
func NewEChartsCanvas(w io.Writer, title string) *EChartsCanvas {
	return &EChartsCanvas{
		w:          w,
		title:      title,
		cameraMode: CameraTurntable,
		min:        -1,
		max:        1,
	}
}

// SetCameraMode accepts the turntable/orbit camera (the only mode echarts'
// view control implements).
func (c *EChartsCanvas) SetCameraMode(mode string) error {
	switch mode {
	case CameraTurntable, "orbit":
		c.cameraMode = mode
		return nil
	}
	return fmt.Errorf("render: camera mode %q not supported by echarts canvas", mode)
}

// SetRange sets the symmetric axis range. Geometry in [-1, 1] typically
// wants a matching or slightly padded range.
func (c *EChartsCanvas) SetRange(min, max float64) {
	c.min, c.max = min, max
}

// Add queues a geometry object for the next Show.
func (c *EChartsCanvas) Add(g geom.Geometry) error {
	if g == nil {
		return fmt.Errorf("render: nil geometry")
	}
	c.geoms = append(c.geoms, g)
	return nil
}

// Show renders all queued geometry into one HTML document.
func (c *EChartsCanvas) Show() error {
	if len(c.geoms) == 0 {
		return fmt.Errorf("render: nothing to show")
	}

	chart := charts.NewScatter3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.title,
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{Title: c.title}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "x", Min: c.min, Max: c.max}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "y", Min: c.min, Max: c.max}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "z", Min: c.min, Max: c.max}),
	)

	for i, g := range c.geoms {
		name := fmt.Sprintf("geometry-%d", i)
		switch obj := g.(type) {
		case *geom.Mesh:
			chart.AddSeries(name, chartData(obj.Vertices, obj.Colors, color.NRGBA{R: 0x31, G: 0x68, B: 0x8e, A: 0xff}))
		case *geom.PointSet:
			chart.AddSeries(name, chartData(obj.Points, obj.Colors, obj.Base))
		default:
			return fmt.Errorf("render: unsupported geometry %T", g)
		}
	}

	return chart.Render(c.w)
}

// Close is a no-op for the HTML backend; the document outlives the canvas.
func (c *EChartsCanvas) Close() error { return nil }

func chartData(points []geom.Vec3, colors []color.NRGBA, base color.NRGBA) []opts.Chart3DData {
	data := make([]opts.Chart3DData, len(points))
	baseHex := hexColor(base)
	for i, p := range points {
		d := opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}}
		if colors != nil {
			d.ItemStyle = &opts.ItemStyle{Color: hexColor(colors[i])}
		} else {
			d.ItemStyle = &opts.ItemStyle{Color: baseHex}
		}
		data[i] = d
	}
	return data
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
