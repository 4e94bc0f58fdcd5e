// Package render turns raw plane-wave decomposition fields into live
// views: it normalizes the field, builds geometry for the requested
// style, and hands it to a rendering canvas.
package render

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/acousticlab/soundfield.view/internal/field"
	"github.com/acousticlab/soundfield.view/internal/geom"
)

// Canvas is the rendering sink: a scene/camera context that accepts one
// or more geometry objects and displays them. Implementations own their
// display loop; Show blocks or completes according to the backend.
type Canvas interface {
	// SetCameraMode selects the interaction camera, e.g. "turntable".
	SetCameraMode(mode string) error
	// SetRange sets the initial symmetric axis range of the view.
	SetRange(min, max float64)
	// Add attaches a geometry object to the scene.
	Add(g geom.Geometry) error
	// Show displays the scene.
	Show() error
	// Close releases the canvas.
	Close() error
}

// CameraTurntable is the fixed camera mode every view uses: an orbit
// around the field's origin.
const CameraTurntable = "turntable"

// Initial symmetric view range, matched to unit-normalized geometry.
const initialRange = 0.1

// VisualOptions configure Visualize3D.
type VisualOptions struct {
	// Style is one of the tags accepted by geom.ParseStyle.
	Style string
	// Colorize maps field values through the colormap onto the geometry.
	Colorize bool
	// Offset and Scale set the radial transfer of the shape style:
	// radius = Offset + Scale*value.
	Offset float64
	Scale  float64
	// Colormap overrides the default viridis mapping when non-nil.
	Colormap geom.Colormap
}

// DefaultVisualOptions returns the conventional view: a colorized sphere.
func DefaultVisualOptions() VisualOptions {
	return VisualOptions{Style: "sphere", Colorize: true, Offset: 0, Scale: 1}
}

// View is a handle to a displayed scene. It keeps the canvas alive until
// the caller closes it.
type View struct {
	ID     string
	Style  geom.Style
	canvas Canvas
}

// Close releases the underlying canvas.
func (v *View) Close() error { return v.canvas.Close() }

// Visualize3D normalizes a raw field, builds the geometry for the
// requested style and displays it on the canvas. The returned View keeps
// the canvas alive.
//
// Failures are immediate and total: an unknown style, the unimplemented
// flat style, or a degenerate (zero dynamic range) field abort the call
// before any geometry reaches the canvas.
func Visualize3D(canvas Canvas, raw *field.ScalarField, opts VisualOptions) (*View, error) {
	normalized, err := field.Normalize(raw)
	if err != nil {
		return nil, err
	}

	style, err := geom.ParseStyle(opts.Style)
	if err != nil {
		return nil, err
	}

	builder := geom.Builder{Colormap: opts.Colormap}
	g, err := builder.GenVisual(normalized, style, opts.Colorize, opts.Offset, opts.Scale)
	if err != nil {
		return nil, err
	}

	if err := canvas.SetCameraMode(CameraTurntable); err != nil {
		return nil, fmt.Errorf("render: camera setup: %w", err)
	}
	canvas.SetRange(-initialRange, initialRange)
	if err := canvas.Add(g); err != nil {
		return nil, fmt.Errorf("render: attach geometry: %w", err)
	}
	if err := canvas.Show(); err != nil {
		return nil, fmt.Errorf("render: show: %w", err)
	}

	return &View{ID: uuid.NewString(), Style: style, canvas: canvas}, nil
}
