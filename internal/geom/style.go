// Package geom projects normalized angular fields into renderable 3D
// geometry: displacement surfaces, colored unit spheres, and point clouds.
package geom

import (
	"errors"
	"fmt"
)

// Style selects the projection of field values into geometry.
type Style int

const (
	// StyleShape displaces each lattice vertex radially by the field value.
	StyleShape Style = iota
	// StyleSphere keeps a unit radius and encodes the field in color only.
	StyleSphere
	// StyleScatter emits one point per lattice direction, radius from the
	// field value.
	StyleScatter
	// StyleFlat is a recognized but unimplemented projection; building it
	// fails with ErrFlatNotImplemented.
	StyleFlat
)

// ErrFlatNotImplemented marks the flat projection, which is accepted by
// style parsing but has no geometry builder.
var ErrFlatNotImplemented = errors.New("geom: flat style is not implemented")

// ParseStyle maps a style tag to its Style. The accepted tags are
// "shape", "sphere", "scatter" and "flat".
func ParseStyle(tag string) (Style, error) {
	switch tag {
	case "shape":
		return StyleShape, nil
	case "sphere":
		return StyleSphere, nil
	case "scatter":
		return StyleScatter, nil
	case "flat":
		return StyleFlat, nil
	}
	return 0, fmt.Errorf("geom: style %q not available, try sphere, flat, shape or scatter", tag)
}

func (s Style) String() string {
	switch s {
	case StyleShape:
		return "shape"
	case StyleSphere:
		return "sphere"
	case StyleScatter:
		return "scatter"
	case StyleFlat:
		return "flat"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}
