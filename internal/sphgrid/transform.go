package sphgrid

import "math"

// SphericalToCartesian converts a direction (elevation as colatitude,
// azimuth, both radians) and a radius into Cartesian coordinates.
// Coordinate convention: z is the polar axis (elevation 0 maps to +z),
// x points along azimuth 0.
func SphericalToCartesian(elevation, azimuth, radius float64) (x, y, z float64) {
	sinEl := math.Sin(elevation)
	x = radius * sinEl * math.Cos(azimuth)
	y = radius * sinEl * math.Sin(azimuth)
	z = radius * math.Cos(elevation)
	return
}
