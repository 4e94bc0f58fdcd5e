package geom

import "image/color"

// Colormap maps a normalized intensity in [0, 1] to a color. Inputs
// outside the interval are clamped.
type Colormap func(v float64) color.NRGBA

// viridisStops is the 10-anchor viridis ramp, dark purple to yellow.
var viridisStops = []color.NRGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x48, G: 0x27, B: 0x77, A: 0xff},
	{R: 0x3e, G: 0x49, B: 0x89, A: 0xff},
	{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	{R: 0x26, G: 0x82, B: 0x8e, A: 0xff},
	{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
	{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	{R: 0x6e, G: 0xce, B: 0x58, A: 0xff},
	{R: 0xb5, G: 0xde, B: 0x2b, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// Viridis is the default perceptually-uniform colormap, linearly
// interpolated between its anchor stops.
func Viridis(v float64) color.NRGBA {
	if v <= 0 {
		return viridisStops[0]
	}
	if v >= 1 {
		return viridisStops[len(viridisStops)-1]
	}

	pos := v * float64(len(viridisStops)-1)
	i := int(pos)
	t := pos - float64(i)
	lo, hi := viridisStops[i], viridisStops[i+1]
	return color.NRGBA{
		R: lerp8(lo.R, hi.R, t),
		G: lerp8(lo.G, hi.G, t),
		B: lerp8(lo.B, hi.B, t),
		A: 0xff,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
