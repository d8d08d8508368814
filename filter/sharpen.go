package filter

import "github.com/AnyUserName/imgcore/buffer"

// Sharpen implements the direct-kernel sharpen of spec §4.3.4: center
// weight 1+4*strength, edge weight -strength, applied as a 5-tap cross
// (center, top, bottom, left, right) with clamped-border neighbors.
// The corner taps are always 0, so this is expressed as a 3x3
// Kernel2D with zeroed corners and fed through Convolve (divisor 1,
// since center+4*edge == 1 for any strength).
func Sharpen(src *buffer.Buffer, strength float64) *buffer.Buffer {
	center := 1 + 4*strength
	edge := -strength
	one := 1.0
	k := Kernel2D{
		Size: 3,
		Data: []float64{
			0, edge, 0,
			edge, center, edge,
			0, edge, 0,
		},
		Divisor: &one,
	}
	out, err := Convolve(src, k)
	if err != nil {
		// k is always a valid 3x3 table; this cannot fail.
		panic(err)
	}
	return out
}
