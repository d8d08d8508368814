package filter

import "github.com/AnyUserName/imgcore/buffer"

// Emboss implements spec §4.3.7: a convolution pass with kernel
// [[-2s,-s,0],[-s,1,s],[0,s,2s]], divisor 1, offset 128, producing the
// classic gray relief look while preserving src's alpha. Strength 1
// matches EmbossKernel.
func Emboss(src *buffer.Buffer, strength float64) *buffer.Buffer {
	s := strength
	one := 1.0
	k := Kernel2D{
		Size: 3,
		Data: []float64{
			-2 * s, -s, 0,
			-s, 1, s,
			0, s, 2 * s,
		},
		Divisor: &one,
		Offset:  128,
	}
	out, err := Convolve(src, k)
	if err != nil {
		// k is always a valid 3x3 table; this cannot fail.
		panic(err)
	}
	return out
}
