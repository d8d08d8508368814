package filter

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

// Gaussian implements the separable Gaussian blur of spec §4.3.1.
// sigma<=0 returns a clone of src.
func Gaussian(src *buffer.Buffer, sigma float64) *buffer.Buffer {
	if sigma <= 0 {
		return buffer.Clone(src)
	}
	weights := gaussianWeights(sigma)
	h := gaussianPass(src, weights, true)
	return gaussianPass(h, weights, false)
}

// gaussianWeights precomputes a normalized 1-D kernel of radius
// max(1, ceil(3*sigma)).
func gaussianWeights(sigma float64) []float64 {
	r := int(math.Ceil(3 * sigma))
	if r < 1 {
		r = 1
	}
	size := 2*r + 1
	weights := make([]float64, size)
	var sum float64
	denom := 2 * sigma * sigma
	for i := -r; i <= r; i++ {
		w := math.Exp(-float64(i*i) / denom)
		weights[i+r] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

func gaussianPass(src *buffer.Buffer, weights []float64, horizontal bool) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	r := len(weights) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rs, gs, bs, as float64
			for k := -r; k <= r; k++ {
				weight := weights[k+r]
				var c buffer.Color
				if horizontal {
					c = src.Get(clampCol(x+k, w), y)
				} else {
					c = src.Get(x, clampCol(y+k, h))
				}
				rs += float64(c.R) * weight
				gs += float64(c.G) * weight
				bs += float64(c.B) * weight
				as += float64(c.A) * weight
			}
			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(rs),
				G: buffer.ClampByte(gs),
				B: buffer.ClampByte(bs),
				A: buffer.ClampByte(as),
			})
		}
	}
	return dst
}
