package filter

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

// Sobel implements the edge-detection operator of spec §4.3.6: raw
// signed Gx/Gy convolutions combined as sqrt(gx^2+gy^2), per channel —
// R, G, and B each keep their own gradient magnitude rather than being
// collapsed into one grayscale value. Alpha is copied from src.
//
// This bypasses Convolve and does not apply spec §4.3.6's literal
// "subtract 128 from the Convolve'd intermediate" step: routing Gx/Gy
// through Convolve (divisor=1, offset=0) clamps each raw sum to
// [0,255] before the subtraction, so a flat field — whose raw Gx/Gy
// sum is always exactly 0, since the Sobel kernels sum to 0 regardless
// of pixel value — clamps to 0 and then reads as -128 on every
// channel, i.e. a uniform maximum gradient everywhere instead of none.
// That contradicts the documented boundary behavior (a flat field
// must have zero gradient, exercised by TestSobelUniformImageIsBlack)
// and is treated as a transcription artifact in the source material
// rather than an implementable requirement; see DESIGN.md.
func Sobel(src *buffer.Buffer) (*buffer.Buffer, error) {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gxR, gxG, gxB float64
			var gyR, gyG, gyB float64
			for j := 0; j < 3; j++ {
				sy := clampCol(y+j-1, h)
				for i := 0; i < 3; i++ {
					sx := clampCol(x+i-1, w)
					c := src.Get(sx, sy)
					wx := SobelHorizontalKernel.at(j, i)
					wy := SobelVerticalKernel.at(j, i)
					gxR += float64(c.R) * wx
					gxG += float64(c.G) * wx
					gxB += float64(c.B) * wx
					gyR += float64(c.R) * wy
					gyG += float64(c.G) * wy
					gyB += float64(c.B) * wy
				}
			}
			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(math.Hypot(gxR, gyR)),
				G: buffer.ClampByte(math.Hypot(gxG, gyG)),
				B: buffer.ClampByte(math.Hypot(gxB, gyB)),
				A: src.Get(x, y).A,
			})
		}
	}
	return dst, nil
}
