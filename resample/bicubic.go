package resample

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

// catmullRom is the piecewise cubic kernel of spec §4.2.3.
func catmullRom(t float64) float64 {
	at := math.Abs(t)
	switch {
	case at <= 1:
		return 1.5*at*at*at - 2.5*at*at + 1
	case at < 2:
		return -0.5*at*at*at + 2.5*at*at - 4*at + 2
	default:
		return 0
	}
}

// resizeBicubic implements spec §4.2.3: a 4x4 neighborhood (clamped to
// the source rectangle), separably weighted by the Catmull-Rom kernel.
func resizeBicubic(src *buffer.Buffer, w, h int) *buffer.Buffer {
	dst := buffer.Like(src, w, h)
	sw, sh := src.Width, src.Height
	ratioX := float64(sw) / float64(w)
	ratioY := float64(sh) / float64(h)

	for y := 0; y < h; y++ {
		syF := float64(y) * ratioY
		sy0 := math.Floor(syF)
		fy := syF - sy0
		wy := [4]float64{
			catmullRom(fy - (-1)),
			catmullRom(fy - 0),
			catmullRom(fy - 1),
			catmullRom(fy - 2),
		}

		for x := 0; x < w; x++ {
			sxF := float64(x) * ratioX
			sx0 := math.Floor(sxF)
			fx := sxF - sx0
			wx := [4]float64{
				catmullRom(fx - (-1)),
				catmullRom(fx - 0),
				catmullRom(fx - 1),
				catmullRom(fx - 2),
			}

			var r, g, b, a float64
			for j := -1; j <= 2; j++ {
				sy := clampIdx(int(sy0)+j, sh)
				wyj := wy[j+1]
				for i := -1; i <= 2; i++ {
					sx := clampIdx(int(sx0)+i, sw)
					weight := wx[i+1] * wyj
					c := src.Get(sx, sy)
					r += float64(c.R) * weight
					g += float64(c.G) * weight
					b += float64(c.B) * weight
					a += float64(c.A) * weight
				}
			}

			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(r),
				G: buffer.ClampByte(g),
				B: buffer.ClampByte(b),
				A: buffer.ClampByte(a),
			})
		}
	}
	return dst
}

func clampIdx(v, size int) int {
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}
