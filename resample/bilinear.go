package resample

import "github.com/AnyUserName/imgcore/buffer"

// resizeBilinear implements spec §4.2.2.
func resizeBilinear(src *buffer.Buffer, w, h int) *buffer.Buffer {
	dst := buffer.Like(src, w, h)
	sw, sh := float64(src.Width), float64(src.Height)
	ratioX := sw / float64(w)
	ratioY := sh / float64(h)

	for y := 0; y < h; y++ {
		sy := float64(y) * ratioY
		for x := 0; x < w; x++ {
			sx := float64(x) * ratioX
			c := src.SampleBilinear(sx, sy)
			dst.Set(x, y, c)
		}
	}
	return dst
}
