package resample

import "github.com/AnyUserName/imgcore/buffer"

// resizeNearest implements spec §4.2.1: for each destination pixel,
// pick the floor-mapped source index and copy RGBA verbatim.
func resizeNearest(src *buffer.Buffer, w, h int) *buffer.Buffer {
	dst := buffer.Like(src, w, h)
	sw, sh := src.Width, src.Height

	for y := 0; y < h; y++ {
		sy := y * sh / h
		if sy >= sh {
			sy = sh - 1
		}
		for x := 0; x < w; x++ {
			sx := x * sw / w
			if sx >= sw {
				sx = sw - 1
			}
			si := (sy*sw + sx) * 4
			di := (y*w + x) * 4
			dst.Pix[di] = src.Pix[si]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
			dst.Pix[di+3] = src.Pix[si+3]
		}
	}
	return dst
}
