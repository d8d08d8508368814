package colorop

import "github.com/AnyUserName/imgcore/buffer"

// Sepia implements spec §4.5's standard sepia matrix, linearly
// blended with source by amount.
func Sepia(src *buffer.Buffer, amount float64) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			r := float64(c.R)
			g := float64(c.G)
			b := float64(c.B)

			sr := clampByte(0.393*r + 0.769*g + 0.189*b)
			sg := clampByte(0.349*r + 0.686*g + 0.168*b)
			sb := clampByte(0.272*r + 0.534*g + 0.131*b)

			dst.Set(x, y, buffer.Color{
				R: clampByte(r + amount*(float64(sr)-r)),
				G: clampByte(g + amount*(float64(sg)-g)),
				B: clampByte(b + amount*(float64(sb)-b)),
				A: c.A,
			})
		}
	}
	return dst
}
