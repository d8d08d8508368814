package filter

import "github.com/AnyUserName/imgcore/buffer"

// Box implements the separable box blur of spec §4.3.2: a horizontal
// pass followed by a vertical pass, each maintaining a running sum
// over a sliding window of size 2r+1 per row/column. r<=0 returns a
// clone of src.
func Box(src *buffer.Buffer, r int) *buffer.Buffer {
	if r <= 0 {
		return buffer.Clone(src)
	}
	h := boxHorizontal(src, r)
	return boxVertical(h, r)
}

func boxHorizontal(src *buffer.Buffer, r int) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	s := 2*r + 1

	for y := 0; y < h; y++ {
		var sum [4]int
		// Initial window centered on column 0: i = -r..r, edge-clamped.
		for i := -r; i <= r; i++ {
			c := src.Get(clampCol(i, w), y)
			sum[0] += int(c.R)
			sum[1] += int(c.G)
			sum[2] += int(c.B)
			sum[3] += int(c.A)
		}
		for x := 0; x < w; x++ {
			dst.Set(x, y, buffer.Color{
				R: meanByte(sum[0], s),
				G: meanByte(sum[1], s),
				B: meanByte(sum[2], s),
				A: meanByte(sum[3], s),
			})
			if x == w-1 {
				break
			}
			leave := src.Get(clampCol(x-r, w), y)
			enter := src.Get(clampCol(x+r+1, w), y)
			sum[0] += int(enter.R) - int(leave.R)
			sum[1] += int(enter.G) - int(leave.G)
			sum[2] += int(enter.B) - int(leave.B)
			sum[3] += int(enter.A) - int(leave.A)
		}
	}
	return dst
}

func boxVertical(src *buffer.Buffer, r int) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	s := 2*r + 1

	for x := 0; x < w; x++ {
		var sum [4]int
		for i := -r; i <= r; i++ {
			c := src.Get(x, clampCol(i, h))
			sum[0] += int(c.R)
			sum[1] += int(c.G)
			sum[2] += int(c.B)
			sum[3] += int(c.A)
		}
		for y := 0; y < h; y++ {
			dst.Set(x, y, buffer.Color{
				R: meanByte(sum[0], s),
				G: meanByte(sum[1], s),
				B: meanByte(sum[2], s),
				A: meanByte(sum[3], s),
			})
			if y == h-1 {
				break
			}
			leave := src.Get(x, clampCol(y-r, h))
			enter := src.Get(x, clampCol(y+r+1, h))
			sum[0] += int(enter.R) - int(leave.R)
			sum[1] += int(enter.G) - int(leave.G)
			sum[2] += int(enter.B) - int(leave.B)
			sum[3] += int(enter.A) - int(leave.A)
		}
	}
	return dst
}

func clampCol(v, size int) int {
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}

func meanByte(sum, s int) uint8 {
	v := (sum + s/2) / s // round to nearest
	return buffer.ClampInt(v)
}
