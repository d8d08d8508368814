package filter

import "github.com/AnyUserName/imgcore/buffer"

// BT.601 luma weights, used only by the unsharp threshold gate (spec
// §4.3.3). Kept distinct from colorop's BT.709 grayscale weights: the
// two operators are specified against different luma formulas and are
// not unified here.
const (
	luma601R = 0.299
	luma601G = 0.587
	luma601B = 0.114
)

// Unsharp implements the unsharp-mask sharpen of spec §4.3.3: blur the
// source, take the per-channel difference, and add amount*diff back
// onto the original, gated by a luma threshold that leaves
// low-contrast pixels untouched. Alpha is always copied from src.
// amount<=0 returns a clone of src, matching the "non-positive amount
// is a no-op" convention spec §4.3.3 documents.
func Unsharp(src *buffer.Buffer, sigma, amount, threshold float64) *buffer.Buffer {
	if amount <= 0 {
		return buffer.Clone(src)
	}
	blurred := Gaussian(src, sigma)
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := src.Get(x, y)
			b := blurred.Get(x, y)
			dr := float64(s.R) - float64(b.R)
			dg := float64(s.G) - float64(b.G)
			db := float64(s.B) - float64(b.B)

			if threshold > 0 {
				luma := luma601R*dr + luma601G*dg + luma601B*db
				if luma < 0 {
					luma = -luma
				}
				if luma < threshold {
					dst.Set(x, y, s)
					continue
				}
			}

			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(float64(s.R) + amount*dr),
				G: buffer.ClampByte(float64(s.G) + amount*dg),
				B: buffer.ClampByte(float64(s.B) + amount*db),
				A: s.A,
			})
		}
	}
	return dst
}
