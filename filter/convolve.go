package filter

import (
	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/imgerr"
)

// Kernel2D is the convolution descriptor of spec §3: a square table
// with odd side length, plus optional divisor (defaults to the sum of
// entries, falling back to 1 when that sum is 0) and offset (defaults
// to 0).
type Kernel2D struct {
	Size    int
	Data    []float64 // row-major, len == Size*Size
	Divisor *float64
	Offset  float64
}

func (k Kernel2D) at(i, j int) float64 {
	return k.Data[i*k.Size+j]
}

func (k Kernel2D) divisor() float64 {
	if k.Divisor != nil {
		return *k.Divisor
	}
	var sum float64
	for _, v := range k.Data {
		sum += v
	}
	if sum == 0 {
		return 1
	}
	return sum
}

// Convolve implements spec §4.3.5: a generic 2-D convolution applied
// to RGB with edge-clamp borders; alpha is copied verbatim from src.
func Convolve(src *buffer.Buffer, k Kernel2D) (*buffer.Buffer, error) {
	if k.Size <= 0 || k.Size%2 == 0 || len(k.Data) != k.Size*k.Size {
		return nil, imgerr.New(imgerr.InvalidArgument, "filter.Convolve", "kernel side length must be a positive odd number")
	}
	div := k.divisor()
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	half := k.Size / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rs, gs, bs float64
			for j := 0; j < k.Size; j++ {
				sy := clampCol(y+j-half, h)
				for i := 0; i < k.Size; i++ {
					sx := clampCol(x+i-half, w)
					weight := k.at(j, i)
					c := src.Get(sx, sy)
					rs += float64(c.R) * weight
					gs += float64(c.G) * weight
					bs += float64(c.B) * weight
				}
			}
			out := buffer.Color{
				R: buffer.ClampByte(rs/div + k.Offset),
				G: buffer.ClampByte(gs/div + k.Offset),
				B: buffer.ClampByte(bs/div + k.Offset),
				A: src.Get(x, y).A,
			}
			dst.Set(x, y, out)
		}
	}
	return dst, nil
}
