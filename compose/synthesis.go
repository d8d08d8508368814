package compose

import (
	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/imgerr"
)

// CreateSolidColor implements spec §4.6.3: delegates to buffer.Create
// with a fill.
func CreateSolidColor(w, h int, color buffer.Color) (*buffer.Buffer, error) {
	return buffer.Create(w, h, buffer.Options{Alpha: true, Fill: &color})
}

// GradientDirection selects the parameterization axis for
// CreateLinearGradient.
type GradientDirection int

const (
	Horizontal GradientDirection = iota
	Vertical
	Diagonal
)

// CreateLinearGradient implements spec §4.6.3: per pixel, a
// parameter t in [0,1] derived from the chosen direction linearly
// interpolates start to end across R,G,B,A. Degenerate extents (a
// single row/column) are guarded against division by zero.
func CreateLinearGradient(w, h int, start, end buffer.Color, dir GradientDirection) (*buffer.Buffer, error) {
	dst, err := buffer.Create(w, h, buffer.Options{Alpha: true})
	if err != nil {
		return nil, err
	}

	denomX := float64(w - 1)
	denomY := float64(h - 1)
	denomD := denomX + denomY

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var t float64
			switch dir {
			case Horizontal:
				if denomX > 0 {
					t = float64(x) / denomX
				}
			case Vertical:
				if denomY > 0 {
					t = float64(y) / denomY
				}
			case Diagonal:
				if denomD > 0 {
					t = float64(x+y) / denomD
				}
			default:
				return nil, imgerr.New(imgerr.InvalidArgument, "compose.CreateLinearGradient", "unknown gradient direction")
			}
			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(float64(start.R) + t*(float64(end.R)-float64(start.R))),
				G: buffer.ClampByte(float64(start.G) + t*(float64(end.G)-float64(start.G))),
				B: buffer.ClampByte(float64(start.B) + t*(float64(end.B)-float64(start.B))),
				A: buffer.ClampByte(float64(start.A) + t*(float64(end.A)-float64(start.A))),
			})
		}
	}
	return dst, nil
}
