package transform

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

// RotateOptions configures Rotate (spec §4.4).
type RotateOptions struct {
	Background *buffer.Color // default: zero Color; transparent only when src has alpha, otherwise Create makes it opaque black
	Expand     bool
}

// Rotate implements spec's arbitrary-angle rotation: degrees are
// normalized to [0,360), multiples of 90 fast-path to the exact
// transpose operators, and all other angles inverse-map each
// destination pixel back to source space and bilinear-sample it.
func Rotate(src *buffer.Buffer, degrees float64, opts RotateOptions) *buffer.Buffer {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	switch d {
	case 0:
		return buffer.Clone(src)
	case 90:
		return Rotate90(src)
	case 180:
		return Rotate180(src)
	case 270:
		return Rotate270(src)
	}

	rad := d * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	w, h := src.Width, src.Height

	newW, newH := w, h
	if opts.Expand {
		newW = int(math.Ceil(math.Abs(float64(w)*cos) + math.Abs(float64(h)*sin)))
		newH = int(math.Ceil(math.Abs(float64(w)*sin) + math.Abs(float64(h)*cos)))
	}

	bg := buffer.Color{}
	if opts.Background != nil {
		bg = *opts.Background
	}
	dst, err := buffer.Create(newW, newH, buffer.Options{
		ColorSpace: src.ColorSpace,
		Alpha:      src.HasAlpha,
		Fill:       &bg,
	})
	if err != nil {
		// newW/newH are derived from validated source dimensions; creation
		// can only fail on allocation, which callers treat as fatal anyway.
		panic(err)
	}

	srcCx, srcCy := float64(w)/2, float64(h)/2
	dstCx, dstCy := float64(newW)/2, float64(newH)/2

	for dy := 0; dy < newH; dy++ {
		for dx := 0; dx < newW; dx++ {
			px := float64(dx) - dstCx
			py := float64(dy) - dstCy
			sx := px*cos + py*sin + srcCx
			sy := -px*sin + py*cos + srcCy
			if sx >= 0 && sx < float64(w) && sy >= 0 && sy < float64(h) {
				dst.Set(dx, dy, src.SampleBilinear(sx, sy))
			}
		}
	}
	return dst
}
