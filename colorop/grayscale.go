package colorop

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

func pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// Grayscale implements spec §4.5: BT.709 luminance written to R=G=B.
func Grayscale(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			l := luminance709(c)
			dst.Set(x, y, buffer.Color{R: l, G: l, B: l, A: c.A})
		}
	}
	return dst
}

func luminance709(c buffer.Color) uint8 {
	return clampByte(0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B))
}

// ThresholdOptions configures Threshold.
type ThresholdOptions struct {
	// Grayscale selects R=G=B output. The zero value is false, which
	// scales the original RGB instead; no default of true is applied.
	Grayscale bool
}

// Threshold implements spec §4.5: luminance >= level becomes 255,
// else 0. Grayscale mode writes R=G=B=value; otherwise the original
// RGB is scaled by value/255.
func Threshold(src *buffer.Buffer, level int, opts ThresholdOptions) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			l := int(luminance709(c))
			var value uint8
			if l >= level {
				value = 255
			}
			if opts.Grayscale {
				dst.Set(x, y, buffer.Color{R: value, G: value, B: value, A: c.A})
			} else {
				scale := float64(value) / 255
				dst.Set(x, y, buffer.Color{
					R: clampByte(float64(c.R) * scale),
					G: clampByte(float64(c.G) * scale),
					B: clampByte(float64(c.B) * scale),
					A: c.A,
				})
			}
		}
	}
	return dst
}

// Invert implements spec §4.5: channel = 255 - channel, RGB only.
func Invert(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			dst.Set(x, y, buffer.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A})
		}
	}
	return dst
}

// Contrast implements spec §4.5: channel = factor*channel + 128*(1-factor).
func Contrast(src *buffer.Buffer, factor float64) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	offset := 128 * (1 - factor)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			dst.Set(x, y, buffer.Color{
				R: clampByte(factor*float64(c.R) + offset),
				G: clampByte(factor*float64(c.G) + offset),
				B: clampByte(factor*float64(c.B) + offset),
				A: c.A,
			})
		}
	}
	return dst
}

// Gamma implements spec §4.5 via a precomputed 256-entry lookup table.
func Gamma(src *buffer.Buffer, gamma float64) *buffer.Buffer {
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		lut[i] = clampByte(255 * pow(float64(i)/255, 1/gamma))
	}
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			dst.Set(x, y, buffer.Color{R: lut[c.R], G: lut[c.G], B: lut[c.B], A: c.A})
		}
	}
	return dst
}
