package colorop

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
)

// HSL is a double-precision hue/saturation/lightness triple; hue is
// in degrees [0,360), saturation and lightness are [0,1].
type HSL struct {
	H, S, L float64
}

// RgbToHsl implements spec §4.5's standard conversion.
func RgbToHsl(c buffer.Color) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{0, 0, l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{h, s, l}
}

// HslToRgb implements spec §4.5's standard conversion. Alpha is not
// part of HSL; callers restore it from the source pixel.
func HslToRgb(hsl HSL) (r, g, b uint8) {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	s := hsl.S
	l := hsl.L

	if s == 0 {
		v := clampByte(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := h / 360
	return clampByte(hueToRgb(p, q, hk+1.0/3) * 255),
		clampByte(hueToRgb(p, q, hk) * 255),
		clampByte(hueToRgb(p, q, hk-1.0/3) * 255)
}

func hueToRgb(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ModulateOptions configures Modulate; all factors default to 1 and
// Hue defaults to 0 (degrees added to the current hue).
type ModulateOptions struct {
	Brightness float64
	Saturation float64
	Hue        float64
	Lightness  float64
}

// Modulate implements spec §4.5: convert to HSL, apply hue shift and
// saturation/lightness/brightness scaling, convert back. A zero-value
// factor (Brightness/Saturation/Lightness left unset) defaults to 1,
// matching the type's doc; pass a negative value if zeroing a channel
// out is genuinely intended.
func Modulate(src *buffer.Buffer, opts ModulateOptions) *buffer.Buffer {
	brightness, saturation, lightness := opts.Brightness, opts.Saturation, opts.Lightness
	if brightness == 0 {
		brightness = 1
	}
	if saturation == 0 {
		saturation = 1
	}
	if lightness == 0 {
		lightness = 1
	}

	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			hsl := RgbToHsl(c)
			hsl.H = math.Mod(hsl.H+opts.Hue, 360)
			if hsl.H < 0 {
				hsl.H += 360
			}
			hsl.S = clamp01(hsl.S * saturation)
			hsl.L = clamp01(hsl.L * lightness * brightness)
			r, g, b := HslToRgb(hsl)
			dst.Set(x, y, buffer.Color{R: r, G: g, B: b, A: c.A})
		}
	}
	return dst
}
