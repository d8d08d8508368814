package colorop

import (
	"math"
	"sync"
)

// srgbToLinearTab is precomputed per spec §4.5's IEC 61966-2-1
// piecewise transfer curve, following the LUT + sync.Once pattern used
// for gamma tables elsewhere in the stack. LinearToSrgb takes a
// continuous [0,1] input rather than an 8-bit index, so it has no
// corresponding table and computes the curve directly.
var (
	srgbToLinearTab [256]float64
	srgbTablesOnce  sync.Once
)

func initSrgbTables() {
	srgbTablesOnce.Do(func() {
		for i := 0; i < 256; i++ {
			srgbToLinearTab[i] = srgbToLinearScalar(float64(i) / 255)
		}
	})
}

func srgbToLinearScalar(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgbScalar(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// SrgbToLinear converts an 8-bit sRGB-encoded channel value to its
// normalized [0,1] linear-light equivalent.
func SrgbToLinear(c uint8) float64 {
	initSrgbTables()
	return srgbToLinearTab[c]
}

// LinearToSrgb converts a normalized [0,1] linear-light value back to
// an 8-bit sRGB-encoded channel value, clamping out-of-range input.
func LinearToSrgb(linear float64) uint8 {
	if linear < 0 {
		linear = 0
	}
	if linear > 1 {
		linear = 1
	}
	v := linearToSrgbScalar(linear)
	return clampByte(v * 255)
}
