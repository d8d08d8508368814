package colorop

import "github.com/AnyUserName/imgcore/buffer"

// Display P3 <-> sRGB primaries share the D65 white point; these are
// the standard linear-light gamut conversion matrices.
var srgbToP3 = [3][3]float64{
	{0.8224621, 0.1775380, 0.0000000},
	{0.0331941, 0.9668058, 0.0000000},
	{0.0170827, 0.0723974, 0.9105199},
}

var p3ToSrgb = [3][3]float64{
	{1.2249401, -0.2249404, -0.0000001},
	{-0.0420569, 1.0420571, 0.0000000},
	{-0.0196376, -0.0786361, 1.0982735},
}

func applyMatrix(m [3][3]float64, r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

// ToColorSpace implements spec §4.5: clone if already in target,
// otherwise convert RGB through linear light and the gamut matrix;
// alpha is copied.
func ToColorSpace(src *buffer.Buffer, target buffer.ColorSpace) *buffer.Buffer {
	if src.ColorSpace == target {
		return buffer.Clone(src)
	}

	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	dst.ColorSpace = target

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			r, g, b := convertChannels(c, src.ColorSpace, target)
			dst.Set(x, y, buffer.Color{R: r, G: g, B: b, A: c.A})
		}
	}
	return dst
}

func convertChannels(c buffer.Color, from, to buffer.ColorSpace) (uint8, uint8, uint8) {
	lr, lg, lb := toLinear(c, from)

	if from == buffer.SRGB && to == buffer.DisplayP3 ||
		from == buffer.LinearSRGB && to == buffer.DisplayP3 {
		lr, lg, lb = applyMatrix(srgbToP3, lr, lg, lb)
	}
	if from == buffer.DisplayP3 && to == buffer.SRGB ||
		from == buffer.DisplayP3 && to == buffer.LinearSRGB {
		lr, lg, lb = applyMatrix(p3ToSrgb, lr, lg, lb)
	}

	return fromLinear(lr, lg, lb, to)
}

func toLinear(c buffer.Color, space buffer.ColorSpace) (float64, float64, float64) {
	if space == buffer.LinearSRGB {
		return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
	}
	return SrgbToLinear(c.R), SrgbToLinear(c.G), SrgbToLinear(c.B)
}

func fromLinear(r, g, b float64, space buffer.ColorSpace) (uint8, uint8, uint8) {
	if space == buffer.LinearSRGB {
		return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
	}
	return LinearToSrgb(r), LinearToSrgb(g), LinearToSrgb(b)
}
