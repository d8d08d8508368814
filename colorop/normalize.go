package colorop

import "github.com/AnyUserName/imgcore/buffer"

// Normalize implements spec §4.5: per channel, stretch [min,max]
// across the whole image to [0,255].
func Normalize(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	minR, minG, minB := 255, 255, 255
	maxR, maxG, maxB := 0, 0, 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			if int(c.R) < minR {
				minR = int(c.R)
			}
			if int(c.R) > maxR {
				maxR = int(c.R)
			}
			if int(c.G) < minG {
				minG = int(c.G)
			}
			if int(c.G) > maxG {
				maxG = int(c.G)
			}
			if int(c.B) < minB {
				minB = int(c.B)
			}
			if int(c.B) > maxB {
				maxB = int(c.B)
			}
		}
	}

	rangeR := maxR - minR
	if rangeR < 1 {
		rangeR = 1
	}
	rangeG := maxG - minG
	if rangeG < 1 {
		rangeG = 1
	}
	rangeB := maxB - minB
	if rangeB < 1 {
		rangeB = 1
	}

	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			dst.Set(x, y, buffer.Color{
				R: clampByte(float64(int(c.R)-minR) * 255 / float64(rangeR)),
				G: clampByte(float64(int(c.G)-minG) * 255 / float64(rangeG)),
				B: clampByte(float64(int(c.B)-minB) * 255 / float64(rangeB)),
				A: c.A,
			})
		}
	}
	return dst
}

// Tint implements spec §4.5: gray = BT.709 luminance, tinted channel =
// gray*color_c/255, blended with source by amount.
func Tint(src *buffer.Buffer, color buffer.Color, amount float64) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			gray := float64(luminance709(c))
			tr := gray * float64(color.R) / 255
			tg := gray * float64(color.G) / 255
			tb := gray * float64(color.B) / 255
			dst.Set(x, y, buffer.Color{
				R: clampByte(float64(c.R) + amount*(tr-float64(c.R))),
				G: clampByte(float64(c.G) + amount*(tg-float64(c.G))),
				B: clampByte(float64(c.B) + amount*(tb-float64(c.B))),
				A: c.A,
			})
		}
	}
	return dst
}

// DominantColor implements spec §4.5: the average R,G,B across pixels
// with alpha >= 128; (0,0,0) if no such pixel exists.
func DominantColor(src *buffer.Buffer) buffer.RGB {
	var sumR, sumG, sumB, count int64
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			if c.A >= 128 {
				sumR += int64(c.R)
				sumG += int64(c.G)
				sumB += int64(c.B)
				count++
			}
		}
	}
	if count == 0 {
		return buffer.RGB{}
	}
	return buffer.RGB{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
	}
}
