package transform

import "github.com/AnyUserName/imgcore/buffer"

// DefaultTrimThreshold is the spec's default trim sensitivity.
const DefaultTrimThreshold = 10

// Trim implements spec §4.4: pixels whose channel-absolute-difference
// from background exceeds threshold are considered foreground; Trim
// crops to their bounding box. If background is nil, pixel (0,0) is
// adopted as background. If no foreground pixel exists, a 1x1 buffer
// is returned.
func Trim(src *buffer.Buffer, threshold int, background *buffer.Color) *buffer.Buffer {
	w, h := src.Width, src.Height
	bg := src.Get(0, 0)
	if background != nil {
		bg = *background
	}

	minX, minY := w, h
	maxX, maxY := -1, -1

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			dist := absInt(int(c.R)-int(bg.R)) +
				absInt(int(c.G)-int(bg.G)) +
				absInt(int(c.B)-int(bg.B)) +
				absInt(int(c.A)-int(bg.A))
			if dist > threshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX || maxY < minY {
		return buffer.Like(src, 1, 1)
	}
	return Crop(src, minX, minY, maxX-minX+1, maxY-minY+1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
