package transform

import "github.com/AnyUserName/imgcore/buffer"

// Crop implements extract(left, top, width, height) from spec §4.4:
// left/top are clamped into [0, source extent] and width/height are
// clamped to whatever extent remains.
func Crop(src *buffer.Buffer, left, top, width, height int) *buffer.Buffer {
	w, h := src.Width, src.Height

	if left < 0 {
		left = 0
	}
	if left > w {
		left = w
	}
	if top < 0 {
		top = 0
	}
	if top > h {
		top = h
	}
	if width < 0 {
		width = 0
	}
	if width > w-left {
		width = w - left
	}
	if height < 0 {
		height = 0
	}
	if height > h-top {
		height = h - top
	}

	dst := buffer.Like(src, width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Set(x, y, src.Get(left+x, top+y))
		}
	}
	return dst
}
