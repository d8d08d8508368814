package transform

import "github.com/AnyUserName/imgcore/buffer"

// Flip mirrors the image vertically (rows reversed).
func Flip(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, h-1-y, src.Get(x, y))
		}
	}
	return dst
}

// Flop mirrors the image horizontally (columns reversed).
func Flop(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(w-1-x, y, src.Get(x, y))
		}
	}
	return dst
}
