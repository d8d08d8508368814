package transform

import "github.com/AnyUserName/imgcore/buffer"

// Rotate90 implements spec §4.4's 90°-clockwise transpose: output is
// (h, w) and column c of the output (read top to bottom) equals row
// (h-1-c) of the input (read left to right).
func Rotate90(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, src.Get(x, y))
		}
	}
	return dst
}

// Rotate180 flips both axes; output dimensions match the input.
func Rotate180(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(w-1-x, h-1-y, src.Get(x, y))
		}
	}
	return dst
}

// Rotate270 implements the 90°-counterclockwise transpose (equivalent
// to Rotate90 applied three times); output is (h, w).
func Rotate270(src *buffer.Buffer) *buffer.Buffer {
	w, h := src.Width, src.Height
	dst := buffer.Like(src, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.Get(x, y))
		}
	}
	return dst
}
