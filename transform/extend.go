package transform

import "github.com/AnyUserName/imgcore/buffer"

// Extend implements spec §4.4's padding operator: a new canvas filled
// with background, with src pasted at (left, top).
func Extend(src *buffer.Buffer, top, bottom, left, right int, background buffer.Color) (*buffer.Buffer, error) {
	w := src.Width + left + right
	h := src.Height + top + bottom
	dst, err := buffer.Create(w, h, buffer.Options{
		ColorSpace: src.ColorSpace,
		Alpha:      src.HasAlpha,
		Fill:       &background,
	})
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Height; y++ {
		dy := top + y
		if dy < 0 || dy >= h {
			continue
		}
		for x := 0; x < src.Width; x++ {
			dx := left + x
			if dx < 0 || dx >= w {
				continue
			}
			dst.Set(dx, dy, src.Get(x, y))
		}
	}
	return dst, nil
}
