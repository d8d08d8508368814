// Package colorop implements the per-pixel color operators of spec
// §4.5: grayscale, threshold, modulate, invert, sepia, contrast,
// gamma, normalize, tint, dominant-color extraction, and color-space
// conversions. Every operator produces a freshly owned buffer,
// preserves alpha, and clamps channels to [0,255].
package colorop

import "github.com/AnyUserName/imgcore/buffer"

func clampByte(v float64) uint8 {
	return buffer.ClampByte(v)
}
