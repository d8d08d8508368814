// Package resample implements the resize kernels and fit-mode
// dispatcher of spec §4.2.
package resample

import (
	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/imgerr"
)

// Kernel selects the resampling algorithm.
type Kernel int

const (
	Nearest Kernel = iota
	Bilinear
	Bicubic
	Lanczos2
	Lanczos3
)

// Resize scales src to exactly w x h pixels using the given kernel.
// w and h must both be positive. This performs the kernel math only;
// it does not apply fit-mode letterboxing or cropping — see FitResize for
// that dispatcher.
func Resize(src *buffer.Buffer, w, h int, kernel Kernel) (*buffer.Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, imgerr.New(imgerr.InvalidArgument, "resample.Resize", "target dimensions must be positive")
	}
	switch kernel {
	case Nearest:
		return resizeNearest(src, w, h), nil
	case Bilinear:
		return resizeBilinear(src, w, h), nil
	case Bicubic:
		return resizeBicubic(src, w, h), nil
	case Lanczos2:
		return resizeLanczos(src, w, h, 2), nil
	case Lanczos3:
		return resizeLanczos(src, w, h, 3), nil
	default:
		return nil, imgerr.New(imgerr.InvalidArgument, "resample.Resize", "unknown resize kernel")
	}
}
