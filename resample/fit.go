package resample

import (
	"math"

	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/imgerr"
)

// FitMode selects how source and target aspect ratios reconcile.
// See spec §4.2.5.
type FitMode int

const (
	Fill FitMode = iota
	Contain
	Cover
	Inside
	Outside
)

// Anchor selects the crop origin used by Cover (and Outside when it
// falls back to Cover) when the scaled image overflows the target box.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// ResizeDescriptor configures a fit-mode resize (spec §3).
type ResizeDescriptor struct {
	TargetWidth  *int
	TargetHeight *int
	Kernel       Kernel
	Fit          FitMode
	Background   *buffer.Color // contain-mode letterbox fill
	Anchor       Anchor        // cover-mode crop anchor
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// containDims computes the largest box preserving srcW:srcH that fits
// within wt x ht.
func containDims(srcW, srcH, wt, ht int) (int, int) {
	scale := math.Min(float64(wt)/float64(srcW), float64(ht)/float64(srcH))
	w := roundInt(float64(srcW) * scale)
	h := roundInt(float64(srcH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// coverDims computes the smallest box preserving srcW:srcH that fully
// covers wt x ht.
func coverDims(srcW, srcH, wt, ht int) (int, int) {
	scale := math.Max(float64(wt)/float64(srcW), float64(ht)/float64(srcH))
	w := roundInt(float64(srcW) * scale)
	h := roundInt(float64(srcH) * scale)
	if w < wt {
		w = wt
	}
	if h < ht {
		h = ht
	}
	return w, h
}

// cropOrigin picks the top-left corner of a wt x ht crop window inside
// a w x h scaled image, per the requested anchor. Offsets are clamped
// to non-negative (coverDims is always >= target dims by construction).
func cropOrigin(w, h, wt, ht int, anchor Anchor) (int, int) {
	overflowX := w - wt
	overflowY := h - ht
	if overflowX < 0 {
		overflowX = 0
	}
	if overflowY < 0 {
		overflowY = 0
	}

	left, top := overflowX/2, overflowY/2
	switch anchor {
	case AnchorTop:
		top = 0
	case AnchorBottom:
		top = overflowY
	case AnchorLeft:
		left = 0
	case AnchorRight:
		left = overflowX
	case AnchorTopLeft:
		left, top = 0, 0
	case AnchorTopRight:
		left, top = overflowX, 0
	case AnchorBottomLeft:
		left, top = 0, overflowY
	case AnchorBottomRight:
		left, top = overflowX, overflowY
	}
	return left, top
}

func cropBuffer(src *buffer.Buffer, left, top, w, h int) *buffer.Buffer {
	dst := buffer.Like(src, w, h)
	for y := 0; y < h; y++ {
		sy := top + y
		for x := 0; x < w; x++ {
			dst.Set(x, y, src.Get(left+x, sy))
		}
	}
	return dst
}

// Dimensions computes the final output dimensions for the fit-mode
// dispatcher without performing the resize itself. Exposed separately
// so orchestration layers can preflight a pipeline's output size.
// For Contain it returns the scaled size; FitResize letterboxes that
// onto the full target box when the descriptor has a Background.
func Dimensions(srcW, srcH int, targetW, targetH *int, fit FitMode) (int, int, error) {
	if targetW == nil && targetH == nil {
		return srcW, srcH, nil
	}
	if targetW == nil {
		h := *targetH
		w := roundInt(float64(srcW) * float64(h) / float64(srcH))
		if w < 1 {
			w = 1
		}
		return w, h, nil
	}
	if targetH == nil {
		w := *targetW
		h := roundInt(float64(srcH) * float64(w) / float64(srcW))
		if h < 1 {
			h = 1
		}
		return w, h, nil
	}

	wt, ht := *targetW, *targetH
	switch fit {
	case Fill:
		return wt, ht, nil
	case Contain:
		w, h := containDims(srcW, srcH, wt, ht)
		return w, h, nil
	case Cover:
		return wt, ht, nil // Cover always crops down to the exact target box.
	case Inside:
		if srcW <= wt && srcH <= ht {
			return srcW, srcH, nil
		}
		w, h := containDims(srcW, srcH, wt, ht)
		return w, h, nil
	case Outside:
		if srcW >= wt && srcH >= ht {
			return srcW, srcH, nil
		}
		return wt, ht, nil
	default:
		return 0, 0, imgerr.New(imgerr.InvalidArgument, "resample.Dimensions", "unknown fit mode")
	}
}

// FitResize applies the full fit-mode dispatcher of spec §4.2.5: it
// computes target dimensions, resamples, and for cover/outside,
// crops to the exact target box using the descriptor's anchor.
func FitResize(src *buffer.Buffer, desc ResizeDescriptor) (*buffer.Buffer, error) {
	srcW, srcH := src.Width, src.Height

	if desc.TargetWidth == nil && desc.TargetHeight == nil {
		return buffer.Clone(src), nil
	}

	if desc.TargetWidth == nil || desc.TargetHeight == nil {
		w, h, err := Dimensions(srcW, srcH, desc.TargetWidth, desc.TargetHeight, desc.Fit)
		if err != nil {
			return nil, err
		}
		return Resize(src, w, h, desc.Kernel)
	}

	wt, ht := *desc.TargetWidth, *desc.TargetHeight
	if wt <= 0 || ht <= 0 {
		return nil, imgerr.New(imgerr.InvalidArgument, "resample.FitResize", "target dimensions must be positive")
	}

	switch desc.Fit {
	case Fill:
		return Resize(src, wt, ht, desc.Kernel)

	case Contain:
		cw, ch := containDims(srcW, srcH, wt, ht)
		scaled, err := Resize(src, cw, ch, desc.Kernel)
		if err != nil {
			return nil, err
		}
		if desc.Background == nil {
			return scaled, nil
		}
		canvas, err := buffer.Create(wt, ht, buffer.Options{
			ColorSpace: src.ColorSpace,
			Alpha:      src.HasAlpha,
			Fill:       desc.Background,
		})
		if err != nil {
			return nil, err
		}
		left := (wt - cw) / 2
		top := (ht - ch) / 2
		pasteInto(canvas, scaled, left, top)
		return canvas, nil

	case Cover:
		cw, ch := coverDims(srcW, srcH, wt, ht)
		scaled, err := Resize(src, cw, ch, desc.Kernel)
		if err != nil {
			return nil, err
		}
		left, top := cropOrigin(cw, ch, wt, ht, desc.Anchor)
		return cropBuffer(scaled, left, top, wt, ht), nil

	case Inside:
		if srcW <= wt && srcH <= ht {
			return buffer.Clone(src), nil
		}
		d2 := desc
		d2.Fit = Contain
		return FitResize(src, d2)

	case Outside:
		if srcW >= wt && srcH >= ht {
			return buffer.Clone(src), nil
		}
		d2 := desc
		d2.Fit = Cover
		return FitResize(src, d2)

	default:
		return nil, imgerr.New(imgerr.InvalidArgument, "resample.FitResize", "unknown fit mode")
	}
}

// pasteInto copies src into dst at (left,top), clipping to dst bounds.
func pasteInto(dst, src *buffer.Buffer, left, top int) {
	for y := 0; y < src.Height; y++ {
		dy := top + y
		if dy < 0 || dy >= dst.Height {
			continue
		}
		for x := 0; x < src.Width; x++ {
			dx := left + x
			if dx < 0 || dx >= dst.Width {
				continue
			}
			dst.Set(dx, dy, src.Get(x, y))
		}
	}
}
