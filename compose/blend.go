// Package compose implements the compositor of spec §4.6: per-pixel
// blend functions, the source-over (and beyond) alpha mix, layered
// composition, and solid-color/gradient synthesis.
package compose

import (
	"math"

	"github.com/AnyUserName/imgcore/imgerr"
)

// BlendMode names one of the per-channel blend functions of spec
// §4.6.1, each operating on [0,1] channel values.
type BlendMode int

const (
	Normal BlendMode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	DestIn
	DestOut
	SourceAtop
)

func blendChannel(mode BlendMode, base, overlay float64) (float64, error) {
	switch mode {
	case Normal:
		return overlay, nil
	case Multiply:
		return base * overlay, nil
	case Screen:
		return 1 - (1-base)*(1-overlay), nil
	case Overlay:
		if base < 0.5 {
			return 2 * base * overlay, nil
		}
		return 1 - 2*(1-base)*(1-overlay), nil
	case Darken:
		return math.Min(base, overlay), nil
	case Lighten:
		return math.Max(base, overlay), nil
	case ColorDodge:
		if overlay >= 1 {
			return 1, nil
		}
		return math.Min(1, base/(1-overlay)), nil
	case ColorBurn:
		if overlay <= 0 {
			return 0, nil
		}
		return 1 - math.Min(1, (1-base)/overlay), nil
	case HardLight:
		if overlay < 0.5 {
			return 2 * base * overlay, nil
		}
		return 1 - 2*(1-base)*(1-overlay), nil
	case SoftLight:
		return softLight(base, overlay), nil
	case Difference:
		return math.Abs(base - overlay), nil
	case Exclusion:
		return base + overlay - 2*base*overlay, nil
	case DestIn, DestOut:
		return base, nil
	case SourceAtop:
		return overlay, nil
	default:
		return 0, imgerr.New(imgerr.InvalidArgument, "compose.blendChannel", "unknown blend mode")
	}
}

// softLight implements the W3C piecewise soft-light formula.
func softLight(b, s float64) float64 {
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	return b + (2*s-1)*(d-b)
}
