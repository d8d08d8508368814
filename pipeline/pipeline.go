// Package pipeline implements the pipeline facade of spec §4.7: an
// ordered sequence of tagged operator invocations applied to a single
// buffer, each observing only the previous invocation's output. Pure,
// no I/O — callers own both the input and the returned buffer.
package pipeline

import (
	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/colorop"
	"github.com/AnyUserName/imgcore/compose"
	"github.com/AnyUserName/imgcore/filter"
	"github.com/AnyUserName/imgcore/imgerr"
	"github.com/AnyUserName/imgcore/resample"
	"github.com/AnyUserName/imgcore/transform"
)

// Kind tags one operator variant. Spec §9 prefers a tagged enum over
// dynamic dispatch for the facade's dispatch table.
type Kind int

const (
	Resize Kind = iota
	Rotate90
	Rotate180
	Rotate270
	RotateAngle
	Flip
	Flop
	Crop
	Extend
	Trim
	GaussianBlur
	BoxBlur
	Unsharp
	SharpenDirect
	Convolve
	Sobel
	Emboss
	Grayscale
	Threshold
	Modulate
	Invert
	Sepia
	Contrast
	Gamma
	Normalize
	Tint
	Composite
	ToColorSpace
)

// ResizeOptions carries resample.ResizeDescriptor fields for the
// Resize step (spec §4.2.5).
type ResizeOptions = resample.ResizeDescriptor

// RotateAngleOptions carries transform.RotateOptions for RotateAngle.
type RotateAngleOptions struct {
	Degrees float64
	transform.RotateOptions
}

// CropOptions describes the crop/extract rectangle (spec §4.4).
type CropOptions struct {
	Left, Top, Width, Height int
}

// ExtendOptions describes padding amounts and fill (spec §4.4).
type ExtendOptions struct {
	Top, Bottom, Left, Right int
	Background               buffer.Color
}

// TrimOptions describes the trim threshold and optional explicit
// background (spec §4.4); nil Background adopts pixel (0,0).
type TrimOptions struct {
	Threshold  int
	Background *buffer.Color
}

// GaussianBlurOptions carries the blur sigma (spec §4.3.1).
type GaussianBlurOptions struct {
	Sigma float64
}

// BoxBlurOptions carries the blur radius (spec §4.3.2).
type BoxBlurOptions struct {
	Radius int
}

// UnsharpOptions carries the unsharp-mask parameters (spec §4.3.3).
type UnsharpOptions struct {
	Sigma, Amount, Threshold float64
}

// SharpenDirectOptions carries the direct-kernel sharpen strength
// (spec §4.3.4).
type SharpenDirectOptions struct {
	Strength float64
}

// ConvolveOptions wraps a filter.Kernel2D for the Convolve step
// (spec §4.3.5).
type ConvolveOptions struct {
	Kernel filter.Kernel2D
}

// ThresholdOptions carries colorop.ThresholdOptions plus the level.
type ThresholdOptions struct {
	Level int
	colorop.ThresholdOptions
}

// ModulateOptions is an alias of colorop.ModulateOptions.
type ModulateOptions = colorop.ModulateOptions

// SepiaOptions carries the sepia blend amount (spec §4.5).
type SepiaOptions struct {
	Amount float64
}

// ContrastOptions carries the contrast factor (spec §4.5).
type ContrastOptions struct {
	Factor float64
}

// GammaOptions carries the gamma exponent (spec §4.5).
type GammaOptions struct {
	Gamma float64
}

// TintOptions carries the tint color and blend amount (spec §4.5).
type TintOptions struct {
	Color  buffer.Color
	Amount float64
}

// EmbossOptions carries the emboss strength (spec §4.3.7).
type EmbossOptions struct {
	Strength float64
}

// CompositeOptions carries the overlay buffer plus compose.CompositeOptions.
type CompositeOptions struct {
	Overlay *buffer.Buffer
	compose.CompositeOptions
}

// ToColorSpaceOptions carries the target color space (spec §4.5).
type ToColorSpaceOptions struct {
	Target buffer.ColorSpace
}

// Step is one tagged operator invocation. Exactly one of the Options
// fields matching Kind is read; the rest are ignored. A nil Options
// value uses the operator's zero-value defaults.
type Step struct {
	Kind    Kind
	Options interface{}
}

// Run applies steps to input in order, each observing only the
// previous step's output (spec §4.7). Returns a freshly owned buffer;
// input is never mutated. No implicit color-space conversion, no
// reordering, no fusion.
func Run(input *buffer.Buffer, steps []Step) (*buffer.Buffer, error) {
	cur := input
	for _, step := range steps {
		next, err := apply(cur, step)
		if err != nil {
			if imgErr, ok := err.(*imgerr.Error); ok {
				return nil, imgErr
			}
			return nil, imgerr.Wrap(imgerr.InvalidArgument, "pipeline.Run", err)
		}
		cur = next
	}
	if cur == input {
		return buffer.Clone(input), nil
	}
	return cur, nil
}

func apply(src *buffer.Buffer, step Step) (*buffer.Buffer, error) {
	switch step.Kind {
	case Resize:
		opts, _ := step.Options.(ResizeOptions)
		return resample.FitResize(src, opts)
	case Rotate90:
		return transform.Rotate90(src), nil
	case Rotate180:
		return transform.Rotate180(src), nil
	case Rotate270:
		return transform.Rotate270(src), nil
	case RotateAngle:
		opts, _ := step.Options.(RotateAngleOptions)
		return transform.Rotate(src, opts.Degrees, opts.RotateOptions), nil
	case Flip:
		return transform.Flip(src), nil
	case Flop:
		return transform.Flop(src), nil
	case Crop:
		opts, _ := step.Options.(CropOptions)
		return transform.Crop(src, opts.Left, opts.Top, opts.Width, opts.Height), nil
	case Extend:
		opts, _ := step.Options.(ExtendOptions)
		return transform.Extend(src, opts.Top, opts.Bottom, opts.Left, opts.Right, opts.Background)
	case Trim:
		opts, _ := step.Options.(TrimOptions)
		return transform.Trim(src, opts.Threshold, opts.Background), nil
	case GaussianBlur:
		opts, _ := step.Options.(GaussianBlurOptions)
		return filter.Gaussian(src, opts.Sigma), nil
	case BoxBlur:
		opts, _ := step.Options.(BoxBlurOptions)
		return filter.Box(src, opts.Radius), nil
	case Unsharp:
		opts, _ := step.Options.(UnsharpOptions)
		return filter.Unsharp(src, opts.Sigma, opts.Amount, opts.Threshold), nil
	case SharpenDirect:
		opts, _ := step.Options.(SharpenDirectOptions)
		return filter.Sharpen(src, opts.Strength), nil
	case Convolve:
		opts, _ := step.Options.(ConvolveOptions)
		return filter.Convolve(src, opts.Kernel)
	case Sobel:
		return filter.Sobel(src)
	case Emboss:
		opts, _ := step.Options.(EmbossOptions)
		if opts.Strength == 0 {
			opts.Strength = 1
		}
		return filter.Emboss(src, opts.Strength), nil
	case Grayscale:
		return colorop.Grayscale(src), nil
	case Threshold:
		opts, _ := step.Options.(ThresholdOptions)
		return colorop.Threshold(src, opts.Level, opts.ThresholdOptions), nil
	case Modulate:
		opts, _ := step.Options.(ModulateOptions)
		return colorop.Modulate(src, opts), nil
	case Invert:
		return colorop.Invert(src), nil
	case Sepia:
		opts, _ := step.Options.(SepiaOptions)
		return colorop.Sepia(src, opts.Amount), nil
	case Contrast:
		opts, _ := step.Options.(ContrastOptions)
		return colorop.Contrast(src, opts.Factor), nil
	case Gamma:
		opts, _ := step.Options.(GammaOptions)
		return colorop.Gamma(src, opts.Gamma), nil
	case Normalize:
		return colorop.Normalize(src), nil
	case Tint:
		opts, _ := step.Options.(TintOptions)
		return colorop.Tint(src, opts.Color, opts.Amount), nil
	case Composite:
		opts, _ := step.Options.(CompositeOptions)
		return compose.Composite(src, opts.Overlay, opts.CompositeOptions)
	case ToColorSpace:
		opts, _ := step.Options.(ToColorSpaceOptions)
		return colorop.ToColorSpace(src, opts.Target), nil
	default:
		return nil, imgerr.New(imgerr.InvalidArgument, "pipeline.apply", "unknown step kind")
	}
}
