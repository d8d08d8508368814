// Package buffer implements the Pixel Buffer contract: the sole data
// type every imgcore operator exchanges. See spec §3 and §4.1.
package buffer

import (
	"math"

	"github.com/AnyUserName/imgcore/imgerr"
)

// ColorSpace tags the interpretation of a Buffer's RGB channels.
type ColorSpace int

const (
	SRGB ColorSpace = iota
	LinearSRGB
	DisplayP3
)

func (c ColorSpace) String() string {
	switch c {
	case SRGB:
		return "srgb"
	case LinearSRGB:
		return "linear-srgb"
	case DisplayP3:
		return "display-p3"
	default:
		return "unknown"
	}
}

// Color is an 8-bit RGBA tuple.
type Color struct {
	R, G, B, A uint8
}

// RGB is a convenience 3-tuple used by dominant color and gradient stops.
type RGB struct {
	R, G, B uint8
}

// Buffer is the in-memory raster image: width, height, 8-bit RGBA
// pixels stored row-major with top-left origin, plus the tags spec §3
// requires. Every operator returns a freshly allocated Buffer; none
// retain aliasing references to their inputs.
type Buffer struct {
	Width      int
	Height     int
	Pix        []byte // len == 4*Width*Height, RGBA order
	ColorSpace ColorSpace
	HasAlpha   bool
	BitDepth   int // always 8; tag kept per spec §3
}

// Options configures Create.
type Options struct {
	ColorSpace ColorSpace
	Alpha      bool // zero value is false: Create then forces every alpha byte to 255, see Create doc.
	BitDepth   int  // 0 defaults to 8
	Fill       *Color
}

// Create allocates a new Buffer of the given dimensions. Storage is
// zeroed unless fill is supplied, in which case every pixel equals
// fill. When Alpha is false, alpha is 255 for every pixel (fill.A is
// replaced); when Alpha is true, fill.A is written as given, so a zero
// fill.A yields fully transparent pixels and is not defaulted to 255.
// Fails with InvalidArgument when w<=0 or h<=0, and with Unsupported
// for a bit depth other than 8 or an unrecognized color space.
func Create(w, h int, opts Options) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, imgerr.New(imgerr.InvalidArgument, "buffer.Create", "width and height must be positive")
	}
	bitDepth := opts.BitDepth
	if bitDepth == 0 {
		bitDepth = 8
	}
	if bitDepth != 8 {
		return nil, imgerr.New(imgerr.Unsupported, "buffer.Create", "only 8-bit buffers are supported")
	}
	if opts.ColorSpace < SRGB || opts.ColorSpace > DisplayP3 {
		return nil, imgerr.New(imgerr.Unsupported, "buffer.Create", "unknown color space")
	}

	b := &Buffer{
		Width:      w,
		Height:     h,
		Pix:        make([]byte, 4*w*h),
		ColorSpace: opts.ColorSpace,
		HasAlpha:   opts.Alpha,
		BitDepth:   8,
	}

	if opts.Fill != nil {
		fill := *opts.Fill
		if !opts.Alpha {
			fill.A = 255
		}
		for i := 0; i < len(b.Pix); i += 4 {
			b.Pix[i] = fill.R
			b.Pix[i+1] = fill.G
			b.Pix[i+2] = fill.B
			b.Pix[i+3] = fill.A
		}
	} else if !opts.Alpha {
		for i := 3; i < len(b.Pix); i += 4 {
			b.Pix[i] = 255
		}
	}

	return b, nil
}

// Clone returns a deep, independently-owned copy of src.
func Clone(src *Buffer) *Buffer {
	dst := &Buffer{
		Width:      src.Width,
		Height:     src.Height,
		Pix:        make([]byte, len(src.Pix)),
		ColorSpace: src.ColorSpace,
		HasAlpha:   src.HasAlpha,
		BitDepth:   src.BitDepth,
	}
	copy(dst.Pix, src.Pix)
	return dst
}

// Like allocates a fresh, zeroed Buffer of w x h with the same tags as
// src. Used internally by operators that build their output without
// needing src's pixel content.
func Like(src *Buffer, w, h int) *Buffer {
	return &Buffer{
		Width:      w,
		Height:     h,
		Pix:        make([]byte, 4*w*h),
		ColorSpace: src.ColorSpace,
		HasAlpha:   src.HasAlpha,
		BitDepth:   src.BitDepth,
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get returns the RGBA tuple at (x,y), or (0,0,0,0) if out of bounds.
func (b *Buffer) Get(x, y int) Color {
	if !b.inBounds(x, y) {
		return Color{}
	}
	i := (y*b.Width + x) * 4
	return Color{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set writes a clamped color at (x,y). Silent no-op out of bounds.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// ClampByte clamps a float64 to [0,255] and rounds half-to-even.
func ClampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// ClampInt clamps an int to [0,255].
func ClampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SampleBilinear returns the bilinear interpolation of the 2x2 pixel
// quad enclosing fractional buffer coordinates (x,y). The right/bottom
// neighbor indices are clamped to (w-1,h-1) (edge-clamp, per spec §4.1
// and the border-handling note in spec §9). Each channel is rounded to
// the nearest integer.
func (b *Buffer) SampleBilinear(x, y float64) Color {
	if b.Width == 0 || b.Height == 0 {
		return Color{}
	}
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := x - x0
	fy := y - y0

	ix0 := clampIdx(int(x0), b.Width)
	iy0 := clampIdx(int(y0), b.Height)
	ix1 := clampIdx(int(x0)+1, b.Width)
	iy1 := clampIdx(int(y0)+1, b.Height)

	p00 := b.Get(ix0, iy0)
	p10 := b.Get(ix1, iy0)
	p01 := b.Get(ix0, iy1)
	p11 := b.Get(ix1, iy1)

	lerp := func(a, c uint8) float64 {
		return float64(a) + (float64(c)-float64(a))*fx
	}
	top := [4]float64{lerp(p00.R, p10.R), lerp(p00.G, p10.G), lerp(p00.B, p10.B), lerp(p00.A, p10.A)}
	bot := [4]float64{lerp(p01.R, p11.R), lerp(p01.G, p11.G), lerp(p01.B, p11.B), lerp(p01.A, p11.A)}

	out := func(t, bm float64) uint8 {
		return ClampByte(t + (bm-t)*fy)
	}
	return Color{
		out(top[0], bot[0]),
		out(top[1], bot[1]),
		out(top[2], bot[2]),
		out(top[3], bot[3]),
	}
}

func clampIdx(v, size int) int {
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}

// FromCodecData builds a Buffer from codec-decoded bytes. channels=3
// expands RGB triples to RGBA with alpha=255; channels=4 copies the
// data as-is.
func FromCodecData(data []byte, w, h, channels int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, imgerr.New(imgerr.InvalidArgument, "buffer.FromCodecData", "width and height must be positive")
	}
	if channels != 3 && channels != 4 {
		return nil, imgerr.New(imgerr.InvalidArgument, "buffer.FromCodecData", "channels must be 3 or 4")
	}
	want := w * h * channels
	if len(data) < want {
		return nil, imgerr.New(imgerr.InvalidArgument, "buffer.FromCodecData", "data shorter than w*h*channels")
	}

	b := &Buffer{Width: w, Height: h, Pix: make([]byte, 4*w*h), ColorSpace: SRGB, BitDepth: 8}
	if channels == 4 {
		copy(b.Pix, data[:want])
		b.HasAlpha = true
	} else {
		di := 0
		for si := 0; si < want; si += 3 {
			b.Pix[di] = data[si]
			b.Pix[di+1] = data[si+1]
			b.Pix[di+2] = data[si+2]
			b.Pix[di+3] = 255
			di += 4
		}
		b.HasAlpha = false
	}
	return b, nil
}

// ToCodecData exports the buffer for a codec. channels=3 drops alpha;
// channels=4 returns the RGBA bytes.
func (b *Buffer) ToCodecData(channels int) ([]byte, error) {
	switch channels {
	case 4:
		out := make([]byte, len(b.Pix))
		copy(out, b.Pix)
		return out, nil
	case 3:
		out := make([]byte, b.Width*b.Height*3)
		di := 0
		for si := 0; si < len(b.Pix); si += 4 {
			out[di] = b.Pix[si]
			out[di+1] = b.Pix[si+1]
			out[di+2] = b.Pix[si+2]
			di += 3
		}
		return out, nil
	default:
		return nil, imgerr.New(imgerr.InvalidArgument, "buffer.ToCodecData", "channels must be 3 or 4")
	}
}
