package codec

import (
	"image"
	"image/color"

	"github.com/AnyUserName/imgcore/buffer"
)

// FromImage converts a decoded image.Image into an owned buffer.Buffer
// per spec §4.1's fromCodecData contract: non-premultiplied RGBA,
// top-left origin, row-major, sRGB tagged unless the codec says
// otherwise (the core treats every decode as sRGB, per spec §6).
func FromImage(img image.Image) *buffer.Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := &buffer.Buffer{
		Width:      w,
		Height:     h,
		Pix:        make([]byte, 4*w*h),
		ColorSpace: buffer.SRGB,
		HasAlpha:   true,
		BitDepth:   8,
	}

	switch src := img.(type) {
	case *image.NRGBA:
		fromNRGBA(dst, src, b)
	case *image.RGBA:
		fromRGBA(dst, src, b)
	case *image.Gray:
		fromGray(dst, src, b)
	default:
		fromGeneric(dst, img, b)
	}
	return dst
}

func fromNRGBA(dst *buffer.Buffer, src *image.NRGBA, b image.Rectangle) {
	allOpaque := true
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		row := src.Pix[si : si+4*dst.Width]
		copy(dst.Pix[di:di+len(row)], row)
		for x := 3; x < len(row); x += 4 {
			if row[x] != 255 {
				allOpaque = false
			}
		}
		di += len(row)
	}
	dst.HasAlpha = !allOpaque
}

func fromRGBA(dst *buffer.Buffer, src *image.RGBA, b image.Rectangle) {
	// image.RGBA stores premultiplied alpha; un-premultiply into the
	// core's non-premultiplied contract (spec §6).
	allOpaque := true
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if a != 255 {
				allOpaque = false
			}
			if a > 0 && a < 255 {
				r = unpremultiply(r, a)
				g = unpremultiply(g, a)
				bl = unpremultiply(bl, a)
			}
			dst.Pix[di] = r
			dst.Pix[di+1] = g
			dst.Pix[di+2] = bl
			dst.Pix[di+3] = a
			di += 4
		}
	}
	dst.HasAlpha = !allOpaque
}

func unpremultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

func fromGray(dst *buffer.Buffer, src *image.Gray, b image.Rectangle) {
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := src.GrayAt(x, y).Y
			dst.Pix[di] = v
			dst.Pix[di+1] = v
			dst.Pix[di+2] = v
			dst.Pix[di+3] = 255
			di += 4
		}
	}
	dst.HasAlpha = false
}

func fromGeneric(dst *buffer.Buffer, img image.Image, b image.Rectangle) {
	allOpaque := true
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			a8 := uint8(a >> 8)
			if a8 != 255 {
				allOpaque = false
			}
			var r8, g8, b8 uint8
			if a > 0 {
				r8 = unpremultiply16(r, a)
				g8 = unpremultiply16(g, a)
				b8 = unpremultiply16(bl, a)
			}
			dst.Pix[di] = r8
			dst.Pix[di+1] = g8
			dst.Pix[di+2] = b8
			dst.Pix[di+3] = a8
			di += 4
		}
	}
	dst.HasAlpha = !allOpaque
}

func unpremultiply16(c, a uint32) uint8 {
	if a == 0 {
		return 0
	}
	return uint8((c*0xFFFF + a/2) / a >> 8)
}

// ToImage wraps a buffer.Buffer as an image.Image (NRGBA semantics, the
// non-premultiplied representation spec §3/§6 requires) for handing
// off to an encoder collaborator. The returned image aliases buf's
// storage — callers must not mutate buf concurrently with encoding.
func ToImage(buf *buffer.Buffer) image.Image {
	return &bufferImage{buf: buf}
}

type bufferImage struct {
	buf *buffer.Buffer
}

func (i *bufferImage) ColorModel() color.Model { return color.NRGBAModel }

func (i *bufferImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.buf.Width, i.buf.Height)
}

func (i *bufferImage) At(x, y int) color.Color {
	c := i.buf.Get(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
