package compose

import (
	"github.com/AnyUserName/imgcore/buffer"
)

// CompositeOptions configures Composite (spec §4.6.1).
type CompositeOptions struct {
	Blend   BlendMode
	Opacity float64 // used as given; the zero value makes the overlay fully transparent
	Left    int
	Top     int
	Tile    bool
}

// Composite implements spec §4.6.1: clone base, then for every
// destination pixel map into overlay space (tiling or clipping),
// blend, and alpha-mix the result back over base.
//
// DestIn/DestOut/SourceAtop are implemented with the full Porter-Duff
// alpha algebra (not the simplified "keep base color" shortcut the
// prose allows) so their output alpha is correct wherever overlay
// coverage is partial, not just where overlay is fully opaque.
func Composite(base, overlay *buffer.Buffer, opts CompositeOptions) (*buffer.Buffer, error) {
	opacity := opts.Opacity
	dst := buffer.Clone(base)
	w, h := base.Width, base.Height
	ow, oh := overlay.Width, overlay.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var ox, oy int
			if opts.Tile {
				ox = wrapMod(x-opts.Left, ow)
				oy = wrapMod(y-opts.Top, oh)
			} else {
				ox = x - opts.Left
				oy = y - opts.Top
				if ox < 0 || ox >= ow || oy < 0 || oy >= oh {
					continue
				}
			}

			bc := base.Get(x, y)
			oc := overlay.Get(ox, oy)

			br, bg, bb, ba := normalize(bc)
			or, og, ob, oa := normalize(oc)
			oaP := oa * opacity

			outR, outG, outB, outA, err := mixPixel(opts.Blend, br, bg, bb, ba, or, og, ob, oaP)
			if err != nil {
				return nil, err
			}
			if outA <= 0 {
				dst.Set(x, y, buffer.Color{})
				continue
			}
			dst.Set(x, y, buffer.Color{
				R: buffer.ClampByte(255 * outR),
				G: buffer.ClampByte(255 * outG),
				B: buffer.ClampByte(255 * outB),
				A: buffer.ClampByte(255 * outA),
			})
		}
	}
	return dst, nil
}

func normalize(c buffer.Color) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func wrapMod(v, m int) int {
	if m == 0 {
		return 0
	}
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// mixPixel computes the blended, alpha-mixed output for one pixel. For
// Normal/standard blend modes it follows spec §4.6.1 steps 3-4; for
// DestIn/DestOut/SourceAtop it applies the matching Porter-Duff
// coefficients directly instead of the generic mix formula.
func mixPixel(mode BlendMode, br, bg, bb, ba, or, og, ob, oaP float64) (r, g, b, a float64, err error) {
	switch mode {
	case DestIn:
		outA := ba * oaP
		return br, bg, bb, outA, nil
	case DestOut:
		outA := ba * (1 - oaP)
		return br, bg, bb, outA, nil
	case SourceAtop:
		// Fa=ba, Fb=1-oaP; resulting alpha is ba (base alpha passes
		// through unchanged; overlay only tints where base exists).
		if ba <= 0 {
			return 0, 0, 0, 0, nil
		}
		mr, errR := blendChannel(Normal, br, or)
		mg, errG := blendChannel(Normal, bg, og)
		mb, errB := blendChannel(Normal, bb, ob)
		if errR != nil {
			return 0, 0, 0, 0, errR
		}
		if errG != nil {
			return 0, 0, 0, 0, errG
		}
		if errB != nil {
			return 0, 0, 0, 0, errB
		}
		outR := (mr*oaP*ba + br*ba*(1-oaP)) / ba
		outG := (mg*oaP*ba + bg*ba*(1-oaP)) / ba
		outB := (mb*oaP*ba + bb*ba*(1-oaP)) / ba
		return outR, outG, outB, ba, nil
	}

	mr, err := blendChannel(mode, br, or)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	mg, err := blendChannel(mode, bg, og)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	mb, err := blendChannel(mode, bb, ob)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	outA := oaP + ba*(1-oaP)
	if outA <= 0 {
		return 0, 0, 0, 0, nil
	}

	if mode == Normal {
		outR := (or*oaP + br*ba*(1-oaP)) / outA
		outG := (og*oaP + bg*ba*(1-oaP)) / outA
		outB := (ob*oaP + bb*ba*(1-oaP)) / outA
		return outR, outG, outB, outA, nil
	}

	outR := br + (mr-br)*oaP
	outG := bg + (mg-bg)*oaP
	outB := bb + (mb-bb)*oaP
	return outR, outG, outB, outA, nil
}

// CompositeMultiple implements spec §4.6.2: fold layers left to right,
// each result becoming the next base.
func CompositeMultiple(base *buffer.Buffer, layers []struct {
	Overlay *buffer.Buffer
	Opts    CompositeOptions
}) (*buffer.Buffer, error) {
	if len(layers) == 0 {
		return buffer.Clone(base), nil
	}
	result := base
	for _, layer := range layers {
		next, err := Composite(result, layer.Overlay, layer.Opts)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}
