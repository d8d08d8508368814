package codec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/AnyUserName/imgcore/buffer"
	"github.com/AnyUserName/imgcore/imgerr"
	"github.com/AnyUserName/imgcore/internal/encoder"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode turns encoded bytes into an owned buffer.Buffer per spec §6.
// AVIF/HEIF are detected (DetectFormat) but not decoded here — no
// pure-Go decoder for either exists in the retrieval pack; callers
// needing those must shell out before handing this package raw pixels.
func Decode(data []byte) (*buffer.Buffer, Format, error) {
	format := DetectFormat(data)
	if format == AVIF || format == HEIF {
		return nil, format, imgerr.New(imgerr.Unsupported, "codec.Decode",
			fmt.Sprintf("%s decoding requires an external collaborator", format))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, imgerr.Wrap(imgerr.InvalidArgument, "codec.Decode", err)
	}
	return FromImage(img), format, nil
}

// Encode renders buf through the format's registered encoder.Encoder
// at the given quality (ignored by lossless formats). This is the
// thin seam between the core's owned Buffer and the byte-stream
// encoders, which remain outside the core per spec §1.
func Encode(reg *encoder.Registry, buf *buffer.Buffer, format Format, quality int) ([]byte, error) {
	enc := reg.Get(format.String())
	if enc == nil {
		return nil, imgerr.New(imgerr.Unsupported, "codec.Encode", "no encoder registered for "+format.String())
	}
	return enc.Encode(ToImage(buf), quality)
}
