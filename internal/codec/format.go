// Package codec is the decode/encode/detectFormat collaborator the
// core consumes per spec §6: it turns codec byte streams into an
// owned buffer.Buffer and back, entirely outside the core's scope.
package codec

import "bytes"

// Format tags a detected or requested container format.
type Format int

const (
	Unknown Format = iota
	JPEG
	PNG
	GIF
	BMP
	WebP
	AVIF
	HEIF
	TIFF
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case WebP:
		return "webp"
	case AVIF:
		return "avif"
	case HEIF:
		return "heif"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gifMagic  = []byte{0x47, 0x49, 0x46}
	bmpMagic  = []byte{0x42, 0x4D}
	tiffLE    = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffBE    = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

var avifBrands = map[string]bool{"avif": true, "avis": true, "mif1": true, "miaf": true}
var heifBrands = map[string]bool{"heic": true, "heix": true, "hevc": true, "hevx": true}

// DetectFormat sniffs the container format from its magic bytes per
// spec §6. Returns Unknown when no signature matches.
func DetectFormat(data []byte) Format {
	switch {
	case hasPrefix(data, jpegMagic):
		return JPEG
	case hasPrefix(data, pngMagic):
		return PNG
	case hasPrefix(data, gifMagic):
		return GIF
	case hasPrefix(data, bmpMagic):
		return BMP
	case hasPrefix(data, tiffLE), hasPrefix(data, tiffBE):
		return TIFF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WebP
	case len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")):
		brand := string(data[8:12])
		switch {
		case avifBrands[brand]:
			return AVIF
		case heifBrands[brand]:
			return HEIF
		}
	}
	return Unknown
}

// ParseFormat maps a lowercase format name (as used by profile configs
// and the encoder registry) to a Format tag.
func ParseFormat(name string) Format {
	switch name {
	case "jpeg", "jpg":
		return JPEG
	case "png":
		return PNG
	case "gif":
		return GIF
	case "bmp":
		return BMP
	case "webp":
		return WebP
	case "avif":
		return AVIF
	case "heif", "heic":
		return HEIF
	case "tiff":
		return TIFF
	default:
		return Unknown
	}
}

func hasPrefix(data, magic []byte) bool {
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic)
}
