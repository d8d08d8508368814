package encoder

import (
	"bytes"
	"image"
	"os/exec"
	"sync"

	nativewebp "github.com/HugoSmits86/nativewebp"
	gen2brain "github.com/gen2brain/webp"
)

// WebPEncoder encodes images to WebP using gen2brain/webp (lossy, the
// common case), or HugoSmits86/nativewebp (lossless) when Lossless is
// set; the encoder never switches to the lossless path on its own.
// Both are pure Go, replacing the teacher's cwebp shell-out so a
// missing system binary no longer disables an output format.
type WebPEncoder struct {
	// Lossless forces the nativewebp lossless encoder regardless of
	// quality; used by validate's round-trip check, which needs the
	// pixels to survive exactly.
	Lossless bool
}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) Extension() string { return "webp" }
func (e *WebPEncoder) Available() bool   { return true }

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if e.Lossless {
		var buf bytes.Buffer
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if quality <= 0 || quality > 100 {
		quality = 82
	}
	var buf bytes.Buffer
	buf.Grow(128 * 1024)
	opts := gen2brain.Options{Quality: quality, Lossless: false}
	if err := gen2brain.Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AVIFEncoder encodes images to AVIF by shelling out to avifenc. No
// pure-Go AVIF encoder exists anywhere in the retrieval pack, so this
// keeps the teacher's exec.Command approach rather than fabricating a
// dependency that doesn't exist (see DESIGN.md).
type AVIFEncoder struct {
	once        sync.Once
	available   bool
	avifencPath string
}

func (e *AVIFEncoder) Format() string    { return "avif" }
func (e *AVIFEncoder) Extension() string { return "avif" }

func (e *AVIFEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("avifenc")
		if err == nil {
			e.available = true
			e.avifencPath = path
		}
	})
	return e.available
}

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, errAvifencNotFound
	}
	if quality <= 0 || quality > 100 {
		quality = 82
	}
	avifQ := 63 - (quality * 63 / 100)
	speed := 6

	srcPath, err := writeTempPNG(img, "imgcore_avif_src_*.png")
	if err != nil {
		return nil, err
	}
	defer removeTemp(srcPath)

	dstPath, err := tempPath("imgcore_avif_dst_*.avif")
	if err != nil {
		return nil, err
	}
	defer removeTemp(dstPath)

	cmd := exec.Command(e.avifencPath,
		"--min", itoa(avifQ),
		"--max", itoa(avifQ),
		"--speed", itoa(speed),
		"-j", "all",
		srcPath,
		dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, wrapCmdErr("avifenc", err, out)
	}
	return readFile(dstPath)
}
