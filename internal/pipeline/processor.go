package pipeline

import (
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/imgcore/colorop"
	"github.com/AnyUserName/imgcore/filter"
	"github.com/AnyUserName/imgcore/internal/codec"
	"github.com/AnyUserName/imgcore/internal/encoder"
	"github.com/AnyUserName/imgcore/internal/hasher"
	"github.com/AnyUserName/imgcore/internal/manifest"
	"github.com/AnyUserName/imgcore/internal/thumbhash"
	"github.com/AnyUserName/imgcore/resample"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key            string
	asset          manifest.Asset
	err            error
	skippedRegress int // variants skipped because larger than original
}

// processImage handles a single source image: decode, thumbhash, resize, encode.
// Resize/encode run through the imgcore core (buffer + resample + filter);
// thumbhash stays on the decoded image.Image directly — per spec §1/GLOSSARY
// thumbhash generation is explicitly outside the core's scope, and its
// area-downscale fast paths are keyed on concrete image.Image types.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	// Open and decode image.
	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	buf := codec.FromImage(img)
	origW, origH := buf.Width, buf.Height
	hasAlpha := buf.HasAlpha

	// Generate thumbhash.
	hash := thumbhash.Encode(img)
	thumbHashB64 := base64.StdEncoding.EncodeToString(hash)

	// Compute average color via the core's alpha-gated mean (spec §4.5).
	dom := colorop.DominantColor(buf)
	avg := [3]uint8{dom.R, dom.G, dom.B}

	// Fill original info.
	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    origW,
			Height:   origH,
			Format:   src.Format,
			Size:     src.Size,
			HasAlpha: hasAlpha,
		},
		ThumbHash:   thumbHashB64,
		AspectRatio: float64(origW) / float64(origH),
		AvgColor:    &avg,
	}

	// Determine target widths.
	widths := cfg.Profile.EffectiveWidths(origW)

	// Determine output formats.
	formats := registry.ResolveFormats(cfg.Profile.Formats, hasAlpha)

	// Ensure output subdirectory exists.
	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	// Generate variants.
	for _, w := range widths {
		// Calculate proportional height.
		h := int(float64(origH) * float64(w) / float64(origW))
		if h < 1 {
			h = 1
		}

		// Resize through the core resampler (Lanczos-3, spec §4.2.4),
		// then a light unsharp pass to recover edge contrast lost to
		// downscale (spec §4.3.3), per the profile's SharpenSpec.
		resized, err := resample.Resize(buf, w, h, resample.Lanczos3)
		if err != nil {
			result.err = fmt.Errorf("resize %s@%dx%d: %w", src.Key, w, h, err)
			return result
		}
		if cfg.Profile.Sharpen.Amount > 0 {
			resized = filter.Unsharp(resized, cfg.Profile.Sharpen.Sigma,
				cfg.Profile.Sharpen.Amount, cfg.Profile.Sharpen.Threshold)
		}

		for _, format := range formats {
			enc := registry.Get(format)
			if enc == nil {
				continue
			}

			// Encode.
			data, err := codec.Encode(registry, resized, codec.ParseFormat(format), cfg.Profile.Quality)
			if err != nil {
				if cfg.Verbose {
					fmt.Fprintf(os.Stderr, "[imgcore] warn: encode %s@%dx%d as %s: %v\n",
						src.Key, w, h, format, err)
				}
				continue
			}

			// Skip variant if encoded size >= original (--no-regress-size).
			if cfg.NoRegressSize && int64(len(data)) >= src.Size {
				if cfg.Verbose {
					fmt.Fprintf(os.Stderr, "[imgcore] skip: %s@%dx%d %s — encoded %d >= original %d bytes\n",
						src.Key, w, h, format, len(data), src.Size)
				}
				result.skippedRegress++
				continue
			}

			// Content hash for filename.
			contentHash := hasher.ContentHash(data, 16)

			// Build filename: key.w.h.hash.ext
			fileName := fmt.Sprintf("%s.%d.%d.%s.%s",
				filepath.Base(src.Key), w, h, contentHash[:8], enc.Extension())
			relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

			// Write file.
			outPath := filepath.Join(cfg.OutputDir, relPath)
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				result.err = fmt.Errorf("write %s: %w", relPath, err)
				return result
			}

			result.asset.Variants = append(result.asset.Variants, manifest.Variant{
				Format: format,
				Width:  w,
				Height: h,
				Size:   int64(len(data)),
				Hash:   contentHash,
				Path:   relPath,
			})
		}
	}

	return result
}
