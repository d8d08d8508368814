package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
)

var errAvifencNotFound = errors.New("avifenc not found in PATH; install with: brew install libavif")

func itoa(v int) string { return strconv.Itoa(v) }

// tempPath creates a uniquely-named temp file and returns its path.
// pattern follows os.CreateTemp's "*" placeholder convention.
func tempPath(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp: %w", err)
	}
	path := f.Name()
	f.Close()
	return path, nil
}

// writeTempPNG writes img as a PNG to a fresh temp file and returns its
// path; used to hand pixels to external codec binaries (avifenc) that
// read files rather than stdin.
func writeTempPNG(img image.Image, pattern string) (string, error) {
	path, err := tempPath(pattern)
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode temp png: %w", err)
	}
	return path, nil
}

func removeTemp(path string) {
	if path != "" {
		os.Remove(path)
	}
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func wrapCmdErr(name string, err error, out []byte) error {
	return fmt.Errorf("%s: %w: %s", name, err, string(out))
}
