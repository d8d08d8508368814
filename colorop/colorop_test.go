package colorop

import (
	"testing"

	"github.com/AnyUserName/imgcore/buffer"
)

func solid(t *testing.T, w, h int, c buffer.Color) *buffer.Buffer {
	t.Helper()
	b, err := buffer.Create(w, h, buffer.Options{Alpha: true, Fill: &c})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGrayscaleSetsEqualChannels(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 10, G: 200, B: 40, A: 255})
	dst := Grayscale(src)
	c := dst.Get(0, 0)
	if c.R != c.G || c.G != c.B {
		t.Fatalf("expected R=G=B, got %+v", c)
	}
	if c.A != 255 {
		t.Fatalf("alpha not preserved")
	}
}

func TestThresholdLevelZeroIsAllWhite(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 0, G: 0, B: 0, A: 255})
	dst := Threshold(src, 0, ThresholdOptions{Grayscale: true})
	if c := dst.Get(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("got %+v want all-255", c)
	}
}

func TestThresholdLevelAbove255IsAllBlack(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 255, G: 255, B: 255, A: 255})
	dst := Threshold(src, 256, ThresholdOptions{Grayscale: true})
	if c := dst.Get(0, 0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("got %+v want all-0", c)
	}
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 17, G: 200, B: 99, A: 50})
	dst := Invert(Invert(src))
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs after invert(invert())", i)
		}
	}
}

func TestContrastFactorOneIsIdentity(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 30, G: 130, B: 230, A: 255})
	dst := Contrast(src, 1.0)
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs with factor=1", i)
		}
	}
}

func TestGammaOneIsApproximatelyIdentity(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 100, G: 150, B: 200, A: 255})
	dst := Gamma(src, 1.0)
	c := dst.Get(0, 0)
	if absDiff(int(c.R), 100) > 1 || absDiff(int(c.G), 150) > 1 || absDiff(int(c.B), 200) > 1 {
		t.Fatalf("got %+v want ~100,150,200", c)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestNormalizeStretchesFullRange(t *testing.T) {
	src, err := buffer.Create(2, 1, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	src.Set(0, 0, buffer.Color{R: 50, G: 50, B: 50, A: 255})
	src.Set(1, 0, buffer.Color{R: 150, G: 150, B: 150, A: 255})
	dst := Normalize(src)
	if got := dst.Get(0, 0).R; got != 0 {
		t.Fatalf("min should map to 0, got %d", got)
	}
	if got := dst.Get(1, 0).R; got != 255 {
		t.Fatalf("max should map to 255, got %d", got)
	}
}

func TestNormalizeFlatImageDoesNotDivideByZero(t *testing.T) {
	src := solid(t, 3, 3, buffer.Color{R: 77, G: 77, B: 77, A: 255})
	dst := Normalize(src)
	if got := dst.Get(1, 1).R; got != 0 {
		t.Fatalf("flat image should normalize to 0 everywhere, got %d", got)
	}
}

func TestDominantColorAveragesOpaquePixels(t *testing.T) {
	src, err := buffer.Create(2, 1, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	src.Set(0, 0, buffer.Color{R: 100, G: 100, B: 100, A: 255})
	src.Set(1, 0, buffer.Color{R: 0, G: 0, B: 0, A: 0}) // below alpha threshold, excluded
	got := DominantColor(src)
	want := buffer.RGB{R: 100, G: 100, B: 100}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDominantColorNoOpaquePixelsIsBlack(t *testing.T) {
	src, err := buffer.Create(2, 1, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	got := DominantColor(src)
	if got != (buffer.RGB{}) {
		t.Fatalf("got %+v want zero value", got)
	}
}

func TestRgbToHslToRgbRoundTrip(t *testing.T) {
	cases := []buffer.Color{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 128, G: 64, B: 200, A: 255},
		{R: 10, G: 10, B: 10, A: 255},
	}
	for _, c := range cases {
		hsl := RgbToHsl(c)
		r, g, b := HslToRgb(hsl)
		if absDiff(int(r), int(c.R)) > 1 || absDiff(int(g), int(c.G)) > 1 || absDiff(int(b), int(c.B)) > 1 {
			t.Fatalf("round trip for %+v got (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestModulateIdentityFactors(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 90, G: 40, B: 200, A: 255})
	dst := Modulate(src, ModulateOptions{Brightness: 1, Saturation: 1, Lightness: 1})
	c := dst.Get(0, 0)
	if absDiff(int(c.R), 90) > 2 || absDiff(int(c.G), 40) > 2 || absDiff(int(c.B), 200) > 2 {
		t.Fatalf("got %+v want ~90,40,200", c)
	}
}

func TestSrgbLinearRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v += 17 {
		linear := SrgbToLinear(uint8(v))
		back := LinearToSrgb(linear)
		if absDiff(int(back), v) > 1 {
			t.Fatalf("round trip for %d got %d", v, back)
		}
	}
}

func TestSepiaAmountZeroIsIdentity(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 80, G: 90, B: 100, A: 255})
	dst := Sepia(src, 0)
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs with amount=0", i)
		}
	}
}

func TestToColorSpaceSameSpaceClones(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 1, G: 2, B: 3, A: 255})
	dst := ToColorSpace(src, buffer.SRGB)
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestToColorSpaceRoundTripIsApproximatelyIdentity(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 120, G: 60, B: 200, A: 255})
	p3 := ToColorSpace(src, buffer.DisplayP3)
	back := ToColorSpace(p3, buffer.SRGB)
	c := back.Get(0, 0)
	if absDiff(int(c.R), 120) > 3 || absDiff(int(c.G), 60) > 3 || absDiff(int(c.B), 200) > 3 {
		t.Fatalf("round trip got %+v want ~120,60,200", c)
	}
}

func TestTintFullAmountMatchesGrayTimesColor(t *testing.T) {
	src := solid(t, 2, 2, buffer.Color{R: 100, G: 100, B: 100, A: 255})
	dst := Tint(src, buffer.Color{R: 255, G: 0, B: 0, A: 255}, 1.0)
	c := dst.Get(0, 0)
	if c.G != 0 || c.B != 0 {
		t.Fatalf("tint with red should zero G/B, got %+v", c)
	}
}
