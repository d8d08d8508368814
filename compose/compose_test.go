package compose

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

func TestCompositeNormalFullyOpaqueOverlayReplaces(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 10, G: 10, B: 10, A: 255})
	overlay := solid(t, 2, 2, buffer.Color{R: 200, G: 100, B: 50, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: Normal, Opacity: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := buffer.Color{R: 200, G: 100, B: 50, A: 255}
	if got := dst.Get(0, 0); got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCompositeZeroOpacityKeepsBase(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 10, G: 20, B: 30, A: 255})
	overlay := solid(t, 2, 2, buffer.Color{R: 200, G: 200, B: 200, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: Normal, Opacity: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0); got != (buffer.Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("got %+v want base unchanged", got)
	}
}

func TestCompositeOutsideOverlayRectLeavesBaseUnchanged(t *testing.T) {
	base := solid(t, 4, 4, buffer.Color{R: 5, G: 5, B: 5, A: 255})
	overlay := solid(t, 2, 2, buffer.Color{R: 250, G: 250, B: 250, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: Normal, Opacity: 1, Left: 0, Top: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(3, 3); got.R != 5 {
		t.Fatalf("pixel outside overlay rect should be untouched, got %+v", got)
	}
}

func TestCompositeTileWrapsOverlay(t *testing.T) {
	base := solid(t, 4, 1, buffer.Color{A: 255})
	overlay := solid(t, 1, 1, buffer.Color{R: 255, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: Normal, Opacity: 1, Tile: true})
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 4; x++ {
		if got := dst.Get(x, 0).R; got != 255 {
			t.Fatalf("tiled overlay should cover every pixel, x=%d got %d", x, got)
		}
	}
}

func TestCompositeMultiplyBlackBaseStaysBlack(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{A: 255})
	overlay := solid(t, 2, 2, buffer.Color{R: 255, G: 255, B: 255, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: Multiply, Opacity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0); got.R != 0 {
		t.Fatalf("multiply with black base should stay black, got %+v", got)
	}
}

func TestCompositeDestInKeepsBaseColorGatesByOverlayAlpha(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 100, G: 150, B: 200, A: 255})
	overlay := solid(t, 2, 2, buffer.Color{A: 128})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: DestIn, Opacity: 1})
	if err != nil {
		t.Fatal(err)
	}
	got := dst.Get(0, 0)
	if got.R != 100 || got.G != 150 || got.B != 200 {
		t.Fatalf("dest-in should keep base color, got %+v", got)
	}
	if got.A < 125 || got.A > 130 {
		t.Fatalf("dest-in alpha should be ~half of base alpha, got %d", got.A)
	}
}

func TestCompositeDestOutZeroesWhereOverlayOpaque(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 100, G: 100, B: 100, A: 255})
	overlay := solid(t, 2, 2, buffer.Color{A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: DestOut, Opacity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0).A; got != 0 {
		t.Fatalf("dest-out under fully opaque overlay should zero alpha, got %d", got)
	}
}

func TestCompositeSourceAtopKeepsBaseAlpha(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 10, G: 10, B: 10, A: 128})
	overlay := solid(t, 2, 2, buffer.Color{R: 250, G: 250, B: 250, A: 255})
	dst, err := Composite(base, overlay, CompositeOptions{Blend: SourceAtop, Opacity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0).A; got != 128 {
		t.Fatalf("source-atop should preserve base alpha, got %d", got)
	}
}

func TestCompositeMultipleFoldsLeftToRight(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{A: 255})
	layer1 := solid(t, 2, 2, buffer.Color{R: 100, A: 255})
	layer2 := solid(t, 2, 2, buffer.Color{G: 200, A: 255})
	dst, err := CompositeMultiple(base, []struct {
		Overlay *buffer.Buffer
		Opts    CompositeOptions
	}{
		{layer1, CompositeOptions{Blend: Normal, Opacity: 1}},
		{layer2, CompositeOptions{Blend: Normal, Opacity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := buffer.Color{R: 0, G: 200, B: 0, A: 255}
	if got := dst.Get(0, 0); got != want {
		t.Fatalf("got %+v want %+v (last layer wins where fully opaque)", got, want)
	}
}

func TestCompositeMultipleEmptyLayersClonesBase(t *testing.T) {
	base := solid(t, 2, 2, buffer.Color{R: 1, G: 2, B: 3, A: 255})
	dst, err := CompositeMultiple(base, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range base.Pix {
		if base.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestCreateSolidColor(t *testing.T) {
	c := buffer.Color{R: 9, G: 8, B: 7, A: 255}
	dst, err := CreateSolidColor(3, 3, c)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(1, 1); got != c {
		t.Fatalf("got %+v want %+v", got, c)
	}
}

func TestCreateLinearGradientHorizontalEndpoints(t *testing.T) {
	start := buffer.Color{R: 0, G: 0, B: 0, A: 255}
	end := buffer.Color{R: 255, G: 255, B: 255, A: 255}
	dst, err := CreateLinearGradient(5, 1, start, end, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0); got != start {
		t.Fatalf("first pixel got %+v want start %+v", got, start)
	}
	if got := dst.Get(4, 0); got != end {
		t.Fatalf("last pixel got %+v want end %+v", got, end)
	}
}

func TestCreateLinearGradientSinglePixelExtentAvoidsDivByZero(t *testing.T) {
	start := buffer.Color{R: 10, A: 255}
	end := buffer.Color{R: 200, A: 255}
	dst, err := CreateLinearGradient(1, 1, start, end, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	if got := dst.Get(0, 0); got != start {
		t.Fatalf("single-pixel extent should use t=0, got %+v", got)
	}
}
