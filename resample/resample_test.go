package resample

import (
	"testing"

	"github.com/AnyUserName/imgcore/buffer"
)

func makeBuffer(t *testing.T, pixels [][4]uint8, w, h int) *buffer.Buffer {
	t.Helper()
	b, err := buffer.Create(w, h, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pixels[i]
			b.Set(x, y, buffer.Color{R: p[0], G: p[1], B: p[2], A: p[3]})
			i++
		}
	}
	return b
}

// Scenario 1: nearest 2x2 -> 1x1.
func TestNearestScaleDown2x(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 255, 255},
	}, 2, 2)

	dst, err := Resize(src, 1, 1, Nearest)
	if err != nil {
		t.Fatal(err)
	}
	got := dst.Get(0, 0)
	want := buffer.Color{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestNearestResizeToSourceDimsIsByteEqual(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 2, 3, 4}, {5, 6, 7, 8},
		{9, 10, 11, 12}, {13, 14, 15, 16},
	}, 2, 2)
	dst, err := Resize(src, 2, 2, Nearest)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d: %d != %d", i, src.Pix[i], dst.Pix[i])
		}
	}
}

// Scenario 2: bilinear 2x2 -> 3x3, center pixel in [126,130].
func TestBilinearScale2x2To3x3(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{0, 0, 0, 255}, {255, 255, 255, 255},
		{255, 255, 255, 255}, {0, 0, 0, 255},
	}, 2, 2)

	dst, err := Resize(src, 3, 3, Bilinear)
	if err != nil {
		t.Fatal(err)
	}
	c := dst.Get(1, 1)
	if c.R < 126 || c.R > 130 {
		t.Fatalf("center r=%d want in [126,130]", c.R)
	}
}

func TestResizeInvalidDimensions(t *testing.T) {
	src, _ := buffer.Create(2, 2, buffer.Options{})
	if _, err := Resize(src, 0, 1, Nearest); err == nil {
		t.Fatal("expected error")
	}
}

func TestResizeUnknownKernel(t *testing.T) {
	src, _ := buffer.Create(2, 2, buffer.Options{})
	if _, err := Resize(src, 1, 1, Kernel(99)); err == nil {
		t.Fatal("expected error")
	}
}

func TestBicubicAndLanczosClampRange(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{0, 0, 0, 255}, {255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 0, 255}, {0, 255, 255, 255},
		{255, 0, 255, 255}, {255, 255, 255, 255}, {128, 128, 128, 255},
	}, 3, 3)

	for _, k := range []Kernel{Bicubic, Lanczos2, Lanczos3} {
		dst, err := Resize(src, 6, 6, k)
		if err != nil {
			t.Fatal(err)
		}
		if dst.Width != 6 || dst.Height != 6 {
			t.Fatalf("dims %dx%d", dst.Width, dst.Height)
		}
		for _, v := range dst.Pix {
			if v > 255 { // always true for uint8, guards against overflow bugs upstream
				t.Fatalf("channel overflow: %d", v)
			}
		}
	}
}

func TestDimensionsBothAbsent(t *testing.T) {
	w, h, err := Dimensions(10, 20, nil, nil, Fill)
	if err != nil {
		t.Fatal(err)
	}
	if w != 10 || h != 20 {
		t.Fatalf("got %dx%d", w, h)
	}
}

func TestDimensionsOnlyWidth(t *testing.T) {
	tw := 100
	w, h, err := Dimensions(200, 100, &tw, nil, Fill)
	if err != nil {
		t.Fatal(err)
	}
	if w != 100 || h != 50 {
		t.Fatalf("got %dx%d want 100x50", w, h)
	}
}

func TestDimensionsContainFitsInside(t *testing.T) {
	tw, th := 100, 100
	w, h, err := Dimensions(200, 100, &tw, &th, Contain)
	if err != nil {
		t.Fatal(err)
	}
	if w > 100 || h > 100 {
		t.Fatalf("contain overflowed target: %dx%d", w, h)
	}
	// aspect preserved: 200/100 == 2, so w==100, h==50
	if w != 100 || h != 50 {
		t.Fatalf("got %dx%d want 100x50", w, h)
	}
}

func TestFitResizeCoverCoversTarget(t *testing.T) {
	src, _ := buffer.Create(200, 100, buffer.Options{Alpha: true})
	tw, th := 50, 50
	dst, err := FitResize(src, ResizeDescriptor{
		TargetWidth: &tw, TargetHeight: &th, Fit: Cover, Kernel: Bilinear,
	})
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 50 || dst.Height != 50 {
		t.Fatalf("got %dx%d want 50x50", dst.Width, dst.Height)
	}
}

func TestFitResizeContainLetterboxesWithBackground(t *testing.T) {
	src, _ := buffer.Create(200, 100, buffer.Options{Alpha: true})
	tw, th := 100, 100
	bg := buffer.Color{R: 9, G: 9, B: 9, A: 255}
	dst, err := FitResize(src, ResizeDescriptor{
		TargetWidth: &tw, TargetHeight: &th, Fit: Contain, Kernel: Bilinear, Background: &bg,
	})
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 100 || dst.Height != 100 {
		t.Fatalf("got %dx%d want 100x100", dst.Width, dst.Height)
	}
	// corner should be background-filled letterbox.
	if c := dst.Get(0, 0); c != bg {
		t.Fatalf("corner=%+v want background %+v", c, bg)
	}
}

func TestFitResizeInsideReturnsSourceWhenSmaller(t *testing.T) {
	src, _ := buffer.Create(10, 10, buffer.Options{Alpha: true})
	tw, th := 100, 100
	dst, err := FitResize(src, ResizeDescriptor{TargetWidth: &tw, TargetHeight: &th, Fit: Inside, Kernel: Nearest})
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 10 || dst.Height != 10 {
		t.Fatalf("got %dx%d want 10x10", dst.Width, dst.Height)
	}
}

func TestFitResizeOutsideReturnsSourceWhenAlreadyCovers(t *testing.T) {
	src, _ := buffer.Create(200, 200, buffer.Options{Alpha: true})
	tw, th := 100, 100
	dst, err := FitResize(src, ResizeDescriptor{TargetWidth: &tw, TargetHeight: &th, Fit: Outside, Kernel: Nearest})
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 200 || dst.Height != 200 {
		t.Fatalf("got %dx%d want 200x200", dst.Width, dst.Height)
	}
}

func TestLanczosRoundTripDimensionsExact(t *testing.T) {
	src, _ := buffer.Create(17, 23, buffer.Options{Alpha: true})
	mid, err := Resize(src, 40, 40, Lanczos3)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Resize(mid, 17, 23, Lanczos3)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width != 17 || back.Height != 23 {
		t.Fatalf("got %dx%d want 17x23", back.Width, back.Height)
	}
}
