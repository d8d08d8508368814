package transform

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

// Scenario 3: 3x2 input rows [A,B,C],[D,E,F] rotated 90 clockwise.
func TestRotate90Scenario(t *testing.T) {
	A := buffer.Color{R: 1, A: 255}
	B := buffer.Color{R: 2, A: 255}
	C := buffer.Color{R: 3, A: 255}
	D := buffer.Color{R: 4, A: 255}
	E := buffer.Color{R: 5, A: 255}
	F := buffer.Color{R: 6, A: 255}

	src, err := buffer.Create(3, 2, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	src.Set(0, 0, A)
	src.Set(1, 0, B)
	src.Set(2, 0, C)
	src.Set(0, 1, D)
	src.Set(1, 1, E)
	src.Set(2, 1, F)

	dst := Rotate90(src)
	if dst.Width != 2 || dst.Height != 3 {
		t.Fatalf("got %dx%d want 2x3", dst.Width, dst.Height)
	}
	want := map[[2]int]buffer.Color{
		{0, 0}: D, {0, 1}: E, {0, 2}: F,
		{1, 0}: A, {1, 1}: B, {1, 2}: C,
	}
	for pos, w := range want {
		if got := dst.Get(pos[0], pos[1]); got != w {
			t.Fatalf("(%d,%d)=%+v want %+v", pos[0], pos[1], got, w)
		}
	}
}

func TestRotate90x4IsIdentity(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12},
	}, 3, 1)
	r := src
	for i := 0; i < 4; i++ {
		r = Rotate90(r)
	}
	if r.Width != src.Width || r.Height != src.Height {
		t.Fatalf("dims changed: got %dx%d want %dx%d", r.Width, r.Height, src.Width, src.Height)
	}
	for i := range src.Pix {
		if src.Pix[i] != r.Pix[i] {
			t.Fatalf("byte %d differs after 4x rotate90", i)
		}
	}
}

func TestRotate180(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 0, 0, 255}, {2, 0, 0, 255},
		{3, 0, 0, 255}, {4, 0, 0, 255},
	}, 2, 2)
	dst := Rotate180(src)
	if dst.Get(0, 0).R != 4 || dst.Get(1, 1).R != 1 {
		t.Fatalf("rotate180 mismatch: %+v", dst.Pix)
	}
}

func TestRotateZeroDegreesClones(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 2, 3, 4}, {5, 6, 7, 8},
	}, 2, 1)
	dst := Rotate(src, 0, RotateOptions{})
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs for rotate(0)", i)
		}
	}
}

func TestRotate90FastPathMatchesRotate90(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 2, 3, 255}, {4, 5, 6, 255},
	}, 2, 1)
	want := Rotate90(src)
	got := Rotate(src, 90, RotateOptions{})
	if got.Width != want.Width || got.Height != want.Height {
		t.Fatalf("dims differ")
	}
	for i := range want.Pix {
		if want.Pix[i] != got.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestRotate45ExpandGrowsCanvas(t *testing.T) {
	src, _ := buffer.Create(10, 10, buffer.Options{Alpha: true})
	dst := Rotate(src, 45, RotateOptions{Expand: true})
	if dst.Width <= 10 || dst.Height <= 10 {
		t.Fatalf("expand should grow canvas, got %dx%d", dst.Width, dst.Height)
	}
}

func TestRotate45NoExpandKeepsDims(t *testing.T) {
	src, _ := buffer.Create(10, 10, buffer.Options{Alpha: true})
	dst := Rotate(src, 45, RotateOptions{})
	if dst.Width != 10 || dst.Height != 10 {
		t.Fatalf("no-expand rotate should keep dims, got %dx%d", dst.Width, dst.Height)
	}
}

func TestFlipFlipIsIdentity(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 0, 0, 255}, {2, 0, 0, 255},
		{3, 0, 0, 255}, {4, 0, 0, 255},
	}, 2, 2)
	got := Flip(Flip(src))
	for i := range src.Pix {
		if src.Pix[i] != got.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestFlopFlopIsIdentity(t *testing.T) {
	src := makeBuffer(t, [][4]uint8{
		{1, 0, 0, 255}, {2, 0, 0, 255},
		{3, 0, 0, 255}, {4, 0, 0, 255},
	}, 2, 2)
	got := Flop(Flop(src))
	for i := range src.Pix {
		if src.Pix[i] != got.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestCropClampsToBounds(t *testing.T) {
	src, _ := buffer.Create(10, 10, buffer.Options{Alpha: true})
	dst := Crop(src, 8, 8, 100, 100)
	if dst.Width != 2 || dst.Height != 2 {
		t.Fatalf("got %dx%d want 2x2", dst.Width, dst.Height)
	}
}

func TestCropNegativeOriginClampsToZero(t *testing.T) {
	src, _ := buffer.Create(10, 10, buffer.Options{Alpha: true})
	dst := Crop(src, -5, -5, 4, 4)
	if dst.Width != 4 || dst.Height != 4 {
		t.Fatalf("got %dx%d want 4x4", dst.Width, dst.Height)
	}
}

func TestExtendPastesAtOffset(t *testing.T) {
	src, _ := buffer.Create(2, 2, buffer.Options{Alpha: true, Fill: &buffer.Color{R: 1, G: 1, B: 1, A: 255}})
	bg := buffer.Color{R: 9, G: 9, B: 9, A: 255}
	dst, err := Extend(src, 1, 1, 1, 1, bg)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 4 || dst.Height != 4 {
		t.Fatalf("got %dx%d want 4x4", dst.Width, dst.Height)
	}
	if got := dst.Get(0, 0); got != bg {
		t.Fatalf("corner should be background, got %+v", got)
	}
	if got := dst.Get(1, 1); got.R != 1 {
		t.Fatalf("pasted region should be source, got %+v", got)
	}
}

// Scenario 7.
func TestTrimScenario(t *testing.T) {
	src, err := buffer.Create(4, 4, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	src.Set(2, 2, buffer.Color{R: 255, G: 255, B: 255, A: 255})
	bg := buffer.Color{}
	dst := Trim(src, 10, &bg)
	if dst.Width != 1 || dst.Height != 1 {
		t.Fatalf("got %dx%d want 1x1", dst.Width, dst.Height)
	}
	want := buffer.Color{R: 255, G: 255, B: 255, A: 255}
	if got := dst.Get(0, 0); got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestTrimFullyBackgroundReturns1x1(t *testing.T) {
	src, err := buffer.Create(5, 5, buffer.Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	dst := Trim(src, 10, nil)
	if dst.Width != 1 || dst.Height != 1 {
		t.Fatalf("got %dx%d want 1x1", dst.Width, dst.Height)
	}
}

func TestTrimAdoptsCornerPixelWhenBackgroundNil(t *testing.T) {
	src, err := buffer.Create(3, 3, buffer.Options{Alpha: true, Fill: &buffer.Color{R: 20, G: 20, B: 20, A: 255}})
	if err != nil {
		t.Fatal(err)
	}
	src.Set(1, 1, buffer.Color{R: 250, G: 250, B: 250, A: 255})
	dst := Trim(src, 10, nil)
	if dst.Width != 1 || dst.Height != 1 {
		t.Fatalf("got %dx%d want 1x1", dst.Width, dst.Height)
	}
}
