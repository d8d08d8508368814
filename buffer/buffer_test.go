package buffer

import "testing"

func TestCreateZeroed(t *testing.T) {
	b, err := Create(3, 2, Options{Alpha: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Pix) != 4*3*2 {
		t.Fatalf("len=%d want %d", len(b.Pix), 4*3*2)
	}
	for _, v := range b.Pix {
		if v != 0 {
			t.Fatalf("expected zeroed storage, got %v", b.Pix)
		}
	}
}

func TestCreateNoAlphaForcesOpaque(t *testing.T) {
	b, err := Create(2, 2, Options{Alpha: false})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := b.Get(x, y); c.A != 255 {
				t.Fatalf("alpha=%d want 255", c.A)
			}
		}
	}
}

func TestCreateFill(t *testing.T) {
	fill := Color{10, 20, 30, 200}
	b, err := Create(2, 2, Options{Alpha: true, Fill: &fill})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Get(1, 1); got != fill {
		t.Fatalf("got %+v want %+v", got, fill)
	}
}

func TestCreateInvalidDimensions(t *testing.T) {
	if _, err := Create(0, 1, Options{}); err == nil {
		t.Fatal("expected error for w<=0")
	}
	if _, err := Create(1, -1, Options{}); err == nil {
		t.Fatal("expected error for h<=0")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := Create(2, 2, Options{Alpha: true})
	b.Set(0, 0, Color{1, 2, 3, 4})
	c := Clone(b)
	c.Set(0, 0, Color{9, 9, 9, 9})
	if got := b.Get(0, 0); got != (Color{1, 2, 3, 4}) {
		t.Fatalf("clone mutated source: %+v", got)
	}
	if c == b {
		t.Fatal("clone must be a distinct pointer")
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	b, _ := Create(2, 2, Options{Alpha: true})
	if got := b.Get(-1, 0); got != (Color{}) {
		t.Fatalf("got %+v want zero", got)
	}
	if got := b.Get(5, 5); got != (Color{}) {
		t.Fatalf("got %+v want zero", got)
	}
	b.Set(10, 10, Color{1, 2, 3, 4}) // must not panic
}

func TestSetClampsRange(t *testing.T) {
	b, _ := Create(1, 1, Options{Alpha: true})
	b.Set(0, 0, Color{255, 0, 128, 255})
	if got := b.Get(0, 0); got != (Color{255, 0, 128, 255}) {
		t.Fatalf("got %+v", got)
	}
}

func TestSampleBilinearExact(t *testing.T) {
	b, _ := Create(2, 2, Options{Alpha: true})
	b.Set(0, 0, Color{0, 0, 0, 255})
	b.Set(1, 0, Color{255, 255, 255, 255})
	b.Set(0, 1, Color{255, 255, 255, 255})
	b.Set(1, 1, Color{0, 0, 0, 255})

	c := b.SampleBilinear(0.5, 0.5)
	if c.R < 126 || c.R > 130 {
		t.Fatalf("center sample r=%d want ~127.5", c.R)
	}
}

func TestSampleBilinearClampsBorder(t *testing.T) {
	b, _ := Create(2, 2, Options{Alpha: true})
	fill := Color{42, 42, 42, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			b.Set(x, y, fill)
		}
	}
	c := b.SampleBilinear(5, 5)
	if c != fill {
		t.Fatalf("got %+v want %+v", c, fill)
	}
}

func TestFromCodecData3Channel(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60}
	b, err := FromCodecData(data, 2, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Get(0, 0); got != (Color{10, 20, 30, 255}) {
		t.Fatalf("got %+v", got)
	}
	if got := b.Get(1, 0); got != (Color{40, 50, 60, 255}) {
		t.Fatalf("got %+v", got)
	}
	if b.HasAlpha {
		t.Fatal("3-channel import should report HasAlpha=false")
	}
}

func TestFromCodecData4Channel(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	b, err := FromCodecData(data, 1, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Get(0, 0); got != (Color{1, 2, 3, 4}) {
		t.Fatalf("got %+v", got)
	}
}

func TestToCodecDataRoundTrip(t *testing.T) {
	b, _ := Create(1, 1, Options{Alpha: true})
	b.Set(0, 0, Color{5, 6, 7, 8})

	rgb, err := b.ToCodecData(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(rgb) != 3 || rgb[0] != 5 || rgb[1] != 6 || rgb[2] != 7 {
		t.Fatalf("got %v", rgb)
	}

	rgba, err := b.ToCodecData(4)
	if err != nil {
		t.Fatal(err)
	}
	if len(rgba) != 4 || rgba[3] != 8 {
		t.Fatalf("got %v", rgba)
	}
}

func TestToCodecDataInvalidChannels(t *testing.T) {
	b, _ := Create(1, 1, Options{})
	if _, err := b.ToCodecData(2); err == nil {
		t.Fatal("expected error")
	}
}
