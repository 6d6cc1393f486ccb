package msdf

import "testing"

func TestNewPixmapFromMatchingLength(t *testing.T) {
	pix := make([]RGB, 6)
	p, err := NewPixmapFrom(3, 2, pix)
	if err != nil {
		t.Fatalf("NewPixmapFrom = %v, want nil error", err)
	}
	p.Set(1, 1, RGB{R: 1})
	if got := p.At(1, 1); got.R != 1 {
		t.Errorf("At(1,1) = %+v, want R=1", got)
	}
}

func TestNewPixmapFromMismatchedLength(t *testing.T) {
	pix := make([]RGB, 5)
	_, err := NewPixmapFrom(3, 2, pix)
	if err == nil {
		t.Fatal("NewPixmapFrom with a mismatched slice should return an error")
	}
	pe, ok := err.(*PixmapError)
	if !ok {
		t.Fatalf("error %v is not a *PixmapError", err)
	}
	if pe.GotElements != 5 || pe.Width != 3 || pe.Height != 2 {
		t.Errorf("PixmapError = %+v, want Width=3 Height=2 GotElements=5", pe)
	}
}

func TestClampByteSaturates(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToRGB8Quantizes(t *testing.T) {
	src := NewPixmap[RGB](1, 1)
	src.Set(0, 0, RGB{R: 1, G: 0.5, B: 0})
	dst := ToRGB8(src)
	got := dst.At(0, 0)
	want := RGB8{R: 255, G: 128, B: 0}
	if got != want {
		t.Errorf("ToRGB8 = %+v, want %+v", got, want)
	}
}

func TestToGray8Quantizes(t *testing.T) {
	src := NewPixmap[float32](2, 1)
	src.Set(0, 0, 0)
	src.Set(1, 0, 1)
	dst := ToGray8(src)
	if dst.At(0, 0) != 0 || dst.At(1, 0) != 255 {
		t.Errorf("ToGray8 = [%d, %d], want [0, 255]", dst.At(0, 0), dst.At(1, 0))
	}
}
