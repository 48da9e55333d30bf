package qoi

import "testing"

func TestPixelHash(t *testing.T) {
	tests := []struct {
		p    Pixel
		want uint8
	}{
		{Pixel{0, 0, 0, 0}, 0},
		{Pixel{0, 0, 0, 255}, uint8((255 * 11) % 64)},
		{Pixel{255, 255, 255, 255}, uint8((255*3 + 255*5 + 255*7 + 255*11) % 64)},
	}
	for _, tc := range tests {
		if got := tc.p.hash(); got != tc.want {
			t.Errorf("hash(%+v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestPixelEquals(t *testing.T) {
	a := Pixel{1, 2, 3, 4}
	b := Pixel{1, 2, 3, 4}
	c := Pixel{1, 2, 3, 5}
	if !a.Equals(b) {
		t.Errorf("expected %+v to equal %+v", a, b)
	}
	if a.Equals(c) {
		t.Errorf("expected %+v to not equal %+v", a, c)
	}
}

func TestBasePixel(t *testing.T) {
	want := Pixel{R: 0, G: 0, B: 0, A: 255}
	if basePixel != want {
		t.Errorf("basePixel = %+v, want %+v", basePixel, want)
	}
}
