package qoi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderRoundTrip(t *testing.T) {
	want := Descriptor{Width: 1920, Height: 1080, Channels: 4, Colorspace: 0}
	buf := make([]byte, HeaderSize)
	writeHeader(buf, want)

	got, err := readHeader(buf)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, "zzzz")
	buf[12], buf[13] = 4, 0
	_, err := readHeader(buf)
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	_, err := readHeader(make([]byte, 4))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestReadHeaderInvariants(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"zero width", Descriptor{Width: 0, Height: 1, Channels: 4, Colorspace: 0}},
		{"zero height", Descriptor{Width: 1, Height: 0, Channels: 4, Colorspace: 0}},
		{"bad channels", Descriptor{Width: 1, Height: 1, Channels: 5, Colorspace: 0}},
		{"bad colorspace", Descriptor{Width: 1, Height: 1, Channels: 4, Colorspace: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, HeaderSize)
			writeHeader(buf, tc.d)
			if _, err := readHeader(buf); !errors.Is(err, ErrInvalidHeader) {
				t.Fatalf("got %v, want ErrInvalidHeader", err)
			}
		})
	}
}

func TestDescriptorValidatePixelBound(t *testing.T) {
	d := Descriptor{Width: 400_000_000, Height: 1, Channels: 4, Colorspace: 0}
	if err := d.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}
