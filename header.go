package qoi

import "fmt"

// Magic is the 4-byte signature every QOI stream starts with.
const Magic = "qoif"

// HeaderSize is the fixed length, in bytes, of the QOI header.
const HeaderSize = 14

// maxPixels is the pixel-count bound from the reference format: height must
// be less than maxPixels/width (integer division), which keeps width*height
// below maxPixels.
const maxPixels = 400_000_000

// Descriptor identifies an image's geometry and color semantics: width and
// height in pixels, channel count (3 = RGB, 4 = RGBA), and color-space (0 =
// sRGB, 1 = linear).
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// Validate checks the descriptor invariants from the format: nonzero
// dimensions, a pixel count under the format's bound, a channel count of 3
// or 4, and a color-space byte of 0 or 1.
func (d Descriptor) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("%w: zero dimension %dx%d", ErrInvalidArgument, d.Width, d.Height)
	}
	if uint64(d.Height) >= maxPixels/uint64(d.Width) {
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel bound", ErrInvalidArgument, d.Width, d.Height, maxPixels)
	}
	if d.Channels != 3 && d.Channels != 4 {
		return fmt.Errorf("%w: channels %d not in {3,4}", ErrInvalidArgument, d.Channels)
	}
	if d.Colorspace != 0 && d.Colorspace != 1 {
		return fmt.Errorf("%w: colorspace %d not in {0,1}", ErrInvalidArgument, d.Colorspace)
	}
	return nil
}

// write32 writes value in big-endian order at buf[offset:offset+4] and
// returns the advanced offset. The caller is responsible for bounds.
func write32(buf []byte, offset int, value uint32) int {
	buf[offset] = byte(value >> 24)
	buf[offset+1] = byte(value >> 16)
	buf[offset+2] = byte(value >> 8)
	buf[offset+3] = byte(value)
	return offset + 4
}

// read32 reads a big-endian uint32 from buf[offset:offset+4] and returns the
// value along with the advanced offset. The caller is responsible for
// bounds.
func read32(buf []byte, offset int) (uint32, int) {
	v := uint32(buf[offset])<<24 | uint32(buf[offset+1])<<16 | uint32(buf[offset+2])<<8 | uint32(buf[offset+3])
	return v, offset + 4
}

// writeHeader writes the 14-byte header for d at buf[0:14].
func writeHeader(buf []byte, d Descriptor) {
	buf[0], buf[1], buf[2], buf[3] = Magic[0], Magic[1], Magic[2], Magic[3]
	off := write32(buf, 4, d.Width)
	off = write32(buf, off, d.Height)
	buf[off] = d.Channels
	buf[off+1] = d.Colorspace
}

// readHeader parses and validates the 14-byte header at the front of buf.
func readHeader(buf []byte) (Descriptor, error) {
	if len(buf) < HeaderSize {
		return Descriptor{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(buf))
	}
	if string(buf[0:4]) != Magic {
		return Descriptor{}, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, buf[0:4])
	}
	width, off := read32(buf, 4)
	height, off := read32(buf, off)
	d := Descriptor{
		Width:      width,
		Height:     height,
		Channels:   buf[off],
		Colorspace: buf[off+1],
	}
	if d.Width == 0 || d.Height == 0 {
		return Descriptor{}, fmt.Errorf("%w: zero dimension %dx%d", ErrInvalidHeader, d.Width, d.Height)
	}
	if uint64(d.Height) >= maxPixels/uint64(d.Width) {
		return Descriptor{}, fmt.Errorf("%w: %dx%d exceeds the %d pixel bound", ErrInvalidHeader, d.Width, d.Height, maxPixels)
	}
	if d.Channels != 3 && d.Channels != 4 {
		return Descriptor{}, fmt.Errorf("%w: channels %d not in {3,4}", ErrInvalidHeader, d.Channels)
	}
	if d.Colorspace != 0 && d.Colorspace != 1 {
		return Descriptor{}, fmt.Errorf("%w: colorspace %d not in {0,1}", ErrInvalidHeader, d.Colorspace)
	}
	return d, nil
}
