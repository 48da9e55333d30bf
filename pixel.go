package qoi

// Pixel is one RGBA sample. Arithmetic between two Pixels wraps modulo 256
// in both directions, matching the byte (uint8) semantics the wire format
// relies on.
type Pixel struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// basePixel is the implicit previous-pixel value at the start of every
// encode and decode.
var basePixel = Pixel{R: 0, G: 0, B: 0, A: 255}

// Equals reports whether p and other have identical channels.
func (p Pixel) Equals(other Pixel) bool {
	return p == other
}

// hash maps a pixel to its 6-bit index-table slot.
//
//	hash = (r*3 + g*5 + b*7 + a*11) mod 64
//
// computed in at least 32-bit arithmetic before the reduction.
func (p Pixel) hash() uint8 {
	h := uint32(p.R)*3 + uint32(p.G)*5 + uint32(p.B)*7 + uint32(p.A)*11
	return uint8(h % 64)
}

// indexTable is the fixed 64-slot recently-seen-colors cache, keyed by
// Pixel.hash. The zero value (all-zero pixels, including alpha = 0) is the
// correct initial state.
type indexTable [64]Pixel
