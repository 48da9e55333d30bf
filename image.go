package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// Grid is a 2D pixel grid over a flat, row-major pixel buffer. It is the
// external collaborator that bridges the codec to file I/O and to the
// standard library's image.Image: the codec core only ever sees flat byte
// buffers plus a Descriptor.
//
// Out-of-range coordinates passed to At/Set are clamped into the valid
// rectangle rather than panicking.
type Grid struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace uint8
}

// NewGrid allocates a zeroed Grid matching d.
func NewGrid(d Descriptor) *Grid {
	return &Grid{
		Pix:        make([]byte, int(d.Width)*int(d.Height)*int(d.Channels)),
		Width:      int(d.Width),
		Height:     int(d.Height),
		Channels:   d.Channels,
		Colorspace: d.Colorspace,
	}
}

func (g *Grid) descriptor() Descriptor {
	return Descriptor{
		Width:      uint32(g.Width),
		Height:     uint32(g.Height),
		Channels:   g.Channels,
		Colorspace: g.Colorspace,
	}
}

func (g *Grid) offset(x, y int) int {
	x = clamp(x, 0, g.Width-1)
	y = clamp(y, 0, g.Height-1)
	return (y*g.Width + x) * int(g.Channels)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model {
	if g.Channels == 3 {
		return color.RGBAModel
	}
	return color.NRGBAModel
}

// At implements image.Image, clamping out-of-range coordinates.
func (g *Grid) At(x, y int) color.Color {
	off := g.offset(x, y)
	if g.Channels == 3 {
		return color.RGBA{R: g.Pix[off], G: g.Pix[off+1], B: g.Pix[off+2], A: 255}
	}
	return color.NRGBA{R: g.Pix[off], G: g.Pix[off+1], B: g.Pix[off+2], A: g.Pix[off+3]}
}

// Set writes c into the grid at (x, y), clamping out-of-range coordinates.
func (g *Grid) Set(x, y int, c color.Color) {
	off := g.offset(x, y)
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	g.Pix[off], g.Pix[off+1], g.Pix[off+2] = nc.R, nc.G, nc.B
	if g.Channels == 4 {
		g.Pix[off+3] = nc.A
	}
}

// FromImage builds a Grid from an arbitrary image.Image, such as one decoded
// through a blank-imported format (PNG, BMP, TIFF, ...). The grid is always
// 4-channel sRGB; callers that need a 3-channel grid should construct one
// directly and Set pixels into it.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(Descriptor{Width: uint32(b.Dx()), Height: uint32(b.Dy()), Channels: 4, Colorspace: 0})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return g
}

// Load decodes a full QOI stream into a fresh Grid, replacing any prior
// contents rather than appending to them.
func Load(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d, pix, err := Decode(data, 0)
	if err != nil {
		return nil, err
	}
	return &Grid{Pix: pix, Width: int(d.Width), Height: int(d.Height), Channels: d.Channels, Colorspace: d.Colorspace}, nil
}

// LoadFile opens path, decodes it as QOI, and closes the file on every exit
// path.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Save encodes g and writes it to w, returning the number of bytes written.
func Save(w io.Writer, g *Grid) (int, error) {
	buf, err := Encode(g.Pix, g.descriptor())
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// SaveFile encodes g as QOI and writes it to path in one pass, opening in
// binary mode and closing deterministically on all exit paths. It returns
// the number of bytes written on success, or 0 on any failure.
func SaveFile(path string, g *Grid) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	n, err := Save(f, g)
	if err != nil {
		return 0, fmt.Errorf("qoi: save %s: %w", path, err)
	}
	return n, nil
}

// decodeImage adapts Load to the signature image.RegisterFormat expects.
func decodeImage(r io.Reader) (image.Image, error) {
	return Load(r)
}

// decodeImageConfig reads just enough of the stream to report the image's
// dimensions and color model without decoding every pixel.
func decodeImageConfig(r io.Reader) (image.Config, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return image.Config{}, err
	}
	d, err := readHeader(header)
	if err != nil {
		return image.Config{}, err
	}
	model := color.Model(color.NRGBAModel)
	if d.Channels == 3 {
		model = color.RGBAModel
	}
	return image.Config{ColorModel: model, Width: int(d.Width), Height: int(d.Height)}, nil
}

func init() {
	image.RegisterFormat("qoi", Magic, decodeImage, decodeImageConfig)
}

var _ image.Image = (*Grid)(nil)
