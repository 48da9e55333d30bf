// qoiconv converts between the QOI image format and whatever other image
// formats this process has registered: PNG, GIF and JPEG from the standard
// library, plus BMP and TIFF from golang.org/x/image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/qoicodec/qoi"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var (
	decodeFlag = flag.Bool("decode", false, "decode a QOI input into PNG")
	encodeFlag = flag.Bool("encode", false, "encode a PNG/GIF/JPEG/BMP/TIFF input into QOI")
)

const usageStr = `qoiconv converts between QOI and other registered image formats.

Usage: choose one of

    qoiconv -decode [path]
    qoiconv -encode [path]

The path is optional; if omitted, stdin is read. The result is always
written to stdout.
`

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()
	if *decodeFlag == *encodeFlag {
		return fmt.Errorf("qoiconv: specify exactly one of -decode or -encode")
	}

	r, err := openInput(flag.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	if *decodeFlag {
		return decodeToPNG(r, os.Stdout)
	}
	return encodeToQOI(r, os.Stdout)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func decodeToPNG(r io.Reader, w io.Writer) error {
	g, err := qoi.Load(r)
	if err != nil {
		return err
	}
	return png.Encode(w, g)
}

func encodeToQOI(r io.Reader, w io.Writer) error {
	src, format, err := image.Decode(r)
	if err != nil {
		return err
	}
	if format == "qoi" {
		// Already QOI; re-encoding would be a lossless no-op round trip, so
		// just copy pixels through the grid adapter once.
		log.Printf("qoiconv: input already QOI, re-encoding")
	}
	g := qoi.FromImage(src)
	_, err = qoi.Save(w, g)
	return err
}
