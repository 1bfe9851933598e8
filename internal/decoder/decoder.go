// Package decoder reads uncompressed true-color TGA files into RGBA buffers.
package decoder

import "image"

// Decoder decodes bytes into an image.
type Decoder interface {
	Decode(data []byte) (*Image, error)
}

// Origin is the corner of the display that row 0 of the stored pixels maps to.
type Origin uint8

const (
	OriginBottomLeft Origin = iota
	OriginTopLeft
)

func (o Origin) String() string {
	if o == OriginTopLeft {
		return "top-left"
	}
	return "bottom-left"
}

// Image is a decoded TGA image. Pix holds Width*Height pixels in row-major
// order, four bytes each in R, G, B, A order. Rows keep the file's order;
// flipping for display is left to the caller.
type Image struct {
	Width  int
	Height int
	Origin Origin
	Pix    []byte
}

// Stride returns the number of bytes per row.
func (m *Image) Stride() int {
	return m.Width * 4
}

// NRGBA wraps the pixel buffer in an *image.NRGBA without copying. TGA
// alpha is straight, not premultiplied.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Stride(),
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// TopDown reports whether row 0 of Pix is the top row of the picture.
func (m *Image) TopDown() bool {
	return m.Origin == OriginTopLeft
}
