package decoder

import "encoding/binary"

const (
	headerLen = 18

	// imageTypeTrueColor is the uncompressed true-color image type code.
	imageTypeTrueColor = 2

	descriptorTopOrigin = 1 << 5
)

// header mirrors the 18-byte TGA file header.
type header struct {
	IDLength       uint8
	ColorMapType   uint8
	ImageType      uint8
	ColorMapOrigin uint16
	ColorMapLength uint16
	ColorMapDepth  uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelDepth     uint8
	Descriptor     uint8
}

func parseHeader(b []byte) header {
	le := binary.LittleEndian
	return header{
		IDLength:       b[0],
		ColorMapType:   b[1],
		ImageType:      b[2],
		ColorMapOrigin: le.Uint16(b[3:]),
		ColorMapLength: le.Uint16(b[5:]),
		ColorMapDepth:  b[7],
		XOrigin:        le.Uint16(b[8:]),
		YOrigin:        le.Uint16(b[10:]),
		Width:          le.Uint16(b[12:]),
		Height:         le.Uint16(b[14:]),
		PixelDepth:     b[16],
		Descriptor:     b[17],
	}
}

// validate checks the header against the subset this package decodes.
// The order matters: an unsupported image type wins over a bad depth.
func (h header) validate() error {
	if h.ImageType != imageTypeTrueColor {
		return newError(UnsupportedEncoding, "image type %d", h.ImageType)
	}
	if h.PixelDepth != 24 && h.PixelDepth != 32 {
		return newError(UnsupportedDepth, "%d bits per pixel", h.PixelDepth)
	}
	// Pixel data must follow the header directly.
	if h.IDLength != 0 {
		return newError(MalformedHeader, "image ID field of %d bytes", h.IDLength)
	}
	if h.ColorMapType != 0 || h.ColorMapLength != 0 {
		return newError(MalformedHeader, "color map present (type %d, length %d)", h.ColorMapType, h.ColorMapLength)
	}
	return nil
}

func (h header) pixelSize() int {
	return int(h.PixelDepth) / 8
}

func (h header) pixelCount() int {
	return int(h.Width) * int(h.Height)
}

func (h header) origin() Origin {
	if h.Descriptor&descriptorTopOrigin != 0 {
		return OriginTopLeft
	}
	return OriginBottomLeft
}
