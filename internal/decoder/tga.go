package decoder

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"
)

// TGADecoder decodes in-memory TGA files.
type TGADecoder struct{}

func NewTGADecoder() *TGADecoder {
	return &TGADecoder{}
}

func (d *TGADecoder) Decode(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens path and decodes it. Errors carry the path.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: IoFailure, Path: path, Err: errors.Wrap(err, "open")}
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		var de *Error
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return img, nil
}

// Decode reads a TGA image from r.
func Decode(r io.Reader) (*Image, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	pixelSize := h.pixelSize()
	pixelCount := h.pixelCount()
	want := int64(pixelCount) * int64(pixelSize)

	// Allocation tracks the bytes actually present, not the header's claim.
	raw, err := io.ReadAll(io.LimitReader(r, want))
	if err != nil {
		return nil, &Error{Kind: IoFailure, Err: errors.Wrap(err, "read pixel data")}
	}
	if int64(len(raw)) < want {
		return nil, newError(TruncatedFile, "pixel data is %d bytes, want %d", len(raw), want)
	}

	return &Image{
		Width:  int(h.Width),
		Height: int(h.Height),
		Origin: h.origin(),
		Pix:    toRGBA(raw, pixelCount, pixelSize),
	}, nil
}

// DecodeConfig reads and validates only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

func readHeader(r io.Reader) (header, error) {
	var b [headerLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return header{}, newError(MalformedHeader, "file shorter than %d-byte header", headerLen)
		}
		return header{}, &Error{Kind: IoFailure, Err: errors.Wrap(err, "read header")}
	}
	h := parseHeader(b[:])
	if err := h.validate(); err != nil {
		return header{}, err
	}
	return h, nil
}

// toRGBA converts packed B,G,R[,A] pixels to R,G,B,A. Alpha is 255 when
// the source has no alpha channel.
func toRGBA(src []byte, pixelCount, pixelSize int) []byte {
	dst := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		s := src[i*pixelSize : i*pixelSize+pixelSize]
		d := dst[i*4 : i*4+4]
		d[0] = s[2]
		d[1] = s[1]
		d[2] = s[0]
		if pixelSize == 4 {
			d[3] = s[3]
		} else {
			d[3] = 0xff
		}
	}
	return dst
}
