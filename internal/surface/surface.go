// Package surface holds the display-independent parts of presenting a
// decoded image: where it goes in the window and the window icon set.
package surface

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/junsooki/tgaview/internal/config"
	"github.com/junsooki/tgaview/internal/decoder"
)

// IconSizes are the square icon sizes handed to the window system.
var IconSizes = []int{16, 32, 48}

// Placement positions a frame inside a view. The frame is scaled by Scale,
// flipped vertically when FlipY is set, then moved by the offsets.
type Placement struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	FlipY   bool
}

// Place computes the placement of a frameW x frameH frame in a viewW x viewH
// view. zoom <= 0 fits the frame with letterboxing; otherwise the frame is
// drawn at that integer factor and centered.
func Place(viewW, viewH, frameW, frameH, zoom int, flip bool) Placement {
	if frameW <= 0 || frameH <= 0 {
		return Placement{Scale: 1, FlipY: flip}
	}
	vw, vh := float64(viewW), float64(viewH)
	fw, fh := float64(frameW), float64(frameH)

	var scale, offsetX, offsetY float64
	if zoom > 0 {
		scale = float64(zoom)
		offsetX = (vw - fw*scale) / 2
		offsetY = (vh - fh*scale) / 2
	} else {
		scale, offsetX, offsetY = aspectFitTransform(vw, vh, fw, fh)
	}
	return Placement{Scale: scale, OffsetX: offsetX, OffsetY: offsetY, FlipY: flip}
}

// Matrix returns the source-to-view affine transform for a frame of height
// frameH, in the row-major a, b, c, d, e, f layout used by x/image.
func (p Placement) Matrix(frameH int) f64.Aff3 {
	if p.FlipY {
		return f64.Aff3{
			p.Scale, 0, p.OffsetX,
			0, -p.Scale, p.OffsetY + p.Scale*float64(frameH),
		}
	}
	return f64.Aff3{
		p.Scale, 0, p.OffsetX,
		0, p.Scale, p.OffsetY,
	}
}

// ShouldFlip reports whether img must be flipped vertically to appear upright.
// Row 0 of a bottom-left origin image is the bottom of the picture.
func ShouldFlip(mode config.FlipMode, img *decoder.Image) bool {
	switch mode {
	case config.FlipOn:
		return true
	case config.FlipOff:
		return false
	default:
		return !img.TopDown()
	}
}

// Icons renders img into square icons of the given sizes. It returns nil for
// an empty image.
func Icons(img *decoder.Image, flip bool, sizes ...int) []image.Image {
	if img.Width == 0 || img.Height == 0 {
		return nil
	}
	src := img.NRGBA()
	icons := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		p := Place(size, size, img.Width, img.Height, 0, flip)
		draw.ApproxBiLinear.Transform(dst, p.Matrix(img.Height), src, src.Bounds(), draw.Over, nil)
		icons = append(icons, dst)
	}
	return icons
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
