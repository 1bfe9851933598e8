package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/junsooki/tgaview/internal/decoder"
	"github.com/junsooki/tgaview/internal/surface"
)

// Viewer shows a single decoded image using Ebitengine. It owns the image
// and the GPU texture holding its pixels from NewViewer until Close.
type Viewer struct {
	img     *decoder.Image
	opts    Options
	texture *ebiten.Image // nil for an empty image
}

var _ Display = (*Viewer)(nil)

// NewViewer uploads img and prepares the window. Call Close when done.
func NewViewer(img *decoder.Image, opts Options) *Viewer {
	v := &Viewer{img: img, opts: opts}
	if img.Width > 0 && img.Height > 0 {
		v.texture = ebiten.NewImageFromImage(img.NRGBA())
	}

	ebiten.SetWindowSize(opts.WindowWidth, opts.WindowHeight)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if icons := surface.Icons(img, opts.Flip, surface.IconSizes...); icons != nil {
		ebiten.SetWindowIcon(icons)
	}
	return v
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (v *Viewer) Run() error {
	return ebiten.RunGame(v)
}

// Close releases the texture. It is safe to call more than once.
func (v *Viewer) Close() {
	if v.texture != nil {
		v.texture.Deallocate()
		v.texture = nil
	}
}

// --- ebiten.Game interface ---

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		logrus.Debugln("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.texture == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := surface.Place(sw, sh, v.img.Width, v.img.Height, v.opts.Scale, v.opts.Flip)
	m := p.Matrix(v.img.Height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(0, 1, m[1])
	op.GeoM.SetElement(0, 2, m[2])
	op.GeoM.SetElement(1, 0, m[3])
	op.GeoM.SetElement(1, 1, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	if v.opts.Scale > 0 {
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(v.texture, op)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
