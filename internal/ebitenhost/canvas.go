package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"touchdebug/internal/overlay"
)

// canvas implements overlay.Canvas on the ebiten screen image.
type canvas struct {
	screen     *ebiten.Image
	cam        *overlay.Camera
	face       font.Face
	images     map[overlay.Texture]*ebiten.Image
	labelScale float64
}

func newCanvas(labelScale float64) *canvas {
	return &canvas{
		face:       basicfont.Face7x13,
		images:     make(map[overlay.Texture]*ebiten.Image),
		labelScale: labelScale,
	}
}

func (c *canvas) DrawTexture(tex overlay.Texture, dst overlay.Rect) {
	w, h := tex.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r := toScreen(c.cam, overlay.FitRect(tex, dst))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(w), r.H/float64(h))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(c.image(tex), op)
}

func (c *canvas) DrawLabel(s string, dst overlay.Rect, col overlay.RGB) {
	r := toScreen(c.cam, dst)
	x, y := labelOrigin(r, c.labelScale)
	// Text is drawn relative to the baseline.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.labelScale, c.labelScale)
	op.GeoM.Translate(x, y+float64(basicfont.Face7x13.Ascent)*c.labelScale)
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(c.screen, s, c.face, op)
}

// image returns the GPU copy of tex, creating it on first use.
func (c *canvas) image(tex overlay.Texture) *ebiten.Image {
	if img, ok := c.images[tex]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(tex.Image())
	c.images[tex] = img
	return img
}

func (c *canvas) dispose() {
	for _, img := range c.images {
		img.Deallocate()
	}
	c.images = nil
}

// toScreen maps a rect in world pixels through the camera.
func toScreen(cam *overlay.Camera, r overlay.Rect) overlay.Rect {
	if cam == nil {
		return r
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return overlay.Rect{
		X: (r.X-cam.X)*zoom + float64(cam.Width)*0.5,
		Y: (r.Y-cam.Y)*zoom + float64(cam.Height)*0.5,
		W: r.W * zoom,
		H: r.H * zoom,
	}
}

// labelOrigin places a line of Face7x13 text left aligned and vertically
// centred in dst.
func labelOrigin(dst overlay.Rect, scale float64) (float64, float64) {
	h := float64(basicfont.Face7x13.Height) * scale
	return dst.X, dst.Y + (dst.H-h)*0.5
}
