package overlay

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMarkerSize is the marker edge in pixels when none is configured.
const DefaultMarkerSize = 64

// ImageTexture is a CPU-side RGBA texture. Canvases upload it on first use.
type ImageTexture struct {
	img *image.NRGBA
}

func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: toNRGBA(img)}
}

func (t *ImageTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTexture) Image() *image.NRGBA { return t.img }

// toNRGBA returns img as tightly packed NRGBA starting at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return nrgba
}

// LoadMarker decodes a PNG, JPEG, GIF, BMP or WebP file. When size is
// positive the image is scaled so its longer edge is size pixels.
func LoadMarker(path string, size int) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open marker: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode marker %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode marker %s: empty %s image", path, format)
	}
	if size > 0 {
		img = scaleToEdge(img, size)
	}
	return NewImageTexture(img), nil
}

func scaleToEdge(img image.Image, edge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(1, h*edge/w)
		w = edge
	} else {
		w = max(1, w*edge/h)
		h = edge
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// DefaultMarker draws a ring with a centre dot, anti-aliased over one pixel.
func DefaultMarker(size int, col RGB) *ImageTexture {
	if size < 4 {
		size = 4
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) * 0.5
	outer := c - 1
	inner := outer - math.Max(2, float64(size)/10)
	dot := math.Max(1.5, float64(size)/12)

	cover := func(d, edge float64) float64 {
		return clampF(edge-d+0.5, 0, 1)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			ring := cover(d, outer) * (1 - cover(d, inner))
			a := math.Max(ring, cover(d, dot))
			if a <= 0 {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = col.R
			img.Pix[i+1] = col.G
			img.Pix[i+2] = col.B
			img.Pix[i+3] = uint8(a * float64(col.A))
		}
	}
	return &ImageTexture{img: img}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
