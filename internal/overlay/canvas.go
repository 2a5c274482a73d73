package overlay

import "image"

// Rect is an area in canvas pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

type Texture interface {
	Size() (w, h int)
	Image() *image.NRGBA
}

// Canvas receives the debugger's draw calls for one frame.
type Canvas interface {
	DrawTexture(tex Texture, dst Rect)
	DrawLabel(text string, dst Rect, col RGB)
}

// FitRect returns the largest rect with the texture's aspect ratio centred
// inside dst.
func FitRect(tex Texture, dst Rect) Rect {
	w, h := tex.Size()
	if w <= 0 || h <= 0 || dst.W <= 0 || dst.H <= 0 {
		return dst
	}
	scale := dst.W / float64(w)
	if s := dst.H / float64(h); s < scale {
		scale = s
	}
	fw := float64(w) * scale
	fh := float64(h) * scale
	return Rect{
		X: dst.X + (dst.W-fw)*0.5,
		Y: dst.Y + (dst.H-fh)*0.5,
		W: fw,
		H: fh,
	}
}
