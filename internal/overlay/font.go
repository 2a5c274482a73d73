package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII, 16 columns.
const (
	fontFirst = 32
	fontLast  = 126
	fontCols  = 16
)

// FontAtlas is a bitmap font rasterized from basicfont.Face7x13, white on
// transparent so the label colour can be applied as a tint.
type FontAtlas struct {
	img          *image.NRGBA
	CellW, CellH int
}

func NewFontAtlas() *FontAtlas {
	face := basicfont.Face7x13
	cellW := face.Advance
	cellH := face.Height
	rows := (fontLast - fontFirst + fontCols) / fontCols

	img := image.NewNRGBA(image.Rect(0, 0, cellW*fontCols, cellH*rows))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := fontFirst; ch <= fontLast; ch++ {
		i := ch - fontFirst
		x := (i % fontCols) * cellW
		y := (i / fontCols) * cellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return &FontAtlas{img: img, CellW: cellW, CellH: cellH}
}

func (a *FontAtlas) Size() (int, int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

func (a *FontAtlas) Image() *image.NRGBA { return a.img }

// Glyph returns the atlas UV rectangle of ch.
func (a *FontAtlas) Glyph(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < fontFirst || ch > fontLast {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - fontFirst
	column := i % fontCols
	row := i / fontCols
	aw, ah := a.Size()

	u0 = float32(column*a.CellW) / float32(aw)
	v0 = float32(row*a.CellH) / float32(ah)
	u1 = float32((column+1)*a.CellW) / float32(aw)
	v1 = float32((row+1)*a.CellH) / float32(ah)
	return u0, v0, u1, v1, true
}

// AppendQuads appends two triangles per glyph of text, starting at the
// screen position (sx, sy). Vertex layout: pos(2) + uv(2) + color(4).
func (a *FontAtlas) AppendQuads(buf []float32, text string, sx, sy, scale float32, col RGB) []float32 {
	cr, cg, cb, ca := col.Floats()
	w := float32(a.CellW) * scale
	h := float32(a.CellH) * scale
	x := sx
	for _, ch := range text {
		u0, v0, u1, v1, ok := a.Glyph(ch)
		if ok {
			// TL, TR, BL then TR, BR, BL.
			buf = append(buf,
				x, sy, u0, v0, cr, cg, cb, ca,
				x+w, sy, u1, v0, cr, cg, cb, ca,
				x, sy+h, u0, v1, cr, cg, cb, ca,
				x+w, sy, u1, v0, cr, cg, cb, ca,
				x+w, sy+h, u1, v1, cr, cg, cb, ca,
				x, sy+h, u0, v1, cr, cg, cb, ca,
			)
		}
		x += w
	}
	return buf
}

// TextWidth returns the width in screen pixels of a single line.
func (a *FontAtlas) TextWidth(text string, scale float32) int {
	n := 0
	for range text {
		n++
	}
	return int(float32(n*a.CellW) * scale)
}

// LabelOrigin returns where text starts inside dst: left aligned and
// vertically centred.
func (a *FontAtlas) LabelOrigin(dst Rect, scale float32) (float32, float32) {
	h := float64(float32(a.CellH) * scale)
	return float32(dst.X), float32(dst.Y + (dst.H-h)*0.5)
}
