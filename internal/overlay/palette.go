package overlay

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour with alpha.
type RGB struct {
	R, G, B, A uint8
}

// Floats returns the colour as normalized components for shader uniforms.
func (c RGB) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

func (c RGB) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseRGB accepts "#rgb", "#rrggbb" and "#rrggbbaa".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		v, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("parse colour %q: bad alpha: %w", s, err)
		}
		alpha = uint8(v)
		s = s[:7]
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b, A: alpha}, nil
}

var Palette = struct {
	Background RGB
	Marker     RGB
	Label      RGB
}{
	Background: RGB{R: 24, G: 26, B: 31, A: 255},
	Marker:     RGB{R: 255, G: 200, B: 90, A: 255},
	Label:      RGB{R: 255, G: 255, B: 255, A: 255},
}
