package overlay

type Camera struct {
	X, Y float64 // world space, camera centre
	Zoom float64 // screen pixels per world unit

	Width, Height int // viewport in screen pixels
}

func NewCamera(width, height int) *Camera {
	c := &Camera{Zoom: 1}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport and recentres the camera on it.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
	c.X = float64(width) * 0.5
	c.Y = float64(height) * 0.5
}

func (c *Camera) Viewport() (int, int) { return c.Width, c.Height }

// SetOrthoSize sets the half height of the visible area in world units.
func (c *Camera) SetOrthoSize(size float64) {
	if size <= 0 || c.Height <= 0 {
		return
	}
	c.Zoom = float64(c.Height) / (2.0 * size)
}

func (c *Camera) OrthoSize() float64 {
	if c.Zoom == 0 {
		return 0
	}
	return float64(c.Height) / (2.0 * c.Zoom)
}
