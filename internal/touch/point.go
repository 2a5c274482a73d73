package touch

import "fmt"

// Vec2 is a position in screen pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) String() string { return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y) }

// Point is the state of one active touch at a point in time.
// Positions use a bottom-left origin with y growing upward.
type Point struct {
	ID       int
	Position Vec2
	Previous Vec2
}

// Delta returns the movement since the previous report.
func (p Point) Delta() Vec2 { return p.Position.Sub(p.Previous) }
