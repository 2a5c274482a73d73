//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"touchdebug/internal/touch"
)

// Tracker keys. The left button is one finger; pinned touches get keys
// from pinnedBase upward.
const (
	keyLeft    = 0
	pinnedBase = 1
	maxPinned  = 9
)

// pointer is one frame of mouse state in framebuffer pixels.
type pointer struct {
	X, Y    float64
	Left    bool
	Right   bool
	Clear   bool
	Focused bool
}

// MouseTouches emulates touches with the mouse: the left button is a finger
// that follows the cursor, a right click pins a stationary touch, C releases
// every pin, and losing focus cancels everything.
type MouseTouches struct {
	tr        *touch.Tracker[int]
	prevLeft  bool
	prevRight bool
	prevClear bool
	pinned    int
}

func NewMouseTouches(m *touch.Manager) *MouseTouches {
	return &MouseTouches{tr: touch.NewTracker[int](m)}
}

// Apply turns one frame of pointer state into touch reports.
func (mt *MouseTouches) Apply(p pointer, fbH int) {
	mt.tr.Resize(fbH)
	if !p.Focused {
		mt.tr.CancelAll()
		mt.pinned = 0
		mt.prevLeft, mt.prevRight, mt.prevClear = false, false, false
		return
	}

	switch {
	case p.Left && !mt.prevLeft:
		mt.tr.Begin(keyLeft, p.X, p.Y)
	case p.Left:
		mt.tr.Move(keyLeft, p.X, p.Y)
	case mt.prevLeft:
		mt.tr.End(keyLeft)
	}

	if p.Right && !mt.prevRight && mt.pinned < maxPinned {
		mt.tr.Begin(pinnedBase+mt.pinned, p.X, p.Y)
		mt.pinned++
	}
	if p.Clear && !mt.prevClear {
		for i := 0; i < mt.pinned; i++ {
			mt.tr.End(pinnedBase + i)
		}
		mt.pinned = 0
	}

	mt.prevLeft, mt.prevRight, mt.prevClear = p.Left, p.Right, p.Clear
}

// pollPointer reads the mouse and converts the cursor to framebuffer pixels.
func pollPointer(window *glfw.Window, fbW, fbH int) pointer {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW > 0 && winH > 0 {
		cx *= float64(fbW) / float64(winW)
		cy *= float64(fbH) / float64(winH)
	}
	return pointer{
		X:       cx,
		Y:       cy,
		Left:    window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:   window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Clear:   window.GetKey(glfw.KeyC) == glfw.Press,
		Focused: window.GetAttrib(glfw.Focused) == glfw.True,
	}
}

type keyEdge struct {
	prev map[glfw.Key]bool
}

func (k *keyEdge) JustPressed(window *glfw.Window, key glfw.Key) bool {
	if k.prev == nil {
		k.prev = make(map[glfw.Key]bool)
	}
	down := window.GetKey(key) == glfw.Press
	jp := down && !k.prev[key]
	k.prev[key] = down
	return jp
}
