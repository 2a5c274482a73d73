// Package overlay draws a marker and an id label at every active touch.
package overlay

import (
	"errors"
	"sort"
	"strconv"

	"touchdebug/internal/touch"
)

// Errors returned by Start when a collaborator is missing.
var (
	ErrNoCamera       = errors.New("a camera is required")
	ErrNoInputManager = errors.New("a touch manager is required")
)

// Label placement relative to the touch, in canvas pixels.
const (
	LabelOffsetY = 9
	LabelWidth   = 60
	LabelHeight  = 25
)

// ViewCamera is the camera the debugger keeps at one world unit per pixel.
type ViewCamera interface {
	Viewport() (width, height int)
	SetOrthoSize(size float64)
}

// InputManager delivers the four touch notifications.
type InputManager interface {
	Subscribe(t touch.EventType, fn touch.Handler) touch.Subscription
	Unsubscribe(s touch.Subscription)
}

// Debugger shows active touches as a marker texture plus the touch id.
//
// The host drives it explicitly: Start once, then Update and Draw every
// frame, and Stop on teardown. All methods must be called from the loop
// goroutine.
type Debugger struct {
	// Marker is drawn centred on every touch. Nothing is drawn while nil.
	Marker    Texture
	FontColor RGB

	// Logf, when set, receives one line per notification batch.
	Logf func(format string, args ...any)

	enabled bool
	points  map[int]touch.Point
	cam     ViewCamera
	mgr     InputManager
	subs    []touch.Subscription
}

// activeLister is implemented by managers that can report the touches
// currently held, such as touch.Manager.
type activeLister interface {
	Active() []touch.Point
}

// NewDebugger returns an enabled debugger. Call Start before use.
func NewDebugger(marker Texture, fontColor RGB) *Debugger {
	return &Debugger{
		Marker:    marker,
		FontColor: fontColor,
		enabled:   true,
		points:    make(map[int]touch.Point),
	}
}

// SetEnabled switches the debugger on or off. Disabling forgets every shown
// touch; enabling again reloads the touches still held from the manager.
func (d *Debugger) SetEnabled(on bool) {
	if on == d.enabled {
		return
	}
	d.enabled = on
	clear(d.points)
	if !on {
		return
	}
	if al, ok := d.mgr.(activeLister); ok {
		for _, p := range al.Active() {
			d.points[p.ID] = p
		}
	}
}

func (d *Debugger) Enabled() bool { return d.enabled }

// Start checks the collaborators and subscribes to the four notifications.
func (d *Debugger) Start(cam ViewCamera, mgr InputManager) error {
	if cam == nil {
		return ErrNoCamera
	}
	if mgr == nil {
		return ErrNoInputManager
	}
	d.Stop()
	d.cam = cam
	d.mgr = mgr
	d.subs = []touch.Subscription{
		mgr.Subscribe(touch.EventPointsAdded, d.OnAdded),
		mgr.Subscribe(touch.EventPointsRemoved, d.OnRemoved),
		mgr.Subscribe(touch.EventPointsUpdated, d.OnUpdated),
		mgr.Subscribe(touch.EventPointsCancelled, d.OnCancelled),
	}
	return nil
}

// Update keeps one world unit per screen pixel.
func (d *Debugger) Update() {
	if d.cam == nil {
		return
	}
	_, h := d.cam.Viewport()
	d.cam.SetOrthoSize(float64(h) * 0.5)
}

// Draw issues one marker and one label per touch.
func (d *Debugger) Draw(c Canvas) {
	if !d.enabled || d.Marker == nil || d.cam == nil {
		return
	}
	_, screenH := d.cam.Viewport()
	tw, th := d.Marker.Size()
	w, h := float64(tw), float64(th)

	for _, id := range d.IDs() {
		p := d.points[id]
		x := p.Position.X
		y := float64(screenH) - p.Position.Y
		c.DrawTexture(d.Marker, Rect{X: x - w/2, Y: y - h/2, W: w, H: h})
		c.DrawLabel(strconv.Itoa(p.ID), Rect{X: x + w, Y: y - LabelOffsetY, W: LabelWidth, H: LabelHeight}, d.FontColor)
	}
}

// Stop unsubscribes from the manager. It is safe to call more than once.
func (d *Debugger) Stop() {
	if d.mgr != nil {
		for _, s := range d.subs {
			d.mgr.Unsubscribe(s)
		}
	}
	d.subs = nil
	d.mgr = nil
}

func (d *Debugger) logBatch(e touch.Event) {
	if d.Logf == nil {
		return
	}
	ids := make([]int, len(e.Points))
	for i, p := range e.Points {
		ids[i] = p.ID
	}
	d.Logf("touches %s: %v (%d shown)", e.Type, ids, len(d.points))
}

func (d *Debugger) OnAdded(e touch.Event) {
	if !d.enabled {
		return
	}
	for _, p := range e.Points {
		d.points[p.ID] = p
	}
	d.logBatch(e)
}

// OnUpdated replaces known touches. Unknown ids are skipped.
func (d *Debugger) OnUpdated(e touch.Event) {
	if !d.enabled {
		return
	}
	for _, p := range e.Points {
		if _, ok := d.points[p.ID]; !ok {
			continue
		}
		d.points[p.ID] = p
	}
	d.logBatch(e)
}

// OnRemoved forgets known touches. Unknown ids are skipped.
func (d *Debugger) OnRemoved(e touch.Event) {
	if !d.enabled {
		return
	}
	for _, p := range e.Points {
		if _, ok := d.points[p.ID]; !ok {
			continue
		}
		delete(d.points, p.ID)
	}
	d.logBatch(e)
}

func (d *Debugger) OnCancelled(e touch.Event) {
	d.OnRemoved(e)
}

// Len returns the number of touches shown.
func (d *Debugger) Len() int { return len(d.points) }

func (d *Debugger) Point(id int) (touch.Point, bool) {
	p, ok := d.points[id]
	return p, ok
}

// IDs returns the ids shown, ascending.
func (d *Debugger) IDs() []int {
	ids := make([]int, 0, len(d.points))
	for id := range d.points {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
