package touch

import mtouch "golang.org/x/mobile/event/touch"

// MobileSource feeds x/mobile touch events into a Manager.
type MobileSource struct {
	tr *Tracker[mtouch.Sequence]
}

func NewMobileSource(m *Manager) *MobileSource {
	return &MobileSource{tr: NewTracker[mtouch.Sequence](m)}
}

// Resize must be called on every size.Event so y can be flipped.
func (s *MobileSource) Resize(heightPx int) { s.tr.Resize(heightPx) }

func (s *MobileSource) Handle(e mtouch.Event) {
	x, y := float64(e.X), float64(e.Y)
	switch e.Type {
	case mtouch.TypeBegin:
		s.tr.Begin(e.Sequence, x, y)
	case mtouch.TypeMove:
		s.tr.Move(e.Sequence, x, y)
	case mtouch.TypeEnd:
		s.tr.End(e.Sequence)
	}
}

// CancelAll cancels every touch still held, e.g. when the app is hidden.
func (s *MobileSource) CancelAll() { s.tr.CancelAll() }
