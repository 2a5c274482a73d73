package touch

import "sort"

// Tracker maps host-specific touch keys (x/mobile sequences, ebiten touch
// ids, mouse buttons) onto manager identifiers. Host coordinates have a
// top-left origin; the tracker flips them against the viewport height.
type Tracker[K comparable] struct {
	m      *Manager
	ids    map[K]int
	height float64
}

func NewTracker[K comparable](m *Manager) *Tracker[K] {
	return &Tracker[K]{
		m:   m,
		ids: make(map[K]int),
	}
}

// Resize sets the viewport height used for the y flip.
func (t *Tracker[K]) Resize(height int) { t.height = float64(height) }

func (t *Tracker[K]) toScreen(x, y float64) Vec2 {
	return Vec2{X: x, Y: t.height - y}
}

// Begin starts tracking key. A key that is already tracked is moved instead.
func (t *Tracker[K]) Begin(key K, x, y float64) int {
	if id, ok := t.ids[key]; ok {
		t.m.MoveTouch(id, t.toScreen(x, y))
		return id
	}
	id := t.m.BeginTouch(t.toScreen(x, y))
	t.ids[key] = id
	return id
}

func (t *Tracker[K]) Move(key K, x, y float64) bool {
	id, ok := t.ids[key]
	if !ok {
		return false
	}
	return t.m.MoveTouch(id, t.toScreen(x, y))
}

func (t *Tracker[K]) End(key K) bool {
	id, ok := t.ids[key]
	if !ok {
		return false
	}
	delete(t.ids, key)
	return t.m.EndTouch(id)
}

func (t *Tracker[K]) Cancel(key K) bool {
	id, ok := t.ids[key]
	if !ok {
		return false
	}
	delete(t.ids, key)
	return t.m.CancelTouch(id)
}

// CancelAll cancels every tracked key.
func (t *Tracker[K]) CancelAll() {
	ids := make([]int, 0, len(t.ids))
	for k, id := range t.ids {
		ids = append(ids, id)
		delete(t.ids, k)
	}
	sort.Ints(ids)
	for _, id := range ids {
		t.m.CancelTouch(id)
	}
}

// Tracking reports whether key is currently held.
func (t *Tracker[K]) Tracking(key K) bool {
	_, ok := t.ids[key]
	return ok
}

// Keys returns the tracked keys in no particular order.
func (t *Tracker[K]) Keys() []K {
	keys := make([]K, 0, len(t.ids))
	for k := range t.ids {
		keys = append(keys, k)
	}
	return keys
}
