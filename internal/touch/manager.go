package touch

import "sort"

type phase int

const (
	phaseActive phase = iota
	phaseEnded
	phaseCancelled
)

type tracked struct {
	point Point
	phase phase
	isNew bool // began this frame
	moved bool // moved this frame
}

// Manager allocates touch identifiers and turns the begin/move/end/cancel
// reports of input sources into batched notifications. Reports are queued
// until Flush, which the host calls once per frame.
//
// Manager is not safe for concurrent use; sources and Flush must run on the
// loop goroutine.
type Manager struct {
	bus    *EventBus
	points map[int]*tracked
	frame  []int // ids reported since the last Flush, first report first
	nextID int
}

func NewManager() *Manager {
	return &Manager{
		bus:    NewEventBus(),
		points: make(map[int]*tracked),
	}
}

func (m *Manager) Subscribe(t EventType, fn Handler) Subscription {
	return m.bus.Subscribe(t, fn)
}

func (m *Manager) Unsubscribe(s Subscription) {
	m.bus.Unsubscribe(s)
}

// Subscribers returns the number of handlers registered for t.
func (m *Manager) Subscribers(t EventType) int {
	return m.bus.Subscribers(t)
}

func (m *Manager) touch(id int, t *tracked) {
	if !t.isNew && !t.moved && t.phase == phaseActive {
		m.frame = append(m.frame, id)
	}
}

// BeginTouch registers a new touch at pos and returns its identifier.
func (m *Manager) BeginTouch(pos Vec2) int {
	id := m.nextID
	m.nextID++
	m.points[id] = &tracked{
		point: Point{ID: id, Position: pos, Previous: pos},
		isNew: true,
	}
	m.frame = append(m.frame, id)
	return id
}

// MoveTouch reports a new position for an active touch.
func (m *Manager) MoveTouch(id int, pos Vec2) bool {
	t, ok := m.points[id]
	if !ok || t.phase != phaseActive {
		return false
	}
	if t.point.Position == pos {
		return true
	}
	m.touch(id, t)
	if !t.isNew {
		t.moved = true
	}
	t.point.Previous = t.point.Position
	t.point.Position = pos
	return true
}

// EndTouch reports that an active touch was released.
func (m *Manager) EndTouch(id int) bool {
	return m.finish(id, phaseEnded)
}

// CancelTouch reports that an active touch was taken away by the system.
func (m *Manager) CancelTouch(id int) bool {
	return m.finish(id, phaseCancelled)
}

func (m *Manager) finish(id int, ph phase) bool {
	t, ok := m.points[id]
	if !ok || t.phase != phaseActive {
		return false
	}
	m.touch(id, t)
	t.phase = ph
	return true
}

// CancelAll cancels every active touch.
func (m *Manager) CancelAll() {
	for _, id := range m.activeIDs() {
		m.CancelTouch(id)
	}
}

// Flush dispatches the reports queued since the last call as at most four
// batches, in the order added, updated, removed, cancelled.
func (m *Manager) Flush() {
	if len(m.frame) == 0 {
		return
	}
	var added, updated, removed, cancelled []Point
	for _, id := range m.frame {
		t := m.points[id]
		switch {
		case t.isNew:
			added = append(added, t.point)
		case t.moved:
			updated = append(updated, t.point)
		}
		switch t.phase {
		case phaseEnded:
			removed = append(removed, t.point)
			delete(m.points, id)
		case phaseCancelled:
			cancelled = append(cancelled, t.point)
			delete(m.points, id)
		default:
			t.isNew = false
			t.moved = false
		}
	}
	m.frame = m.frame[:0]

	m.emit(EventPointsAdded, added)
	m.emit(EventPointsUpdated, updated)
	m.emit(EventPointsRemoved, removed)
	m.emit(EventPointsCancelled, cancelled)
}

func (m *Manager) emit(t EventType, pts []Point) {
	if len(pts) == 0 {
		return
	}
	m.bus.Emit(Event{Type: t, Points: pts})
}

func (m *Manager) activeIDs() []int {
	ids := make([]int, 0, len(m.points))
	for id, t := range m.points {
		if t.phase == phaseActive {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Active returns the touches that have not ended, ordered by identifier.
func (m *Manager) Active() []Point {
	ids := m.activeIDs()
	out := make([]Point, len(ids))
	for i, id := range ids {
		out[i] = m.points[id].point
	}
	return out
}

// Len returns the number of active touches.
func (m *Manager) Len() int { return len(m.activeIDs()) }
