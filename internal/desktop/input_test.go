//go:build !android

package desktop

import (
	"testing"

	"touchdebug/internal/touch"
)

type batchLog struct {
	types []touch.EventType
	sizes []int
}

func watch(m *touch.Manager) *batchLog {
	l := &batchLog{}
	for _, ty := range []touch.EventType{touch.EventPointsAdded, touch.EventPointsUpdated, touch.EventPointsRemoved, touch.EventPointsCancelled} {
		m.Subscribe(ty, func(e touch.Event) {
			l.types = append(l.types, e.Type)
			l.sizes = append(l.sizes, len(e.Points))
		})
	}
	return l
}

func TestMouseTouches_LeftButtonIsAFinger(t *testing.T) {
	m := touch.NewManager()
	l := watch(m)
	mt := NewMouseTouches(m)

	frames := []pointer{
		{X: 10, Y: 10, Focused: true},
		{X: 10, Y: 10, Left: true, Focused: true},
		{X: 30, Y: 40, Left: true, Focused: true},
		{X: 30, Y: 40, Focused: true},
	}
	for _, p := range frames {
		mt.Apply(p, 100)
		m.Flush()
	}

	want := []touch.EventType{touch.EventPointsAdded, touch.EventPointsUpdated, touch.EventPointsRemoved}
	if len(l.types) != len(want) {
		t.Fatalf("batches = %v, want %v", l.types, want)
	}
	for i := range want {
		if l.types[i] != want[i] {
			t.Errorf("batch %d = %v, want %v", i, l.types[i], want[i])
		}
	}
}

func TestMouseTouches_PinsAndFocusLoss(t *testing.T) {
	m := touch.NewManager()
	l := watch(m)
	mt := NewMouseTouches(m)

	mt.Apply(pointer{X: 5, Y: 5, Right: true, Focused: true}, 100)
	mt.Apply(pointer{X: 5, Y: 5, Focused: true}, 100)
	mt.Apply(pointer{X: 50, Y: 50, Right: true, Left: true, Focused: true}, 100)
	m.Flush()
	if m.Len() != 3 {
		t.Fatalf("active = %d, want 2 pins and a finger", m.Len())
	}

	mt.Apply(pointer{Focused: false}, 100)
	m.Flush()
	if m.Len() != 0 {
		t.Fatalf("active = %d after focus loss", m.Len())
	}
	last := len(l.types) - 1
	if l.types[last] != touch.EventPointsCancelled || l.sizes[last] != 3 {
		t.Errorf("last batch = %v of %d, want cancelled of 3", l.types[last], l.sizes[last])
	}
}

func TestMouseTouches_ClearPins(t *testing.T) {
	m := touch.NewManager()
	mt := NewMouseTouches(m)
	for i := 0; i < 3; i++ {
		mt.Apply(pointer{Right: true, Focused: true}, 100)
		mt.Apply(pointer{Focused: true}, 100)
	}
	mt.Apply(pointer{Clear: true, Focused: true}, 100)
	m.Flush()
	if m.Len() != 0 {
		t.Fatalf("active = %d after clearing pins", m.Len())
	}
}

func TestMinimized(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{800, 600, false},
		{0, 0, true},
		{800, 0, true},
		{0, 600, true},
	}
	for _, tt := range tests {
		if got := minimized(tt.w, tt.h); got != tt.want {
			t.Errorf("minimized(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
