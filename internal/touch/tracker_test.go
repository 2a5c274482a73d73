package touch

import (
	"testing"

	mtouch "golang.org/x/mobile/event/touch"
)

func TestTracker_FlipsY(t *testing.T) {
	m := NewManager()
	tr := NewTracker[int](m)
	tr.Resize(600)

	id := tr.Begin(7, 100, 150)
	pts := m.Active()
	if len(pts) != 1 || pts[0].ID != id {
		t.Fatalf("Active = %+v", pts)
	}
	if want := (Vec2{X: 100, Y: 450}); pts[0].Position != want {
		t.Errorf("position = %v, want %v", pts[0].Position, want)
	}
}

func TestTracker_KeyLifecycle(t *testing.T) {
	m := NewManager()
	tr := NewTracker[string](m)
	tr.Resize(100)

	a := tr.Begin("left", 10, 10)
	if again := tr.Begin("left", 20, 20); again != a {
		t.Fatalf("repeated Begin allocated id %d, want %d", again, a)
	}
	if !tr.Tracking("left") {
		t.Fatal("key not tracked after Begin")
	}
	if tr.Move("right", 0, 0) {
		t.Error("Move of untracked key succeeded")
	}
	if !tr.End("left") {
		t.Error("End of tracked key failed")
	}
	if tr.End("left") {
		t.Error("second End succeeded")
	}
	b := tr.Begin("left", 0, 0)
	if b == a {
		t.Errorf("new press reused id %d", a)
	}
}

func TestTracker_CancelAll(t *testing.T) {
	m := NewManager()
	r := subscribeAll(m)
	tr := NewTracker[int](m)
	tr.Begin(1, 0, 0)
	tr.Begin(2, 0, 0)
	m.Flush()
	r.events = nil

	tr.CancelAll()
	m.Flush()
	if len(tr.Keys()) != 0 {
		t.Errorf("Keys = %v after CancelAll", tr.Keys())
	}
	if len(r.events) != 1 || r.events[0].Type != EventPointsCancelled || len(r.events[0].Points) != 2 {
		t.Fatalf("events = %+v, want one cancelled batch of two", r.events)
	}
}

func TestMobileSource(t *testing.T) {
	m := NewManager()
	r := subscribeAll(m)
	src := NewMobileSource(m)
	src.Resize(800)

	src.Handle(mtouch.Event{X: 10, Y: 20, Sequence: 3, Type: mtouch.TypeBegin})
	src.Handle(mtouch.Event{X: 50, Y: 60, Sequence: 9, Type: mtouch.TypeBegin})
	m.Flush()
	src.Handle(mtouch.Event{X: 15, Y: 25, Sequence: 3, Type: mtouch.TypeMove})
	src.Handle(mtouch.Event{X: 50, Y: 60, Sequence: 9, Type: mtouch.TypeEnd})
	src.Handle(mtouch.Event{X: 1, Y: 1, Sequence: 44, Type: mtouch.TypeMove})
	m.Flush()

	tests := []struct {
		typ EventType
		ids []int
	}{
		{EventPointsAdded, []int{0, 1}},
		{EventPointsUpdated, []int{0}},
		{EventPointsRemoved, []int{1}},
	}
	if len(r.events) != len(tests) {
		t.Fatalf("got %d events, want %d", len(r.events), len(tests))
	}
	for i, tt := range tests {
		if r.events[i].Type != tt.typ || !equalInts(ids(r.events[i].Points), tt.ids) {
			t.Errorf("event %d = %v %v, want %v %v", i, r.events[i].Type, ids(r.events[i].Points), tt.typ, tt.ids)
		}
	}
	if got := r.events[1].Points[0].Position; got != (Vec2{X: 15, Y: 775}) {
		t.Errorf("updated position = %v, want (15, 775)", got)
	}
}
