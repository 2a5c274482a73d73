package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"touchdebug/internal/touch"
)

func TestGenerateSound(t *testing.T) {
	tests := []struct {
		kind SoundKind
		ms   int
	}{
		{SoundTouchBegin, 65},
		{SoundTouchEnd, 50},
		{SoundTouchCancel, 80},
	}
	for _, tt := range tests {
		buf := generateSound(tt.kind)
		frames := SampleRate * tt.ms / 1000
		if len(buf) != frames*8 {
			t.Fatalf("kind %d: len = %d, want %d", tt.kind, len(buf), frames*8)
		}
		peak := 0.0
		for i := 0; i < frames; i++ {
			l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:]))
			if l != r {
				t.Fatalf("kind %d frame %d: channels differ", tt.kind, i)
			}
			if math.IsNaN(float64(l)) || math.Abs(float64(l)) > 1 {
				t.Fatalf("kind %d frame %d: sample %v out of range", tt.kind, i, l)
			}
			peak = math.Max(peak, math.Abs(float64(l)))
		}
		if peak == 0 {
			t.Errorf("kind %d is silent", tt.kind)
		}
	}
	if generateSound(SoundKind(99)) != nil {
		t.Error("unknown kind produced samples")
	}
}

func TestAttach(t *testing.T) {
	m := touch.NewManager()
	var played []SoundKind
	detach := attach(m, func(k SoundKind) { played = append(played, k) })

	a := m.BeginTouch(touch.Vec2{})
	b := m.BeginTouch(touch.Vec2{})
	m.Flush()
	m.MoveTouch(a, touch.Vec2{X: 1})
	m.Flush()
	m.EndTouch(a)
	m.CancelTouch(b)
	m.Flush()

	want := []SoundKind{SoundTouchBegin, SoundTouchEnd, SoundTouchCancel}
	if len(played) != len(want) {
		t.Fatalf("played = %v, want %v", played, want)
	}
	for i := range want {
		if played[i] != want[i] {
			t.Errorf("played[%d] = %v, want %v", i, played[i], want[i])
		}
	}

	detach()
	m.BeginTouch(touch.Vec2{})
	m.Flush()
	if len(played) != len(want) {
		t.Error("detached feedback still plays")
	}
}
