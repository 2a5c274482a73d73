package audio

import "touchdebug/internal/touch"

// Subscriber is the part of touch.Manager the click feedback needs.
type Subscriber interface {
	Subscribe(t touch.EventType, fn touch.Handler) touch.Subscription
	Unsubscribe(s touch.Subscription)
}

// Attach plays a click for every begin, release and cancel batch. The
// returned func detaches again.
func Attach(m Subscriber) func() {
	return attach(m, Play)
}

func attach(m Subscriber, play func(SoundKind)) func() {
	subs := []touch.Subscription{
		m.Subscribe(touch.EventPointsAdded, func(touch.Event) { play(SoundTouchBegin) }),
		m.Subscribe(touch.EventPointsRemoved, func(touch.Event) { play(SoundTouchEnd) }),
		m.Subscribe(touch.EventPointsCancelled, func(touch.Event) { play(SoundTouchCancel) }),
	}
	return func() {
		for _, s := range subs {
			m.Unsubscribe(s)
		}
	}
}
