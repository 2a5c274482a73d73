package touch

// EventType identifies one of the four touch notifications.
type EventType int

const (
	EventPointsAdded EventType = iota
	EventPointsUpdated
	EventPointsRemoved
	EventPointsCancelled
)

func (t EventType) String() string {
	switch t {
	case EventPointsAdded:
		return "added"
	case EventPointsUpdated:
		return "updated"
	case EventPointsRemoved:
		return "removed"
	case EventPointsCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Event is one notification batch.
type Event struct {
	Type   EventType
	Points []Point
}

// Handler receives a notification batch.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed again.
type Subscription struct {
	Type EventType
	id   uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// EventBus dispatches events to the handlers subscribed to their type.
type EventBus struct {
	handlers map[EventType][]subscriber
	nextID   uint64
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers fn for events of type t.
func (eb *EventBus) Subscribe(t EventType, fn Handler) Subscription {
	eb.nextID++
	eb.handlers[t] = append(eb.handlers[t], subscriber{id: eb.nextID, fn: fn})
	return Subscription{Type: t, id: eb.nextID}
}

// Unsubscribe removes the handler behind s. Unknown subscriptions are ignored.
func (eb *EventBus) Unsubscribe(s Subscription) {
	subs := eb.handlers[s.Type]
	for i := range subs {
		if subs[i].id == s.id {
			// Copy so an Emit in progress keeps iterating its own slice.
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			eb.handlers[s.Type] = next
			return
		}
	}
}

// Emit calls every handler subscribed to e.Type, in subscription order.
func (eb *EventBus) Emit(e Event) {
	for _, s := range eb.handlers[e.Type] {
		s.fn(e)
	}
}

// Subscribers returns the number of handlers registered for t.
func (eb *EventBus) Subscribers(t EventType) int {
	return len(eb.handlers[t])
}
