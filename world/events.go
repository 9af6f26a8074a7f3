package world

import "github.com/milk9111/paperrider/world/component"

// EventQueue is a simple FIFO queue of gameplay events.
type EventQueue struct {
	items []component.Event
}

// Push adds an event.
func (q *EventQueue) Push(evt component.Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []component.Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Has reports whether an event of kind is queued.
func (q *EventQueue) Has(kind component.EventKind) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Kind == kind {
			return true
		}
	}
	return false
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
