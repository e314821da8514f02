package events

import (
	"sync"

	"auction-engine/utils"
)

// Handler consumes one event. Handlers must not assume delivery ordering
// across event types, only per-publish FIFO within the bus.
type Handler func(Event)

// Bus is the engine's publish/subscribe contract. Publish is fire-and-forget:
// handler failures never propagate to the publisher.
type Bus interface {
	Publish(event Event)
	Subscribe(eventType Type, handler Handler)
}

// InMemoryBus dispatches events to subscribers in-process. Publishing while a
// dispatch is in progress enqueues the event instead of recursing, so a chain
// of events produced by handlers (an auto-bid cascade, for example) drains
// iteratively with constant stack depth.
type InMemoryBus struct {
	mu       sync.Mutex
	handlers map[Type][]Handler
	queue    []Event
	draining bool
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for one event type. Subscriptions are
// expected to happen during wiring, before events start flowing.
func (b *InMemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish enqueues the event and, unless another publisher is already
// draining, dispatches queued events until the queue is empty. The publisher
// that finds the bus idle does the draining; re-entrant and concurrent
// publishes only enqueue.
func (b *InMemoryBus) Publish(event Event) {
	b.mu.Lock()
	b.queue = append(b.queue, event)
	if b.draining {
		b.mu.Unlock()
		return
	}
	b.draining = true

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		targets := append([]Handler(nil), b.handlers[next.Type]...)
		b.mu.Unlock()

		for _, h := range targets {
			b.dispatch(next, h)
		}

		b.mu.Lock()
	}
	b.draining = false
	b.mu.Unlock()
}

// dispatch invokes one handler, containing panics so one misbehaving
// subscriber cannot poison the queue.
func (b *InMemoryBus) dispatch(event Event, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("event handler panicked", map[string]any{
				"event_type": string(event.Type),
				"panic":      r,
			})
		}
	}()
	handler(event)
}
