// Package eventbus provides the in-process event bus that connects the
// expense module to the spending plan projection.
//
// Delivery is asynchronous and at-least-once from the point of view of
// subscribers: a handler error never propagates back to the publisher, it
// is logged and the event is considered handled. Events that share a key
// are dispatched strictly in publish order; events with different keys may
// be processed concurrently.
package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Type identifies a kind of event on the bus.
type Type string

// Event is the envelope passed to subscribers.
type Event struct {
	ctx       context.Context
	Type      Type
	Key       string
	Timestamp time.Time
	Data      any
}

// Context returns the context the event was published with. Handlers should
// use it for cancellation and request-scoped values.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// Handler processes one event. A returned error is logged by the bus and
// otherwise swallowed; there is no redelivery.
type Handler func(Event) error

type keyQueue struct {
	events  []Event
	running bool
}

// Bus is a concurrency-safe event dispatcher with per-key ordering.
type Bus struct {
	mu       sync.Mutex
	handlers map[Type][]Handler
	queues   map[string]*keyQueue
	wg       sync.WaitGroup
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
		queues:   make(map[string]*keyQueue),
	}
}

// Subscribe registers a handler for the given event type. Subscriptions are
// expected to happen during startup, before events are published.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish enqueues an event. Events with the same key are delivered to
// handlers one at a time, in the order they were published. Publish never
// blocks on handler execution and never returns an error to the caller.
func (b *Bus) Publish(ctx context.Context, t Type, key string, data any) {
	event := Event{
		ctx:       ctx,
		Type:      t,
		Key:       key,
		Timestamp: time.Now().In(time.UTC),
		Data:      data,
	}

	b.mu.Lock()
	q, ok := b.queues[key]
	if !ok {
		q = &keyQueue{}
		b.queues[key] = q
	}
	q.events = append(q.events, event)

	if !q.running {
		q.running = true
		b.wg.Add(1)
		go b.drain(key, q)
	}
	b.mu.Unlock()
}

// drain processes the queue for one key until it is empty, then removes it.
func (b *Bus) drain(key string, q *keyQueue) {
	defer b.wg.Done()

	for {
		b.mu.Lock()
		if len(q.events) == 0 {
			delete(b.queues, key)
			b.mu.Unlock()
			return
		}
		event := q.events[0]
		q.events = q.events[1:]
		handlers := b.handlers[event.Type]
		b.mu.Unlock()

		for _, h := range handlers {
			if err := h(event); err != nil {
				log.Error().
					Err(err).
					Str("event", string(event.Type)).
					Str("key", event.Key).
					Msg("event handler failed, event is dropped")
			}
		}
	}
}

// Wait blocks until all published events have been dispatched. It is used
// for graceful shutdown and by tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}
