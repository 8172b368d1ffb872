package orchestrator

import (
	"sync"
	"time"

	"devserve/internal/registry"
)

// EventType discriminates orchestrator notifications.
type EventType string

const (
	// EventStatus carries the project's current records plus aggregate
	// reachability.
	EventStatus EventType = "status"
	// EventError reports a launch or health failure.
	EventError EventType = "error"
)

// Event is broadcast to every subscriber on lifecycle changes.
type Event struct {
	Type      EventType
	ProjectID string
	Records   []registry.ServerRecord
	Reachable bool
	Message   string
	Time      time.Time
}

// bus is a minimal broadcast channel registry. Slow subscribers drop
// events instead of blocking lifecycle operations.
type bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	closed bool
}

func newBus() *bus {
	return &bus{subs: make(map[int]chan Event)}
}

// subscribe returns a receive channel and a disposer. The disposer is
// idempotent and closes the channel.
func (b *bus) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	var once sync.Once
	dispose := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, dispose
}

func (b *bus) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *bus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
