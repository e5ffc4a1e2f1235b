package session

import (
	"sync"

	"github.com/reviewdesk/admitctl/internal/domain"
)

// Event is the change notification carried to subscribers whenever the
// selection is replaced or cleared. OK is false for "no session".
type Event struct {
	SessionID int
	OK        bool
	Meta      *domain.SessionMeta
}

// Bus is a plain observer list: subscribers are invoked synchronously, in
// registration order, on every publish. Registration or cancellation during a
// dispatch does not affect the in-flight dispatch.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscription is the handle returned by Subscribe. Cancel is idempotent.
type Subscription struct {
	bus  *Bus
	id   int
	once sync.Once
}

func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}

	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

func (b *Bus) Subscribe(fn func(Event)) *Subscription {
	if fn == nil {
		return &Subscription{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, fn: fn})

	return &Subscription{bus: b, id: b.nextID}
}

func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(event)
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
