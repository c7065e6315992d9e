package bus

import (
	"sync"

	"github.com/google/uuid"
)

// EventBoardUpdated is the only event name the bus emits. Clients are
// expected to re-fetch the board when they see it.
const EventBoardUpdated = "board_updated"

// Event is a fire-and-forget notification. The message is informational
// text only; subscribers must not use it to patch local state.
type Event struct {
	Name    string
	Message string
}

// Bus fans a board-changed event out to every connected subscriber.
// Delivery is best-effort and at-most-once: subscribers that connect
// after a broadcast never see it, and a subscriber whose channel is
// full is skipped rather than waited on.
type Bus struct {
	mu   sync.Mutex
	subs map[uuid.UUID]chan Event
}

func New() *Bus {
	return &Bus{subs: make(map[uuid.UUID]chan Event)}
}

// Subscribe registers a new subscriber and returns its id together
// with the channel events arrive on.
func (b *Bus) Subscribe() (uuid.UUID, <-chan Event) {
	id := uuid.New()
	ch := make(chan Event, 1)
	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()
	return id, ch
}

// Unsubscribe removes a subscriber. Safe to call more than once.
func (b *Bus) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

// Broadcast sends a board_updated event to every current subscriber.
// The subscriber set is snapshotted under the lock; the sends happen
// outside it so a slow subscriber never blocks registrations.
func (b *Bus) Broadcast(message string) {
	b.mu.Lock()
	targets := make([]chan Event, 0, len(b.subs))
	for _, ch := range b.subs {
		targets = append(targets, ch)
	}
	b.mu.Unlock()

	ev := Event{Name: EventBoardUpdated, Message: message}
	for _, ch := range targets {
		select {
		case ch <- ev:
		default:
		}
	}
}
