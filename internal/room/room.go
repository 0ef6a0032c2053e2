package room

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Iron-Ham/barbershop/internal/event"
)

var (
	// ErrInvalidConfiguration is returned when a room is built with a
	// negative capacity.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrCancelled is returned by TakeNext when the caller's context ends
	// while it is waiting for a client.
	ErrCancelled = errors.New("wait for client cancelled")
)

// Client is a customer as seen by the waiting room.
type Client struct {
	ID      int
	Arrived time.Time
}

// Option configures a Room.
type Option func(*Room)

// WithPublisher makes the room report seating, turn-aways and barber
// wait/serve transitions. Events are published while the room's lock is
// held; handlers must not call back into the room.
func WithPublisher(p event.Publisher) Option {
	return func(r *Room) {
		if p != nil {
			r.events = p
		}
	}
}

// Room is the shared waiting room. The zero value is not usable; call New.
type Room struct {
	mu       sync.Mutex
	cond     *sync.Cond
	capacity int
	queue    []Client
	busy     map[int]int // barber ID -> client ID in the chair
	events   event.Publisher
}

// New creates a room with the given number of waiting chairs.
func New(capacity int, opts ...Option) (*Room, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be non-negative, got %d", ErrInvalidConfiguration, capacity)
	}
	r := &Room{
		capacity: capacity,
		queue:    make([]Client, 0, capacity),
		busy:     make(map[int]int),
		events:   event.Discard,
	}
	r.cond = sync.NewCond(&r.mu)
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// TryEnter seats c at the back of the queue if a chair is free and wakes the
// waiting barbers. It returns false, leaving the queue untouched, when every
// chair is taken. It never blocks and a rejected client is not retried.
func (r *Room) TryEnter(c Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) >= r.capacity {
		r.events.Publish(event.NewClientTurnedAwayEvent(c.ID, r.capacity))
		return false
	}

	r.queue = append(r.queue, c)
	r.events.Publish(event.NewClientSeatedEvent(c.ID, len(r.queue), r.capacity))
	r.cond.Broadcast()
	return true
}

// TakeNext removes and returns the client that has waited longest, blocking
// while the room is empty. It returns ErrCancelled (wrapping ctx.Err()) if
// ctx is done before a client can be taken; a client is never removed from
// the queue in that case.
func (r *Room) TakeNext(ctx context.Context, barberID int) (Client, error) {
	// Wake this waiter on cancellation. Taking the lock before broadcasting
	// means the wake cannot slip in between the ctx check and cond.Wait.
	stop := context.AfterFunc(ctx, func() {
		r.mu.Lock()
		r.cond.Broadcast()
		r.mu.Unlock()
	})
	defer stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	announced := false
	for len(r.queue) == 0 {
		if err := ctx.Err(); err != nil {
			return Client{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if !announced {
			r.events.Publish(event.NewBarberWaitingEvent(barberID))
			announced = true
		}
		r.cond.Wait()
	}

	c := r.queue[0]
	r.queue[0] = Client{}
	r.queue = r.queue[1:]

	waited := time.Duration(0)
	if !c.Arrived.IsZero() {
		waited = time.Since(c.Arrived)
	}
	r.events.Publish(event.NewBarberServingEvent(barberID, c.ID, waited))
	return c, nil
}

// MarkBusy records that barberID has clientID in the chair.
func (r *Room) MarkBusy(barberID, clientID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy[barberID] = clientID
}

// MarkIdle clears barberID's busy flag.
func (r *Room) MarkIdle(barberID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.busy, barberID)
}

// Capacity returns the number of waiting chairs.
func (r *Room) Capacity() int {
	return r.capacity
}

// Len returns the number of clients currently waiting.
func (r *Room) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// Snapshot is a point-in-time copy of the room's state.
type Snapshot struct {
	Capacity int
	Waiting  []int       // Client IDs, head of the queue first
	Busy     map[int]int // Barber ID -> client ID being served
}

// Snapshot returns a consistent copy of the queue and busy flags.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	waiting := make([]int, len(r.queue))
	for i, c := range r.queue {
		waiting[i] = c.ID
	}
	busy := make(map[int]int, len(r.busy))
	for b, c := range r.busy {
		busy[b] = c
	}
	return Snapshot{Capacity: r.capacity, Waiting: waiting, Busy: busy}
}

// BusyBarbers returns the IDs of barbers with a client in the chair, sorted.
func (s Snapshot) BusyBarbers() []int {
	ids := make([]int, 0, len(s.Busy))
	for id := range s.Busy {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
