package actor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/logging"
	"github.com/Iron-Ham/barbershop/internal/room"
)

// BarberRoom is the part of the waiting room a barber uses.
type BarberRoom interface {
	TakeNext(ctx context.Context, barberID int) (room.Client, error)
	MarkBusy(barberID, clientID int)
	MarkIdle(barberID int)
}

// State is a barber's position in its lifecycle.
type State int32

const (
	StateIdle State = iota // Asleep in TakeNext, or about to be
	StateServing
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateServing:
		return "serving"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// BarberOption configures a Barber.
type BarberOption func(*Barber)

// WithEvents publishes finished and stopped events to p.
func WithEvents(p event.Publisher) BarberOption {
	return func(b *Barber) {
		if p != nil {
			b.events = p
		}
	}
}

// WithLogger sets the barber's logger.
func WithLogger(l *logging.Logger) BarberOption {
	return func(b *Barber) {
		if l != nil {
			b.logger = l
		}
	}
}

// Barber repeatedly takes the next client and serves it for a fixed time.
type Barber struct {
	id      int
	room    BarberRoom
	service time.Duration
	events  event.Publisher
	logger  *logging.Logger

	state  atomic.Int32
	served atomic.Int64
}

// NewBarber creates a barber bound to r. Every haircut lasts service.
func NewBarber(id int, r BarberRoom, service time.Duration, opts ...BarberOption) (*Barber, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: barber id must be non-negative, got %d", room.ErrInvalidConfiguration, id)
	}
	if service < 0 {
		return nil, fmt.Errorf("%w: service duration must be non-negative, got %s", room.ErrInvalidConfiguration, service)
	}
	b := &Barber{
		id:      id,
		room:    r,
		service: service,
		events:  event.Discard,
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.WithBarber(id)
	return b, nil
}

// ID returns the barber's ID.
func (b *Barber) ID() int { return b.id }

// State returns the barber's current state.
func (b *Barber) State() State { return State(b.state.Load()) }

// Served returns how many haircuts the barber has completed.
func (b *Barber) Served() int { return int(b.served.Load()) }

// Run is the barber's loop. It returns nil once ctx is cancelled and the
// barber has stopped; after that it makes no further calls to the room.
// Any other error from the room ends the loop and is returned.
func (b *Barber) Run(ctx context.Context) error {
	defer func() {
		b.state.Store(int32(StateStopped))
		b.events.Publish(event.NewBarberStoppedEvent(b.id, b.Served()))
		b.logger.Info("barber stopped", "served", b.Served())
	}()

	b.logger.Debug("barber started")
	for {
		if ctx.Err() != nil {
			return nil
		}

		b.state.Store(int32(StateIdle))
		c, err := b.room.TakeNext(ctx, b.id)
		if errors.Is(err, room.ErrCancelled) {
			return nil
		}
		if err != nil {
			b.logger.Error("take next client failed", "error", err.Error())
			return fmt.Errorf("barber %d: %w", b.id, err)
		}

		b.serve(c)
	}
}

// serve cuts c's hair. No room lock is held while the haircut runs.
func (b *Barber) serve(c room.Client) {
	b.state.Store(int32(StateServing))
	b.room.MarkBusy(b.id, c.ID)

	start := time.Now()
	if b.service > 0 {
		time.Sleep(b.service)
	}
	elapsed := time.Since(start)

	b.served.Add(1)
	b.events.Publish(event.NewBarberFinishedEvent(b.id, c.ID, elapsed))
	b.logger.Debug("haircut finished", "client_id", c.ID, "duration_ms", elapsed.Milliseconds())
	b.room.MarkIdle(b.id)
}
