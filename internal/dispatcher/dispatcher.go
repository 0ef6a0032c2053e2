// Package dispatcher generates client arrivals at random intervals and sends
// each new client, on its own goroutine, to the waiting room.
package dispatcher

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/Iron-Ham/barbershop/internal/actor"
	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/logging"
	"github.com/Iron-Ham/barbershop/internal/room"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSeed makes the arrival intervals reproducible.
func WithSeed(seed uint64) Option {
	return func(d *Dispatcher) {
		d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithMaxClients stops the dispatcher after n arrivals. 0 means no limit.
func WithMaxClients(n int) Option {
	return func(d *Dispatcher) {
		d.maxClients = n
	}
}

// WithEvents publishes a client.arrived event for every new client.
func WithEvents(p event.Publisher) Option {
	return func(d *Dispatcher) {
		if p != nil {
			d.events = p
		}
	}
}

// WithLogger sets the dispatcher's logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithOutcome registers fn to be called with each client's outcome, on the
// client's goroutine.
func WithOutcome(fn func(actor.Client, actor.Outcome)) Option {
	return func(d *Dispatcher) {
		d.onOutcome = fn
	}
}

// Dispatcher is a cancellable generator of client arrivals.
type Dispatcher struct {
	entrance   actor.Entrance
	events     event.Publisher
	logger     *logging.Logger
	onOutcome  func(actor.Client, actor.Outcome)
	maxClients int

	mu     sync.Mutex // guards rng and the arrival window
	rng    *rand.Rand
	minGap time.Duration
	maxGap time.Duration

	nextID  atomic.Int64
	clients conc.WaitGroup
}

// New creates a dispatcher sending clients to entrance. Gaps between
// arrivals are drawn uniformly from [minGap, maxGap).
func New(entrance actor.Entrance, minGap, maxGap time.Duration, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		entrance: entrance,
		events:   event.Discard,
		logger:   logging.NopLogger(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	if err := d.SetArrivalWindow(minGap, maxGap); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.maxClients < 0 {
		return nil, fmt.Errorf("%w: max clients must be non-negative, got %d", room.ErrInvalidConfiguration, d.maxClients)
	}
	return d, nil
}

// SetArrivalWindow changes the arrival interval range. It is safe to call
// while Run is active; the next gap uses the new window.
func (d *Dispatcher) SetArrivalWindow(minGap, maxGap time.Duration) error {
	if minGap < 0 || maxGap < minGap {
		return fmt.Errorf("%w: arrival window [%s, %s) is invalid", room.ErrInvalidConfiguration, minGap, maxGap)
	}
	d.mu.Lock()
	d.minGap, d.maxGap = minGap, maxGap
	d.mu.Unlock()
	return nil
}

// ArrivalWindow returns the current arrival interval range.
func (d *Dispatcher) ArrivalWindow() (time.Duration, time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.minGap, d.maxGap
}

func (d *Dispatcher) nextGap() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.maxGap <= d.minGap {
		return d.minGap
	}
	return d.minGap + time.Duration(d.rng.Int64N(int64(d.maxGap-d.minGap)))
}

// Run waits a random gap, sends a new client in, and repeats until ctx is
// cancelled or the client limit is reached. Cancellation is not an error.
func (d *Dispatcher) Run(ctx context.Context) error {
	for d.maxClients == 0 || d.Arrived() < d.maxClients {
		timer := time.NewTimer(d.nextGap())
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
		if ctx.Err() != nil {
			d.logger.Info("dispatcher stopped", "arrived", d.Arrived())
			return nil
		}
		d.spawn()
	}
	d.logger.Info("client limit reached", "arrived", d.Arrived())
	return nil
}

// spawn creates the next client and runs its visit on a new goroutine.
func (d *Dispatcher) spawn() {
	id := int(d.nextID.Add(1) - 1)
	c := actor.NewClient(id)
	d.events.Publish(event.NewClientArrivedEvent(id))

	d.clients.Go(func() {
		outcome := c.Visit(d.entrance)
		d.logger.Debug("client visit finished", "client_id", id, "outcome", outcome.String())
		if d.onOutcome != nil {
			d.onOutcome(c, outcome)
		}
	})
}

// Arrived returns the number of clients created so far.
func (d *Dispatcher) Arrived() int {
	return int(d.nextID.Load())
}

// Wait blocks until every spawned client has finished its visit.
func (d *Dispatcher) Wait() {
	d.clients.Wait()
}
