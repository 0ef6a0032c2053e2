// Package shop assembles a waiting room, a barber pool and a dispatcher into
// one runnable simulation.
package shop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/Iron-Ham/barbershop/internal/actor"
	"github.com/Iron-Ham/barbershop/internal/dispatcher"
	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/logging"
	"github.com/Iron-Ham/barbershop/internal/room"
)

// drainPoll is how often Run checks whether the last seated client has been
// served after arrivals stop.
const drainPoll = 10 * time.Millisecond

// Options describes a shop.
type Options struct {
	Barbers    int
	Chairs     int
	Haircut    time.Duration
	MinGap     time.Duration
	MaxGap     time.Duration
	MaxClients int    // 0 = unbounded
	Seed       uint64 // 0 = random

	Events    event.Publisher
	Logger    *logging.Logger
	OnOutcome func(actor.Client, actor.Outcome)
}

// Shop owns every actor of a run.
type Shop struct {
	room       *room.Room
	pool       *actor.Pool
	dispatcher *dispatcher.Dispatcher
	logger     *logging.Logger
	onOutcome  func(actor.Client, actor.Outcome)

	seated atomic.Int64
}

// New validates opts and builds the shop. Nothing runs until Run.
func New(opts Options) (*Shop, error) {
	if opts.Events == nil {
		opts.Events = event.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	r, err := room.New(opts.Chairs, room.WithPublisher(opts.Events))
	if err != nil {
		return nil, err
	}

	pool, err := actor.NewPool(opts.Barbers, r, opts.Haircut,
		actor.WithEvents(opts.Events),
		actor.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, err
	}

	s := &Shop{
		room:      r,
		pool:      pool,
		logger:    opts.Logger,
		onOutcome: opts.OnOutcome,
	}

	dopts := []dispatcher.Option{
		dispatcher.WithMaxClients(opts.MaxClients),
		dispatcher.WithEvents(opts.Events),
		dispatcher.WithLogger(opts.Logger.With("component", "dispatcher")),
		dispatcher.WithOutcome(s.recordOutcome),
	}
	if opts.Seed != 0 {
		dopts = append(dopts, dispatcher.WithSeed(opts.Seed))
	}
	d, err := dispatcher.New(r, opts.MinGap, opts.MaxGap, dopts...)
	if err != nil {
		return nil, err
	}
	s.dispatcher = d

	return s, nil
}

func (s *Shop) recordOutcome(c actor.Client, o actor.Outcome) {
	if o == actor.Enqueued {
		s.seated.Add(1)
	}
	if s.onOutcome != nil {
		s.onOutcome(c, o)
	}
}

// Room returns the shop's waiting room.
func (s *Shop) Room() *room.Room { return s.room }

// Pool returns the shop's barbers.
func (s *Shop) Pool() *actor.Pool { return s.pool }

// Dispatcher returns the shop's arrival generator.
func (s *Shop) Dispatcher() *dispatcher.Dispatcher { return s.dispatcher }

// Run opens the shop and blocks until it closes. Cancelling ctx stops new
// arrivals and sends the barbers home; a haircut in progress is finished
// first. When the client limit is reached instead, Run waits for every
// seated client to be served before closing.
func (s *Shop) Run(ctx context.Context) error {
	barberCtx, stopBarbers := context.WithCancel(ctx)
	defer stopBarbers()

	s.logger.Info("shop opened", "barbers", s.pool.Size(), "chairs", s.room.Capacity())
	s.pool.Start(barberCtx)

	dispatchErr := s.dispatcher.Run(ctx)
	s.dispatcher.Wait()

	if ctx.Err() == nil {
		s.drain(ctx)
	}

	stopBarbers()
	err := errors.Join(dispatchErr, s.pool.Wait())
	s.logger.Info("shop closed", "arrived", s.dispatcher.Arrived(), "served", s.pool.Served())
	return err
}

// drain waits until every seated client has been served or ctx is done.
func (s *Shop) drain(ctx context.Context) {
	ticker := time.NewTicker(drainPoll)
	defer ticker.Stop()
	for int64(s.pool.Served()) < s.seated.Load() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Seated returns how many clients got a chair so far.
func (s *Shop) Seated() int {
	return int(s.seated.Load())
}
