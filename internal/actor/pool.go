package actor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/Iron-Ham/barbershop/internal/room"
)

// Pool is the shop's fixed set of barbers.
type Pool struct {
	barbers []*Barber
	wg      conc.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool creates n barbers with IDs 0..n-1, all bound to r.
func NewPool(n int, r BarberRoom, service time.Duration, opts ...BarberOption) (*Pool, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one barber, got %d", room.ErrInvalidConfiguration, n)
	}
	p := &Pool{barbers: make([]*Barber, 0, n)}
	for id := range n {
		b, err := NewBarber(id, r, service, opts...)
		if err != nil {
			return nil, err
		}
		p.barbers = append(p.barbers, b)
	}
	return p, nil
}

// Start runs every barber on its own goroutine until ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for _, b := range p.barbers {
		p.wg.Go(func() {
			if err := b.Run(ctx); err != nil {
				p.mu.Lock()
				p.errs = append(p.errs, err)
				p.mu.Unlock()
			}
		})
	}
}

// Wait blocks until every barber has stopped. It returns the barbers'
// errors joined together, including any recovered panic.
func (p *Pool) Wait() error {
	if r := p.wg.WaitAndRecover(); r != nil {
		p.mu.Lock()
		p.errs = append(p.errs, r.AsError())
		p.mu.Unlock()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

// Barbers returns the pool's barbers, ordered by ID.
func (p *Pool) Barbers() []*Barber {
	return p.barbers
}

// Size returns the number of barbers.
func (p *Pool) Size() int {
	return len(p.barbers)
}

// Served returns the total haircuts completed across the pool.
func (p *Pool) Served() int {
	total := 0
	for _, b := range p.barbers {
		total += b.Served()
	}
	return total
}
