package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Iron-Ham/barbershop/internal/event"
)

// Summary is a snapshot of a run's outcomes.
type Summary struct {
	RunID      string
	Arrived    int
	Seated     int
	TurnedAway int
	Served     int // Haircuts completed
	InService  int // Taken from the queue but not finished yet
	TotalWait  time.Duration
	MaxWait    time.Duration
}

// AvgWait is the mean time served clients spent in the waiting room.
func (s Summary) AvgWait() time.Duration {
	started := s.Served + s.InService
	if started == 0 {
		return 0
	}
	return s.TotalWait / time.Duration(started)
}

// String renders the summary as a short multi-line report.
func (s Summary) String() string {
	var sb strings.Builder
	if s.RunID != "" {
		fmt.Fprintf(&sb, "Run %s\n", s.RunID)
	}
	fmt.Fprintf(&sb, "  arrived:     %d\n", s.Arrived)
	fmt.Fprintf(&sb, "  seated:      %d\n", s.Seated)
	fmt.Fprintf(&sb, "  turned away: %d\n", s.TurnedAway)
	fmt.Fprintf(&sb, "  served:      %d\n", s.Served)
	if s.InService > 0 {
		fmt.Fprintf(&sb, "  in service:  %d\n", s.InService)
	}
	fmt.Fprintf(&sb, "  avg wait:    %s\n", s.AvgWait().Round(time.Millisecond))
	fmt.Fprintf(&sb, "  max wait:    %s\n", s.MaxWait.Round(time.Millisecond))
	return sb.String()
}

// Tally counts client outcomes from events. It is safe for concurrent use.
type Tally struct {
	mu sync.Mutex
	s  Summary
}

// NewTally creates an empty tally for runID.
func NewTally(runID string) *Tally {
	return &Tally{s: Summary{RunID: runID}}
}

// Attach subscribes the tally to every event on bus.
func (t *Tally) Attach(bus *event.Bus) string {
	return bus.SubscribeAll(t.Handle)
}

// Handle updates the counters for e.
func (t *Tally) Handle(e event.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := e.(type) {
	case event.ClientArrivedEvent:
		t.s.Arrived++
	case event.ClientSeatedEvent:
		t.s.Seated++
	case event.ClientTurnedAwayEvent:
		t.s.TurnedAway++
	case event.BarberServingEvent:
		t.s.InService++
		t.s.TotalWait += ev.Waited
		t.s.MaxWait = max(t.s.MaxWait, ev.Waited)
	case event.BarberFinishedEvent:
		t.s.InService--
		t.s.Served++
	}
}

// Summary returns a copy of the current counters.
func (t *Tally) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.s
}
