package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/tui/styles"
)

func TestNarrator_Lines(t *testing.T) {
	tests := []struct {
		name  string
		event event.Event
		want  string
	}{
		{"arrived", event.NewClientArrivedEvent(3), "Client 3 arrived."},
		{"seated", event.NewClientSeatedEvent(3, 2, 5), "Client 3 took a seat (2/5 chairs taken)."},
		{"turned away", event.NewClientTurnedAwayEvent(4, 5), "Client 4 left: all 5 chairs are taken."},
		{"waiting", event.NewBarberWaitingEvent(1), "Barber 1 is waiting for clients..."},
		{"serving", event.NewBarberServingEvent(1, 3, 1500*time.Millisecond), "Barber 1 is serving client 3 (waited 1.5s)."},
		{"finished", event.NewBarberFinishedEvent(1, 3, time.Second), "Barber 1 finished client 3."},
		{"stopped", event.NewBarberStoppedEvent(1, 12), "Barber 1 went home after 12 haircuts."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := NewNarrator(&buf, styles.ThemeDefault)
			n.Handle(tt.event)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
			if strings.Count(buf.String(), "\n") != 1 {
				t.Errorf("expected exactly one line, got %q", buf.String())
			}
		})
	}
}

func TestNarrator_Attach(t *testing.T) {
	var buf bytes.Buffer
	bus := event.NewBus(nil)
	NewNarrator(&buf, styles.ThemeNord).Attach(bus)

	bus.Publish(event.NewClientArrivedEvent(0))
	bus.Publish(event.NewClientSeatedEvent(0, 1, 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestTally(t *testing.T) {
	bus := event.NewBus(nil)
	tally := NewTally("run-1")
	tally.Attach(bus)

	for i := range 4 {
		bus.Publish(event.NewClientArrivedEvent(i))
	}
	bus.Publish(event.NewClientSeatedEvent(0, 1, 2))
	bus.Publish(event.NewClientSeatedEvent(1, 2, 2))
	bus.Publish(event.NewClientTurnedAwayEvent(2, 2))
	bus.Publish(event.NewClientTurnedAwayEvent(3, 2))
	bus.Publish(event.NewBarberServingEvent(0, 0, 100*time.Millisecond))
	bus.Publish(event.NewBarberServingEvent(1, 1, 300*time.Millisecond))
	bus.Publish(event.NewBarberFinishedEvent(0, 0, time.Second))

	s := tally.Summary()
	if s.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", s.RunID)
	}
	if s.Arrived != 4 || s.Seated != 2 || s.TurnedAway != 2 {
		t.Errorf("arrived/seated/turned away = %d/%d/%d, want 4/2/2", s.Arrived, s.Seated, s.TurnedAway)
	}
	if s.Served != 1 || s.InService != 1 {
		t.Errorf("served/in service = %d/%d, want 1/1", s.Served, s.InService)
	}
	if s.AvgWait() != 200*time.Millisecond {
		t.Errorf("AvgWait() = %s, want 200ms", s.AvgWait())
	}
	if s.MaxWait != 300*time.Millisecond {
		t.Errorf("MaxWait = %s, want 300ms", s.MaxWait)
	}

	out := s.String()
	for _, want := range []string{"Run run-1", "turned away: 2", "served:      1", "in service:  1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}

func TestSummary_AvgWaitEmpty(t *testing.T) {
	if got := (Summary{}).AvgWait(); got != 0 {
		t.Errorf("AvgWait() = %s, want 0", got)
	}
}
