package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/tui/styles"
)

// Narrator writes a human-readable trace line for each event.
type Narrator struct {
	mu     sync.Mutex
	w      io.Writer
	styles *styles.Styles
	now    func() time.Time
}

// NewNarrator creates a Narrator writing to w. Colors are used only when w
// is a terminal that supports them.
func NewNarrator(w io.Writer, theme styles.ThemeName) *Narrator {
	return &Narrator{
		w:      w,
		styles: styles.New(lipgloss.NewRenderer(w), styles.GetPalette(theme)),
		now:    time.Now,
	}
}

// Attach subscribes the narrator to every event on bus and returns the
// subscription ID.
func (n *Narrator) Attach(bus *event.Bus) string {
	return bus.SubscribeAll(n.Handle)
}

// Handle writes the line for e. Unknown event types are ignored.
func (n *Narrator) Handle(e event.Event) {
	line := n.describe(e)
	if line == "" {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "%s %s\n", n.styles.Muted.Render(e.Timestamp().Format("15:04:05.000")), line)
}

func (n *Narrator) describe(e event.Event) string {
	s := n.styles
	switch ev := e.(type) {
	case event.ClientArrivedEvent:
		return s.Text.Render(fmt.Sprintf("Client %d arrived.", ev.ClientID))
	case event.ClientSeatedEvent:
		return s.Seated.Render(fmt.Sprintf("Client %d took a seat (%d/%d chairs taken).", ev.ClientID, ev.Waiting, ev.Capacity))
	case event.ClientTurnedAwayEvent:
		return s.TurnedAway.Render(fmt.Sprintf("Client %d left: all %d chairs are taken.", ev.ClientID, ev.Capacity))
	case event.BarberWaitingEvent:
		return s.Waiting.Render(fmt.Sprintf("Barber %d is waiting for clients...", ev.BarberID))
	case event.BarberServingEvent:
		return s.Serving.Render(fmt.Sprintf("Barber %d is serving client %d (waited %s).", ev.BarberID, ev.ClientID, ev.Waited.Round(time.Millisecond)))
	case event.BarberFinishedEvent:
		return s.Finished.Render(fmt.Sprintf("Barber %d finished client %d.", ev.BarberID, ev.ClientID))
	case event.BarberStoppedEvent:
		return s.Stopped.Render(fmt.Sprintf("Barber %d went home after %d haircuts.", ev.BarberID, ev.Served))
	default:
		return ""
	}
}
