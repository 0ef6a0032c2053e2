package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "client.seated", "barber.serving")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeClientArrived    = "client.arrived"
	TypeClientSeated     = "client.seated"
	TypeClientTurnedAway = "client.turned_away"
	TypeBarberWaiting    = "barber.waiting"
	TypeBarberServing    = "barber.serving"
	TypeBarberFinished   = "barber.finished"
	TypeBarberStopped    = "barber.stopped"
)

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Client Events
// -----------------------------------------------------------------------------

// ClientArrivedEvent is emitted by the dispatcher when a new client is created.
type ClientArrivedEvent struct {
	baseEvent
	ClientID int
}

// NewClientArrivedEvent creates a ClientArrivedEvent.
func NewClientArrivedEvent(clientID int) ClientArrivedEvent {
	return ClientArrivedEvent{
		baseEvent: newBaseEvent(TypeClientArrived),
		ClientID:  clientID,
	}
}

// ClientSeatedEvent is emitted when a client takes a chair in the waiting room.
type ClientSeatedEvent struct {
	baseEvent
	ClientID int
	Waiting  int // Queue length after the client sat down
	Capacity int
}

// NewClientSeatedEvent creates a ClientSeatedEvent.
func NewClientSeatedEvent(clientID, waiting, capacity int) ClientSeatedEvent {
	return ClientSeatedEvent{
		baseEvent: newBaseEvent(TypeClientSeated),
		ClientID:  clientID,
		Waiting:   waiting,
		Capacity:  capacity,
	}
}

// ClientTurnedAwayEvent is emitted when a client finds every chair taken.
type ClientTurnedAwayEvent struct {
	baseEvent
	ClientID int
	Capacity int
}

// NewClientTurnedAwayEvent creates a ClientTurnedAwayEvent.
func NewClientTurnedAwayEvent(clientID, capacity int) ClientTurnedAwayEvent {
	return ClientTurnedAwayEvent{
		baseEvent: newBaseEvent(TypeClientTurnedAway),
		ClientID:  clientID,
		Capacity:  capacity,
	}
}

// -----------------------------------------------------------------------------
// Barber Events
// -----------------------------------------------------------------------------

// BarberWaitingEvent is emitted when a barber finds the room empty and
// blocks. Spurious wakeups into an empty room do not emit it again.
type BarberWaitingEvent struct {
	baseEvent
	BarberID int
}

// NewBarberWaitingEvent creates a BarberWaitingEvent.
func NewBarberWaitingEvent(barberID int) BarberWaitingEvent {
	return BarberWaitingEvent{
		baseEvent: newBaseEvent(TypeBarberWaiting),
		BarberID:  barberID,
	}
}

// BarberServingEvent is emitted when a barber removes a client from the queue.
type BarberServingEvent struct {
	baseEvent
	BarberID int
	ClientID int
	Waited   time.Duration // Time the client spent in the waiting room
}

// NewBarberServingEvent creates a BarberServingEvent.
func NewBarberServingEvent(barberID, clientID int, waited time.Duration) BarberServingEvent {
	return BarberServingEvent{
		baseEvent: newBaseEvent(TypeBarberServing),
		BarberID:  barberID,
		ClientID:  clientID,
		Waited:    waited,
	}
}

// BarberFinishedEvent is emitted when a barber completes a haircut.
type BarberFinishedEvent struct {
	baseEvent
	BarberID int
	ClientID int
	Duration time.Duration
}

// NewBarberFinishedEvent creates a BarberFinishedEvent.
func NewBarberFinishedEvent(barberID, clientID int, duration time.Duration) BarberFinishedEvent {
	return BarberFinishedEvent{
		baseEvent: newBaseEvent(TypeBarberFinished),
		BarberID:  barberID,
		ClientID:  clientID,
		Duration:  duration,
	}
}

// BarberStoppedEvent is emitted once when a barber's loop exits.
type BarberStoppedEvent struct {
	baseEvent
	BarberID int
	Served   int // Haircuts completed over the barber's lifetime
}

// NewBarberStoppedEvent creates a BarberStoppedEvent.
func NewBarberStoppedEvent(barberID, served int) BarberStoppedEvent {
	return BarberStoppedEvent{
		baseEvent: newBaseEvent(TypeBarberStopped),
		BarberID:  barberID,
		Served:    served,
	}
}
