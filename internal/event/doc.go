// Package event provides a pub-sub event bus that lets the barbershop's
// actors report what they are doing without knowing who is listening.
//
// The waiting room, barbers, clients and dispatcher publish events; the
// console narrator, the outcome tally and the log sink subscribe to them.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//   - [Publisher]: The publishing half of a Bus, accepted by producers
//
// # Event Categories
//
// Client events:
//   - [ClientArrivedEvent]: a client walked in the door
//   - [ClientSeatedEvent]: a client took a free chair
//   - [ClientTurnedAwayEvent]: every chair was taken and the client left
//
// Barber events:
//   - [BarberWaitingEvent]: a barber found the room empty and went to sleep
//   - [BarberServingEvent]: a barber took a client from the room
//   - [BarberFinishedEvent]: a haircut is done
//   - [BarberStoppedEvent]: a barber left the shop after cancellation
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously on the publishing goroutine. Events published by the waiting
// room are delivered while the room's lock is held, so handlers must not call
// back into the room.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	bus.Subscribe(event.TypeClientTurnedAway, func(e event.Event) {
//	    away := e.(event.ClientTurnedAwayEvent)
//	    fmt.Printf("client %d left\n", away.ClientID)
//	})
//	bus.Publish(event.NewClientTurnedAwayEvent(7, 3))
package event
