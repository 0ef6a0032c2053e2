// Package actor contains the goroutine-backed participants of the
// barbershop: barbers, which loop taking clients from the waiting room, and
// clients, which try once to get a seat.
//
// Barbers hold no lock while cutting hair; the only synchronized steps are
// the room's TakeNext and the diagnostic busy flags. A barber stops when its
// context is cancelled, either while asleep in TakeNext or between haircuts.
// A haircut already in progress is finished first.
package actor
