// Package room implements the barbershop's waiting room: a bounded FIFO of
// clients shared by every barber and client goroutine.
//
// The room exposes exactly two operations that change the queue:
//
//   - [Room.TryEnter] (producer side) seats a client if a chair is free and
//     otherwise turns it away. It never blocks.
//   - [Room.TakeNext] (consumer side) removes the longest-waiting client,
//     blocking while the room is empty until a client arrives or the
//     caller's context is cancelled.
//
// Both run under one mutex, which totally orders them. The consumer wait is
// a condition variable re-checked in a loop, so a broadcast that wakes more
// barbers than there are clients only costs the extra barbers another wait.
//
// Barber busy flags ([Room.MarkBusy], [Room.MarkIdle]) and [Room.Snapshot]
// exist for diagnostics and the dashboard; they never affect who is served.
package room
