package actor

import (
	"time"

	"github.com/Iron-Ham/barbershop/internal/room"
)

// Entrance is the part of the waiting room a client uses.
type Entrance interface {
	TryEnter(room.Client) bool
}

// Outcome is the terminal state of a client's visit.
type Outcome int

const (
	Rejected Outcome = iota
	Enqueued
)

func (o Outcome) String() string {
	if o == Enqueued {
		return "enqueued"
	}
	return "rejected"
}

// Client is a customer who tries exactly once to get a seat.
type Client struct {
	ID      int
	Arrived time.Time
}

// NewClient creates a client arriving now.
func NewClient(id int) Client {
	return Client{ID: id, Arrived: time.Now()}
}

// Visit makes the client's single attempt to sit down. Either outcome is
// final: a rejected client leaves, and an enqueued one is now the barbers'
// responsibility.
func (c Client) Visit(e Entrance) Outcome {
	if e.TryEnter(room.Client{ID: c.ID, Arrived: c.Arrived}) {
		return Enqueued
	}
	return Rejected
}
