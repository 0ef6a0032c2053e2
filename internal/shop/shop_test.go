package shop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/barbershop/internal/actor"
	"github.com/Iron-Ham/barbershop/internal/event"
	"github.com/Iron-Ham/barbershop/internal/room"
)

func TestNew_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no barbers", Options{Barbers: 0, Chairs: 1}},
		{"negative chairs", Options{Barbers: 1, Chairs: -1}},
		{"negative haircut", Options{Barbers: 1, Chairs: 1, Haircut: -time.Millisecond}},
		{"inverted window", Options{Barbers: 1, Chairs: 1, MinGap: time.Second, MaxGap: time.Millisecond}},
		{"negative client limit", Options{Barbers: 1, Chairs: 1, MaxClients: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.ErrorIs(t, err, room.ErrInvalidConfiguration)
		})
	}
}

func TestShop_ServesEverySeatedClient(t *testing.T) {
	var mu sync.Mutex
	outcomes := map[actor.Outcome]int{}

	s, err := New(Options{
		Barbers:    2,
		Chairs:     3,
		Haircut:    5 * time.Millisecond,
		MinGap:     time.Millisecond,
		MaxGap:     2 * time.Millisecond,
		MaxClients: 30,
		Seed:       7,
		OnOutcome: func(_ actor.Client, o actor.Outcome) {
			mu.Lock()
			outcomes[o]++
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, s.Run(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 30, outcomes[actor.Enqueued]+outcomes[actor.Rejected])
	require.Equal(t, outcomes[actor.Enqueued], s.Seated())
	require.Equal(t, s.Seated(), s.Pool().Served())
	require.Zero(t, s.Room().Len())
	for _, b := range s.Pool().Barbers() {
		require.Equal(t, actor.StateStopped, b.State())
	}
}

func TestShop_CancelStopsPromptly(t *testing.T) {
	bus := event.NewBus(nil)
	var stopped sync.WaitGroup
	stopped.Add(2)
	bus.Subscribe(event.TypeBarberStopped, func(event.Event) { stopped.Done() })
	waiting := make(chan struct{}, 2)
	bus.Subscribe(event.TypeBarberWaiting, func(event.Event) {
		select {
		case waiting <- struct{}{}:
		default:
		}
	})

	s, err := New(Options{
		Barbers: 2,
		Chairs:  2,
		Haircut: time.Millisecond,
		MinGap:  time.Hour,
		MaxGap:  2 * time.Hour,
		Events:  bus,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	for range 2 {
		select {
		case <-waiting:
		case <-time.After(2 * time.Second):
			t.Fatal("barbers never started waiting")
		}
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	stopped.Wait()
	require.Zero(t, s.Dispatcher().Arrived())
}

func TestShop_NoChairsTurnsEveryoneAway(t *testing.T) {
	s, err := New(Options{
		Barbers:    1,
		Chairs:     0,
		Haircut:    time.Millisecond,
		MaxClients: 10,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Run(ctx))

	require.Equal(t, 10, s.Dispatcher().Arrived())
	require.Zero(t, s.Seated())
	require.Zero(t, s.Pool().Served())
}
