package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/barbershop/internal/room"
)

func TestNewPool_RequiresABarber(t *testing.T) {
	r, err := room.New(1)
	require.NoError(t, err)

	_, err = NewPool(0, r, 0)
	require.ErrorIs(t, err, room.ErrInvalidConfiguration)

	_, err = NewPool(2, r, -time.Second)
	require.ErrorIs(t, err, room.ErrInvalidConfiguration)
}

func TestPool_ServesEveryone(t *testing.T) {
	r, err := room.New(20)
	require.NoError(t, err)

	p, err := NewPool(3, r, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 3, p.Size())
	for i, b := range p.Barbers() {
		require.Equal(t, i, b.ID())
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	for i := range 20 {
		require.Equal(t, Enqueued, NewClient(i).Visit(r))
	}
	require.Eventually(t, func() bool { return p.Served() == 20 }, 2*time.Second, time.Millisecond)

	cancel()
	require.NoError(t, p.Wait())
	for _, b := range p.Barbers() {
		require.Equal(t, StateStopped, b.State())
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	p, err := NewPool(2, failingRoom{}, 0)
	require.NoError(t, err)

	p.Start(context.Background())
	err = p.Wait()
	require.ErrorIs(t, err, errBroken)
}
