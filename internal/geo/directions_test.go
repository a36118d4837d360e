package geo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubRouter struct {
	mu         sync.Mutex
	calls      int
	route      *Route
	err        error
	started    chan struct{}
	blockFirst bool
}

func (s *stubRouter) WalkingRoute(ctx context.Context, from, to Coordinate) (*Route, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	started := s.started
	s.started = nil
	s.mu.Unlock()

	if started != nil {
		close(started)
	}
	if s.blockFirst && first {
		// Hang until the manager cancels us.
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.route, s.err
}

func TestWalk_RequiresCurrentLocation(t *testing.T) {
	d := NewDirections(&stubRouter{}, discardLogger())

	_, err := d.Walk(context.Background(), nil, &Coordinate{})
	require.ErrorIs(t, err, common.ErrorNoCurrentLocation)
}

func TestWalk_RequiresDestination(t *testing.T) {
	d := NewDirections(&stubRouter{}, discardLogger())

	_, err := d.Walk(context.Background(), &Coordinate{}, nil)
	require.ErrorIs(t, err, common.ErrorNoDestination)
}

func TestWalk_ReturnsRoute(t *testing.T) {
	r := &stubRouter{route: &Route{Distance: 100, Duration: 60}}
	d := NewDirections(r, discardLogger())

	got, err := d.Walk(context.Background(), &Coordinate{}, &Coordinate{Lat: 1})
	require.NoError(t, err)
	assert.InDelta(t, 100, got.Distance, 1e-9)
}

func TestWalk_NoRoutePassesFixedMessage(t *testing.T) {
	r := &stubRouter{err: common.ErrorNoRoute}
	d := NewDirections(r, discardLogger())

	_, err := d.Walk(context.Background(), &Coordinate{}, &Coordinate{})
	require.ErrorIs(t, err, common.ErrorNoRoute)
}

func TestWalk_TransportFailureMapsToNoRoute(t *testing.T) {
	r := &stubRouter{err: errors.New("connection refused")}
	d := NewDirections(r, discardLogger())

	_, err := d.Walk(context.Background(), &Coordinate{}, &Coordinate{})
	require.ErrorIs(t, err, common.ErrorNoRoute)
}

func TestWalk_NewRequestCancelsInflight(t *testing.T) {
	router := &stubRouter{
		started:    make(chan struct{}),
		blockFirst: true,
		route:      &Route{},
	}
	d := NewDirections(router, discardLogger())

	started := router.started
	done := make(chan error, 1)
	go func() {
		_, err := d.Walk(context.Background(), &Coordinate{}, &Coordinate{Lat: 1})
		done <- err
	}()

	<-started

	// The second request must cancel the blocked first one.
	got, err := d.Walk(context.Background(), &Coordinate{}, &Coordinate{Lat: 2})
	require.NoError(t, err)
	require.NotNil(t, got)

	err = <-done
	require.ErrorIs(t, err, context.Canceled)
}
