package geo

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/logging"
)

// Directions owns walking-route computation. Issuing a new request cancels
// any previously in-flight one, so at most one route computation is active
// at a time and at most one result is considered current.
type Directions struct {
	router Router
	log    logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewDirections returns a Directions manager over the given router.
func NewDirections(router Router, log logging.Logger) *Directions {
	return &Directions{router: router, log: log}
}

// Walk computes a walking route from the user's position to the destination.
//
// A nil from means the current location is unknown; a nil to means the
// destination never resolved. Both map to their fixed user-facing errors
// before any request is made.
func (d *Directions) Walk(ctx context.Context, from, to *Coordinate) (*Route, error) {
	if from == nil {
		return nil, common.ErrorNoCurrentLocation
	}
	if to == nil {
		return nil, common.ErrorNoDestination
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.mu.Lock()
	if d.cancel != nil {
		// Discard the previous in-flight computation.
		d.cancel()
	}
	d.cancel = cancel
	d.gen++
	myGen := d.gen
	d.mu.Unlock()

	route, err := d.router.WalkingRoute(ctx, *from, *to)

	d.mu.Lock()
	// Only the most recent request may release the shared slot; a
	// superseded one must not touch its successor's cancel func.
	if d.gen == myGen {
		d.cancel = nil
	}
	d.mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			// Superseded by a newer request; nothing to report.
			return nil, ctx.Err()
		}
		d.log.Error(ctx, "directions lookup failed", "error", err)
		if IsNoRoute(err) {
			return nil, err
		}
		return nil, common.ErrorNoRoute
	}
	return route, nil
}
