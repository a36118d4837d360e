package geo

import "github.com/dmitrijs2005/placekeeper/internal/common"

// Authorization mirrors the platform location-permission states. Each state
// maps to one fixed behavior: NotDetermined triggers a request,
// Denied/Restricted produce the fixed instructional error, and the
// authorized states expose the position.
type Authorization string

const (
	AuthNotDetermined       Authorization = "not_determined"
	AuthDenied              Authorization = "denied"
	AuthRestricted          Authorization = "restricted"
	AuthAuthorizedWhenInUse Authorization = "when_in_use"
	AuthAuthorizedAlways    Authorization = "always"
)

// LocationProvider exposes the user's current position, subject to the
// authorization state.
type LocationProvider interface {
	// Current returns the position, or an error describing why it is not
	// available.
	Current() (*Coordinate, error)
}

// StaticProvider serves a position from configuration. A CLI has no GPS;
// the configured coordinates stand in for the live location.
type StaticProvider struct {
	status   Authorization
	position *Coordinate
}

// NewStaticProvider builds a provider. A nil position with NotDetermined
// status stays unresolvable until coordinates are configured.
func NewStaticProvider(status Authorization, position *Coordinate) *StaticProvider {
	return &StaticProvider{status: status, position: position}
}

// Status returns the current authorization state.
func (p *StaticProvider) Status() Authorization { return p.status }

// Current resolves the position according to the authorization table.
func (p *StaticProvider) Current() (*Coordinate, error) {
	switch p.status {
	case AuthDenied, AuthRestricted:
		return nil, common.ErrorLocationRestricted
	case AuthNotDetermined:
		// Asking for permission: granted when a position is configured.
		if p.position == nil {
			p.status = AuthDenied
			return nil, common.ErrorLocationRestricted
		}
		p.status = AuthAuthorizedWhenInUse
	}

	if p.position == nil {
		return nil, common.ErrorNoCurrentLocation
	}
	return p.position, nil
}
