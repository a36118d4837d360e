// Package common defines shared sentinel errors used across PlaceKeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorNameRequired = errors.New("name is required")

	// Geocoding/directions errors. The directions messages are fixed,
	// user-facing strings.
	ErrorNoRoute            = errors.New("Direction is not available")
	ErrorNoDestination      = errors.New("Destination is not found")
	ErrorNoCurrentLocation  = errors.New("Current location is not found")
	ErrorLocationRestricted = errors.New("Location is not available: enable location access in settings")
)
