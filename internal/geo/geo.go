// Package geo talks to the external geocoding and routing services.
//
// Both operations are stateless per invocation: forward geocoding resolves
// a free-text address into a coordinate, and routing computes a walking
// route between two coordinates. The package does not impose timeouts or
// retries of its own; that is the HTTP client's business.
package geo

import "context"

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Candidate is one forward-geocoding result.
type Candidate struct {
	// DisplayName is the service's full label for the match.
	DisplayName string
	Coordinate  Coordinate
}

// Address holds the components a reverse-geocoding call may return. Any of
// the fields may be empty.
type Address struct {
	City        string
	Street      string
	HouseNumber string
}

// Route is a computed walking route.
type Route struct {
	// Polyline is the encoded route geometry as returned by the service.
	Polyline string
	// Distance is the total length in meters.
	Distance float64
	// Duration is the expected travel time in seconds.
	Duration float64
}

// Geocoder resolves free-text addresses and coordinates.
type Geocoder interface {
	// Search returns candidates for the address, best match first.
	Search(ctx context.Context, address string) ([]Candidate, error)

	// Reverse resolves a coordinate into address components.
	Reverse(ctx context.Context, c Coordinate) (*Address, error)
}

// Router computes walking routes.
type Router interface {
	// WalkingRoute returns the best pedestrian route between two points.
	WalkingRoute(ctx context.Context, from, to Coordinate) (*Route, error)
}

// Label composes a human-readable address line from whatever components are
// present, preferring the most complete combination:
//
//	city, street, house
//	city, street
//	city
//	street, house
//	street
//
// A house number without a street is useless and is dropped. If nothing
// usable is present the result is the empty string.
func (a Address) Label() string {
	if a.Street == "" {
		return a.City
	}

	line := a.Street
	if a.HouseNumber != "" {
		line += ", " + a.HouseNumber
	}
	if a.City != "" {
		line = a.City + ", " + line
	}
	return line
}
