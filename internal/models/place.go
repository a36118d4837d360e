// Package models defines the data model used by the PlaceKeeper CLI.
package models

import "time"

// RatingMax is the upper bound of the star rating scale. A rating of 0
// means "unrated".
const RatingMax = 5

// Place is a user-authored record describing a point of interest.
type Place struct {
	// Id is a globally unique identifier for the place.
	Id string

	// Name is the display name. It is never empty for a persisted record.
	Name string

	// Location is an optional free-text address, resolvable to a
	// geographic coordinate.
	Location string

	// Type is an optional free-text category label ("Cafe", "Museum"...).
	Type string

	// Image holds optional PNG bytes. A nil Image means the fixed
	// placeholder is rendered instead.
	Image []byte

	// Rating is an integer in [0, RatingMax]; 0 means unrated.
	Rating int

	// CreatedAt is set once at creation (UTC) and drives the
	// chronological sort order.
	CreatedAt time.Time
}

// SortKey selects the ordering of place listings.
type SortKey string

const (
	SortByDate SortKey = "date"
	SortByName SortKey = "name"
)
