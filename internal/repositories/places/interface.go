package places

import (
	"context"

	"github.com/dmitrijs2005/placekeeper/internal/models"
)

// Repository describes CRUD and query operations for Place objects.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Add inserts a new place. It fails only on underlying storage errors.
	Add(ctx context.Context, place *models.Place) error

	// Update overwrites all mutable fields of an existing place by Id.
	// Callers that need atomicity run it via dbx.WithTx.
	Update(ctx context.Context, place *models.Place) error

	// DeleteByID removes a place by its identifier. Deleting an absent id
	// is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// GetByID returns a place by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Place, error)

	// GetAll returns all places ordered by the given sort key and direction.
	GetAll(ctx context.Context, key models.SortKey, ascending bool) ([]models.Place, error)

	// Filter returns the places whose name or location contains the
	// substring, case-insensitively, ordered by creation time.
	Filter(ctx context.Context, substring string) ([]models.Place, error)
}
