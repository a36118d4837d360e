// Package services holds the write-through application services between the
// CLI and the repositories.
package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/dbx"
	"github.com/dmitrijs2005/placekeeper/internal/form"
	"github.com/dmitrijs2005/placekeeper/internal/logging"
	"github.com/dmitrijs2005/placekeeper/internal/models"
	"github.com/dmitrijs2005/placekeeper/internal/repositories/places"
)

// PlaceService owns the save/delete/query flow over the place store. It is
// constructed once at the composition root and injected into the CLI; there
// is no ambient global handle.
type PlaceService struct {
	db      *sql.DB
	log     logging.Logger
	newRepo func(db dbx.DBTX) places.Repository
}

// NewPlaceService returns a service over the given database handle.
func NewPlaceService(db *sql.DB, log logging.Logger) *PlaceService {
	return &PlaceService{
		db:  db,
		log: log,
		newRepo: func(db dbx.DBTX) places.Repository {
			return places.NewSQLiteRepository(db)
		},
	}
}

// List returns all places freshly queried in the requested order.
func (s *PlaceService) List(ctx context.Context, key models.SortKey, ascending bool) ([]models.Place, error) {
	return s.newRepo(s.db).GetAll(ctx, key, ascending)
}

// Search returns the places matching the substring; an empty substring
// falls back to the full chronological listing.
func (s *PlaceService) Search(ctx context.Context, substring string) ([]models.Place, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return s.List(ctx, models.SortByDate, true)
	}
	return s.newRepo(s.db).Filter(ctx, substring)
}

// Get loads one place for display or editing.
func (s *PlaceService) Get(ctx context.Context, id string) (*models.Place, error) {
	return s.newRepo(s.db).GetByID(ctx, id)
}

// Save commits a form. A form without a name is refused before anything is
// written. Create mode inserts a new record; edit mode applies all changed
// fields inside a single transaction. A storage failure is logged and
// returned; the store is left unchanged.
func (s *PlaceService) Save(ctx context.Context, f *form.PlaceForm) (*models.Place, error) {
	if !f.CanSave() {
		return nil, common.ErrorNameRequired
	}

	p := f.Place()

	var err error
	if f.IsEdit() {
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return s.newRepo(tx).Update(ctx, p)
		})
	} else {
		err = s.newRepo(s.db).Add(ctx, p)
	}

	if err != nil {
		s.log.Error(ctx, "saving place failed", "id", p.Id, "error", err)
		return nil, err
	}
	return p, nil
}

// Delete removes one place by id. Deleting an id that is already gone is
// not an error.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if err := s.newRepo(s.db).DeleteByID(ctx, id); err != nil {
		s.log.Error(ctx, "deleting place failed", "id", id, "error", err)
		return err
	}
	return nil
}
