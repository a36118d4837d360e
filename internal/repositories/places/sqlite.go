package places

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/dbx"
	"github.com/dmitrijs2005/placekeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx), so the same code serves plain calls and transactional batches.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const placeColumns = `id, name, location, type, image, rating, created_at`

// Add inserts a new place record.
func (r *SQLiteRepository) Add(ctx context.Context, p *models.Place) error {
	query := `INSERT INTO places (` + placeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Id, p.Name, p.Location, p.Type, p.Image, p.Rating, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}
	return nil
}

// Update overwrites every mutable field of the record identified by p.Id.
// CreatedAt is immutable and is never touched.
func (r *SQLiteRepository) Update(ctx context.Context, p *models.Place) error {
	query := `UPDATE places SET name=?, location=?, type=?, image=?, rating=? WHERE id=?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Location, p.Type, p.Image, p.Rating, p.Id)
	if err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// DeleteByID removes a place. An absent id is not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM places WHERE id=?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	return nil
}

// GetByID returns one place or common.ErrorNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	p := &models.Place{}
	err := row.Scan(&p.Id, &p.Name, &p.Location, &p.Type, &p.Image, &p.Rating, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return p, nil
}

// GetAll lists every place ordered by the sort key. Listing is always a
// fresh query; callers never re-sort stale data in memory.
func (r *SQLiteRepository) GetAll(ctx context.Context, key models.SortKey, ascending bool) ([]models.Place, error) {
	column := "created_at"
	if key == models.SortByName {
		column = "name COLLATE NOCASE"
	}
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM places ORDER BY %s %s`, placeColumns, column, direction)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select places: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// Filter returns the places whose name OR location contains the substring,
// case-insensitively, ordered by creation time.
func (r *SQLiteRepository) Filter(ctx context.Context, substring string) ([]models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places
		WHERE instr(lower(name), lower(?)) > 0 OR instr(lower(location), lower(?)) > 0
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, substring, substring)
	if err != nil {
		return nil, fmt.Errorf("failed to filter places: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func scanPlaces(rows *sql.Rows) ([]models.Place, error) {
	var result []models.Place
	for rows.Next() {
		var item models.Place
		if err := rows.Scan(&item.Id, &item.Name, &item.Location, &item.Type,
			&item.Image, &item.Rating, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
