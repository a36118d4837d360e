// Package form holds the typed form state behind the add/edit flow.
//
// Field-editing commands bind to a single PlaceForm and mutate it directly;
// nothing is written through to the store until the form is saved, and
// cancelling is simply dropping the form.
package form

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/placekeeper/internal/models"
	"github.com/google/uuid"
)

// PlaceForm accumulates in-progress edits for one place.
//
// The form operates in two modes: "create" (no backing record) and "edit"
// (backing record supplied at construction). The mode is determined solely
// by whether an existing record was supplied.
type PlaceForm struct {
	existing *models.Place

	name     string
	location string
	typ      string
	image    []byte
	rating   int
}

// New returns an empty form in create mode.
func New() *PlaceForm {
	return &PlaceForm{}
}

// Edit returns a form in edit mode preloaded with the record's fields.
// The record itself is not touched until Place() is persisted by the caller.
func Edit(p *models.Place) *PlaceForm {
	return &PlaceForm{
		existing: p,
		name:     p.Name,
		location: p.Location,
		typ:      p.Type,
		image:    p.Image,
		rating:   p.Rating,
	}
}

// IsEdit reports whether the form mutates an existing record.
func (f *PlaceForm) IsEdit() bool { return f.existing != nil }

// SetName updates the working name. Save availability must be re-checked
// after every call.
func (f *PlaceForm) SetName(name string) { f.name = name }

func (f *PlaceForm) SetLocation(location string) { f.location = location }

func (f *PlaceForm) SetType(typ string) { f.typ = typ }

// SetImage replaces the working image for this session only. A nil image
// means "render the placeholder".
func (f *PlaceForm) SetImage(image []byte) { f.image = image }

func (f *PlaceForm) Name() string     { return f.name }
func (f *PlaceForm) Location() string { return f.location }
func (f *PlaceForm) Type() string     { return f.typ }
func (f *PlaceForm) Image() []byte    { return f.image }
func (f *PlaceForm) Rating() int      { return f.rating }

// CanSave reports whether the form may be saved. Save is enabled if and
// only if the current name is non-empty.
func (f *PlaceForm) CanSave() bool {
	return strings.TrimSpace(f.name) != ""
}

// ToggleStar registers a tap on star index i (0-based). Selecting star i
// sets the rating to i+1, unless the rating already equals i+1, in which
// case it resets to 0. Indexes outside [0, RatingMax) are ignored.
func (f *PlaceForm) ToggleStar(i int) {
	if i < 0 || i >= models.RatingMax {
		return
	}
	selected := i + 1
	if f.rating == selected {
		f.rating = 0
		return
	}
	f.rating = selected
}

// Place snapshots the current field values. In create mode the result gets
// a fresh id and CreatedAt; in edit mode identity and CreatedAt are
// preserved from the backing record.
func (f *PlaceForm) Place() *models.Place {
	p := &models.Place{
		Name:     strings.TrimSpace(f.name),
		Location: strings.TrimSpace(f.location),
		Type:     strings.TrimSpace(f.typ),
		Image:    f.image,
		Rating:   f.rating,
	}
	if f.existing != nil {
		p.Id = f.existing.Id
		p.CreatedAt = f.existing.CreatedAt
	} else {
		p.Id = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
	}
	return p
}
