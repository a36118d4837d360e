package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/form"
	"github.com/dmitrijs2005/placekeeper/internal/models"
	"github.com/dmitrijs2005/placekeeper/internal/photos"
)

// stars renders a rating as filled/empty star slots, e.g. "**---" for 2.
func stars(rating int) string {
	return strings.Repeat("*", rating) + strings.Repeat("-", models.RatingMax-rating)
}

// overview is the one-line listing form of a place.
func overview(p *models.Place) string {
	return fmt.Sprintf("%s | %-20s | %s | %s", p.Id, p.Name, stars(p.Rating), p.Location)
}

// List prints all places in the currently selected sort order. The listing
// is re-queried on every call, so edits made elsewhere are always visible.
func (a *App) List(ctx context.Context) error {
	items, err := a.places.List(ctx, a.sortKey, a.sortAsc)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, item := range items {
		printlnFn(overview(&item))
	}
	return nil
}

// Sort prompts for a sort key and direction, remembers them, and re-lists.
func (a *App) Sort(ctx context.Context) error {
	key, err := GetSimpleText(a.reader, "Sort by (date/name)", os.Stdout)
	if err != nil {
		return err
	}
	switch key {
	case "date":
		a.sortKey = models.SortByDate
	case "name":
		a.sortKey = models.SortByName
	default:
		printlnFn("Unknown sort key:", key)
		return nil
	}

	order, err := GetSimpleText(a.reader, "Order (asc/desc)", os.Stdout)
	if err != nil {
		return err
	}
	switch order {
	case "asc":
		a.sortAsc = true
	case "desc":
		a.sortAsc = false
	default:
		printlnFn("Unknown order:", order)
		return nil
	}

	return a.List(ctx)
}

// Search prompts for a text fragment and lists the places whose name or
// location contains it. An empty fragment lists everything.
func (a *App) Search(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	items, err := a.places.Search(ctx, text)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, item := range items {
		printlnFn(overview(&item))
	}
	return nil
}

// fillForm runs the interactive field-editing loop over a form. An empty
// answer keeps the field's current value, so the same flow serves both
// create and edit.
func (a *App) fillForm(ctx context.Context, f *form.PlaceForm) error {
	name, err := GetSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", f.Name()), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		f.SetName(name)
	}

	location, err := GetSimpleText(a.reader, fmt.Sprintf("Enter location [%s]", f.Location()), os.Stdout)
	if err != nil {
		return err
	}
	if location != "" {
		f.SetLocation(location)
	}

	typ, err := GetSimpleText(a.reader, fmt.Sprintf("Enter type [%s]", f.Type()), os.Stdout)
	if err != nil {
		return err
	}
	if typ != "" {
		f.SetType(typ)
	}

	// Star taps: selecting a star sets the rating, tapping the same star
	// again clears it.
	for {
		prompt := fmt.Sprintf("Rating %s. Tap a star 1-%d (empty line to keep)", stars(f.Rating()), models.RatingMax)
		tap, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if tap == "" {
			break
		}
		n, err := strconv.Atoi(tap)
		if err != nil {
			printlnFn("Enter a star number")
			continue
		}
		f.ToggleStar(n - 1)
	}

	path, err := GetSimpleText(a.reader, "Enter photo path (PNG, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if path != "" {
		image, err := photos.Load(path)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		f.SetImage(image)
	}

	return nil
}

// saveForm persists a filled form, translating the name-required refusal
// into a user-facing message.
func (a *App) saveForm(ctx context.Context, f *form.PlaceForm) error {
	p, err := a.places.Save(ctx, f)
	if err != nil {
		if errors.Is(err, common.ErrorNameRequired) {
			printlnFn("Name is required")
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}
	printlnFn("Saved:", overview(p))
	return nil
}

// Add collects fields for a new place and saves it.
func (a *App) Add(ctx context.Context) error {
	f := form.New()
	if err := a.fillForm(ctx, f); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return a.saveForm(ctx, f)
}

// Edit loads a place into a form, collects changes, and saves them.
func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter place id to edit", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.places.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Place not found:", id)
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}

	f := form.Edit(p)
	if err := a.fillForm(ctx, f); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return a.saveForm(ctx, f)
}

// Delete removes a place by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter place id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.places.Delete(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Deleted:", id)
	return nil
}

// Show fetches and displays a single place by ID. The place's image (photo
// or placeholder) is exported to a local "export" directory and the
// destination path is printed.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter place id to show", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.places.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Place not found:", id)
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}

	printlnFn(p.Name)
	printlnFn("Location:", p.Location)
	printlnFn("Type:", p.Type)
	printlnFn("Rating:", stars(p.Rating))
	printlnFn("Added:", p.CreatedAt.Format("2006-01-02 15:04"))

	path, err := photos.Export(p, "export")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Image saved to:", path)
	return nil
}
