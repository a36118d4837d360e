package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/geo"
)

// Locate forward-geocodes a free-text address and prints the candidates,
// best match first.
func (a *App) Locate(ctx context.Context) error {
	address, err := GetSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		return err
	}

	candidates, err := a.geocoder.Search(ctx, address)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(candidates) == 0 {
		printlnFn(common.ErrorNoDestination.Error())
		return common.ErrorNoDestination
	}

	for i, c := range candidates {
		printlnFn(fmt.Sprintf("%d. %s (%f, %f)", i+1, c.DisplayName, c.Coordinate.Lat, c.Coordinate.Lon))
	}
	return nil
}

// WhereAmI resolves the configured current position into a readable address.
func (a *App) WhereAmI(ctx context.Context) error {
	position, err := a.location.Current()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	address, err := a.geocoder.Reverse(ctx, *position)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	label := address.Label()
	if label == "" {
		label = fmt.Sprintf("%f, %f", position.Lat, position.Lon)
	}
	printlnFn("You are at:", label)
	return nil
}

// Route prints the walking-route summary from the current position to a
// saved place. The place's stored location is geocoded to the destination
// coordinate; failures map to the fixed user-facing messages.
func (a *App) Route(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter place id for directions", os.Stdout)
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

	var to *geo.Coordinate
	if p.Location != "" {
		candidates, err := a.geocoder.Search(ctx, p.Location)
		if err != nil {
			log.Printf("error: %v", err)
		} else if len(candidates) > 0 {
			to = &candidates[0].Coordinate
		}
	}
	if to == nil {
		printlnFn(common.ErrorNoDestination.Error())
		return common.ErrorNoDestination
	}

	var from *geo.Coordinate
	if position, err := a.location.Current(); err == nil {
		from = position
	}

	route, err := a.directions.Walk(ctx, from, to)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(geo.RouteSummary(route))
	return nil
}
