package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/placekeeper/internal/models"
)

// Backup pushes place photos to the configured S3-compatible bucket. An
// empty ID answer backs up every place; after each push the presigned GET
// URL of the stored object is printed.
func (a *App) Backup(ctx context.Context) error {
	if a.config.S3Bucket == "" {
		printlnFn("Photo backup is not configured")
		return nil
	}

	backup, err := a.getBackup()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter place id to back up (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var items []models.Place
	if id == "" {
		items, err = a.places.List(ctx, models.SortByDate, true)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
	} else {
		p, err := a.places.Get(ctx, id)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		items = []models.Place{*p}
	}

	pushed := 0
	for _, item := range items {
		key, err := backup.Push(ctx, &item)
		if err != nil {
			log.Printf("error backing up %s: %v", item.Id, err)
			continue
		}
		pushed++

		url, err := backup.FetchURL(ctx, key)
		if err != nil {
			log.Printf("error: %v", err)
			continue
		}
		printlnFn(fmt.Sprintf("%s -> %s", item.Name, url))
	}

	printlnFn(fmt.Sprintf("Backed up %d of %d photos", pushed, len(items)))
	return nil
}
