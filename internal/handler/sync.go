package handler

import (
	"context"

	"stylelove/internal/models"
	"stylelove/internal/search"
)

type CatalogReader interface {
	AllOutfits(ctx context.Context) ([]models.Outfit, error)
}

type IndexWriter interface {
	SaveObjects(ctx context.Context, records []search.Record) error
}

// SyncIndex copies every outfit into the search index and returns how many
// were sent. Shared by the admin endpoint and stylectl.
func SyncIndex(ctx context.Context, catalog CatalogReader, index IndexWriter) (int, error) {
	outfits, err := catalog.AllOutfits(ctx)
	if err != nil {
		return 0, err
	}
	records := make([]search.Record, len(outfits))
	for i, o := range outfits {
		records[i] = search.RecordFromOutfit(o)
	}
	if len(records) == 0 {
		return 0, nil
	}
	if err := index.SaveObjects(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
