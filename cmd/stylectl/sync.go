package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stylelove/internal/handler"
	"stylelove/internal/search"
)

var syncCmd = &cobra.Command{
	Use:   "sync-index",
	Short: "Push every outfit in the database to the search index",
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	client := search.NewClient(search.Config{
		AppID:     cfg.Search.AppID,
		SearchKey: cfg.Search.SearchKey,
		AdminKey:  cfg.Search.AdminKey,
		IndexName: cfg.Search.IndexName,
		BaseURL:   cfg.Search.BaseURL,
	}, search.WithLogger(logger))
	if !client.CanSync() {
		return fmt.Errorf("ALGOLIA_APP_ID and ALGOLIA_ADMIN_API_KEY are required: %w", search.ErrNotConfigured)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := handler.SyncIndex(ctx, store, client)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d outfits to index %q\n", n, cfg.Search.IndexName)
	return nil
}
