package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"stylelove/internal/bodytype"
	"stylelove/internal/models"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import outfits from a YAML catalog file",
	Long: `Reads a catalog file of the form

  outfits:
    - category: Dresses
      title: Linen wrap dress
      description: Cinched waist, flowing skirt
      image_url: https://cdn.example.com/wrap.jpg
      source: Unsplash
      body_types: [Hourglass, Pear]

and inserts every outfit. Body types must be one of the quiz results.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "catalog.yaml", "catalog YAML file")
}

type catalogFile struct {
	Outfits []models.Outfit `yaml:"outfits"`
}

// OutfitCreator is the storage call seed needs.
type OutfitCreator interface {
	CreateOutfit(ctx context.Context, outfit *models.Outfit) error
}

// loadCatalog parses and validates a catalog document.
func loadCatalog(data []byte) ([]models.Outfit, error) {
	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, o := range catalog.Outfits {
		if o.Title == "" || o.Category == "" || o.ImageURL == "" {
			return nil, fmt.Errorf("outfit %d: title, category and image_url are required", i+1)
		}
		for _, bt := range o.BodyTypes {
			if !bodytype.Valid(bt) {
				return nil, fmt.Errorf("outfit %d (%s): unknown body type %q", i+1, o.Title, bt)
			}
		}
	}
	return catalog.Outfits, nil
}

func seedOutfits(ctx context.Context, store OutfitCreator, outfits []models.Outfit) (int, error) {
	for i := range outfits {
		if err := store.CreateOutfit(ctx, &outfits[i]); err != nil {
			return i, fmt.Errorf("insert %q: %w", outfits[i].Title, err)
		}
		logger.Debug("outfit seeded", zap.Int64("id", outfits[i].ID), zap.String("title", outfits[i].Title))
	}
	return len(outfits), nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return err
	}
	outfits, err := loadCatalog(data)
	if err != nil {
		return err
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

	n, err := seedOutfits(ctx, store, outfits)
	if err != nil {
		return fmt.Errorf("seeded %d of %d outfits: %w", n, len(outfits), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d outfits from %s\n", n, seedFile)
	return nil
}
