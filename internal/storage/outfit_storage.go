package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stylelove/internal/models"
)

var ErrOutfitNotFound = errors.New("outfit not found")

const outfitColumns = `o.id, o.category, o.image_url, o.title, o.description, o.source, o.created_at`

// CreateOutfit inserts the outfit with its body type tags in one transaction.
func (s *Store) CreateOutfit(ctx context.Context, outfit *models.Outfit) error {
	if outfit.CreatedAt.IsZero() {
		outfit.CreatedAt = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateOutfit(): %w", err)
	}
	defer tx.Rollback()

	query := s.rebind(`INSERT INTO outfits (category, image_url, title, description, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err = tx.QueryRowContext(ctx, query,
		outfit.Category, outfit.ImageURL, outfit.Title, outfit.Description, outfit.Source, outfit.CreatedAt,
	).Scan(&outfit.ID)
	if err != nil {
		return fmt.Errorf("CreateOutfit(): %w", err)
	}

	tagQuery := s.rebind(`INSERT INTO outfit_body_types (outfit_id, body_type) VALUES (?, ?)`)
	seen := make(map[string]bool, len(outfit.BodyTypes))
	for _, bt := range outfit.BodyTypes {
		if bt == "" || seen[bt] {
			continue
		}
		seen[bt] = true
		if _, err := tx.ExecContext(ctx, tagQuery, outfit.ID, bt); err != nil {
			return fmt.Errorf("CreateOutfit(): tag %q: %w", bt, err)
		}
	}
	return tx.Commit()
}

func (s *Store) GetOutfit(ctx context.Context, id int64) (*models.Outfit, error) {
	query := s.rebind(`SELECT ` + outfitColumns + ` FROM outfits o WHERE o.id = ?`)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("GetOutfit(): %w", err)
	}
	outfits, err := s.scanOutfits(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(outfits) == 0 {
		return nil, ErrOutfitNotFound
	}
	return &outfits[0], nil
}

// ListOutfits returns the catalog, newest first. An empty or "All" category
// means no filter. When bodyType is set, outfits tagged with it come first.
func (s *Store) ListOutfits(ctx context.Context, category, bodyType string) ([]models.Outfit, error) {
	query := `SELECT ` + outfitColumns + ` FROM outfits o`
	var args []any
	if category != "" && category != "All" {
		query += ` WHERE o.category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY `
	if bodyType != "" {
		query += `CASE WHEN EXISTS (
			SELECT 1 FROM outfit_body_types b WHERE b.outfit_id = o.id AND b.body_type = ?
		) THEN 0 ELSE 1 END, `
		args = append(args, bodyType)
	}
	query += `o.created_at DESC, o.id DESC`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("ListOutfits(): %w", err)
	}
	return s.scanOutfits(ctx, rows)
}

// AllOutfits returns the full catalog in insertion order, for index syncs.
func (s *Store) AllOutfits(ctx context.Context) ([]models.Outfit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+outfitColumns+` FROM outfits o ORDER BY o.id`)
	if err != nil {
		return nil, fmt.Errorf("AllOutfits(): %w", err)
	}
	return s.scanOutfits(ctx, rows)
}

func (s *Store) scanOutfits(ctx context.Context, rows *sql.Rows) ([]models.Outfit, error) {
	outfits := []models.Outfit{}
	for rows.Next() {
		var o models.Outfit
		if err := rows.Scan(&o.ID, &o.Category, &o.ImageURL, &o.Title, &o.Description, &o.Source, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanOutfits(): %w", err)
		}
		outfits = append(outfits, o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("scanOutfits(): %w", err)
	}
	rows.Close()

	if err := s.attachBodyTypes(ctx, outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// bodyTypeBatch caps the ids bound into one IN list, well under the
// postgres parameter limit.
var bodyTypeBatch = 500

// attachBodyTypes runs after the outer rows are closed; sqlite runs on a single connection.
func (s *Store) attachBodyTypes(ctx context.Context, outfits []models.Outfit) error {
	index := make(map[int64]int, len(outfits))
	for i := range outfits {
		outfits[i].BodyTypes = []string{}
		index[outfits[i].ID] = i
	}
	for start := 0; start < len(outfits); start += bodyTypeBatch {
		end := min(start+bodyTypeBatch, len(outfits))
		if err := s.attachBodyTypeBatch(ctx, outfits, index, outfits[start:end]); err != nil {
			return fmt.Errorf("attachBodyTypes(): %w", err)
		}
	}
	return nil
}

func (s *Store) attachBodyTypeBatch(ctx context.Context, outfits []models.Outfit, index map[int64]int, batch []models.Outfit) error {
	args := make([]any, len(batch))
	for i, o := range batch {
		args[i] = o.ID
	}

	query := s.rebind(`SELECT outfit_id, body_type FROM outfit_body_types
		WHERE outfit_id IN (` + placeholders(len(args)) + `) ORDER BY outfit_id, body_type`)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var bt string
		if err := rows.Scan(&id, &bt); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			outfits[i].BodyTypes = append(outfits[i].BodyTypes, bt)
		}
	}
	return rows.Err()
}
