package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stylelove/internal/models"
)

// ListFavorites returns the user's favorites with their outfits, newest first.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	query := s.rebind(`
		SELECT f.id, f.user_id, f.outfit_id, f.created_at, ` + outfitColumns + `
		FROM favorites f
		JOIN outfits o ON f.outfit_id = o.id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id DESC`)

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListFavorites(): %w", err)
	}

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		o := &f.Outfit
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.OutfitID, &f.CreatedAt,
			&o.ID, &o.Category, &o.ImageURL, &o.Title, &o.Description, &o.Source, &o.CreatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("ListFavorites(): %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("ListFavorites(): %w", err)
	}
	rows.Close()

	outfits := make([]models.Outfit, len(favorites))
	for i := range favorites {
		outfits[i] = favorites[i].Outfit
	}
	if err := s.attachBodyTypes(ctx, outfits); err != nil {
		return nil, err
	}
	for i := range favorites {
		favorites[i].Outfit = outfits[i]
	}
	return favorites, nil
}

// AddFavorite records the favorite. created is false when it already existed,
// in which case id is the existing row's id.
func (s *Store) AddFavorite(ctx context.Context, userID string, outfitID int64) (id int64, created bool, err error) {
	if _, err := s.GetOutfit(ctx, outfitID); err != nil {
		return 0, false, err
	}

	existing := s.rebind(`SELECT id FROM favorites WHERE user_id = ? AND outfit_id = ?`)
	err = s.db.QueryRowContext(ctx, existing, userID, outfitID).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("AddFavorite(): %w", err)
	}

	insert := s.rebind(`INSERT INTO favorites (user_id, outfit_id, created_at) VALUES (?, ?, ?) RETURNING id`)
	err = s.db.QueryRowContext(ctx, insert, userID, outfitID, s.now()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			// lost a race with an identical request
			if err := s.db.QueryRowContext(ctx, existing, userID, outfitID).Scan(&id); err != nil {
				return 0, false, fmt.Errorf("AddFavorite(): %w", err)
			}
			return id, false, nil
		}
		return 0, false, fmt.Errorf("AddFavorite(): %w", err)
	}
	return id, true, nil
}

// RemoveFavorite deletes the favorite if present. Removing a missing favorite is not an error.
func (s *Store) RemoveFavorite(ctx context.Context, userID string, outfitID int64) error {
	query := s.rebind(`DELETE FROM favorites WHERE user_id = ? AND outfit_id = ?`)
	if _, err := s.db.ExecContext(ctx, query, userID, outfitID); err != nil {
		return fmt.Errorf("RemoveFavorite(): %w", err)
	}
	return nil
}
