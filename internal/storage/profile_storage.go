package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"stylelove/internal/models"
)

const profileColumns = `id, user_id, body_type, shoulder_hip_ratio, volume_area,
	preferred_fit, height_range, created_at, updated_at`

// GetProfile returns the profile for userID, or nil when the user has none yet.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := s.rebind(`SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = ?`)

	var p models.Profile
	var bodyType, ratio, volume, fit, height sql.NullString
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID,
		&bodyType, &ratio, &volume, &fit, &height,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetProfile(): %w", err)
	}

	p.BodyType = stringPtr(bodyType)
	p.ShoulderHipRatio = stringPtr(ratio)
	p.VolumeArea = stringPtr(volume)
	p.PreferredFit = stringPtr(fit)
	p.HeightRange = stringPtr(height)
	return &p, nil
}

// UpsertProfile creates the profile row on first write and otherwise updates
// only the columns present in u. updated_at is refreshed on every call.
//
// It is a single INSERT ... ON CONFLICT statement, so concurrent first writes
// for one user resolve through the user_id unique constraint instead of racing
// a separate existence check.
func (s *Store) UpsertProfile(ctx context.Context, userID string, u models.ProfileUpdate) (*models.Profile, error) {
	cols := u.Columns()
	now := s.now()

	insertCols := []string{"user_id"}
	args := []any{userID}
	var sets []string
	for _, c := range cols {
		insertCols = append(insertCols, c.Column)
		args = append(args, c.Value)
		sets = append(sets, c.Column+" = excluded."+c.Column)
	}
	insertCols = append(insertCols, "created_at", "updated_at")
	args = append(args, now, now)
	sets = append(sets, "updated_at = excluded.updated_at")

	query := s.rebind(fmt.Sprintf(
		`INSERT INTO user_profiles (%s) VALUES (%s)
		ON CONFLICT (user_id) DO UPDATE SET %s`,
		strings.Join(insertCols, ", "),
		placeholders(len(insertCols)),
		strings.Join(sets, ", "),
	))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("UpsertProfile(): %w", err)
	}

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("UpsertProfile(): profile for %s missing after write", userID)
	}
	return p, nil
}

// BodyTypeFor is a convenience read used to personalise the catalog and the stylist.
// It returns "" when there is no profile or no body type yet.
func (s *Store) BodyTypeFor(ctx context.Context, userID string) (string, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil || p == nil || p.BodyType == nil {
		return "", err
	}
	return *p.BodyType, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
