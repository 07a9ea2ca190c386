package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Store owns the connection pool for every table of the service.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Open connects with the given driver, verifies the connection and creates the
// schema if it is missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("storage.Open(): unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// one writer at a time; also keeps ":memory:" databases on a single connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}

	s := &Store{
		db:     db,
		driver: driver,
		now:    func() time.Time { return time.Now().UTC() },
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping is used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var sqliteSchema = []string{
	`PRAGMA foreign_keys = ON`,
	`CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"name" TEXT,
		"password_hash" TEXT NOT NULL,
		"created_at" DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"user_id" TEXT NOT NULL UNIQUE,
		"body_type" TEXT,
		"shoulder_hip_ratio" TEXT,
		"volume_area" TEXT,
		"preferred_fit" TEXT,
		"height_range" TEXT,
		"created_at" DATETIME NOT NULL,
		"updated_at" DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfits (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"category" TEXT NOT NULL,
		"image_url" TEXT NOT NULL,
		"title" TEXT NOT NULL,
		"description" TEXT NOT NULL DEFAULT '',
		"source" TEXT NOT NULL DEFAULT '',
		"created_at" DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfit_body_types (
		"outfit_id" INTEGER NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
		"body_type" TEXT NOT NULL,
		PRIMARY KEY (outfit_id, body_type)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"user_id" TEXT NOT NULL,
		"outfit_id" INTEGER NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
		"created_at" DATETIME NOT NULL,
		UNIQUE (user_id, outfit_id)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		body_type TEXT,
		shoulder_hip_ratio TEXT,
		volume_area TEXT,
		preferred_fit TEXT,
		height_range TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfits (
		id BIGSERIAL PRIMARY KEY,
		category TEXT NOT NULL,
		image_url TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outfit_body_types (
		outfit_id BIGINT NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
		body_type TEXT NOT NULL,
		PRIMARY KEY (outfit_id, body_type)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		outfit_id BIGINT NOT NULL REFERENCES outfits(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, outfit_id)
	)`,
}

func (s *Store) migrate(ctx context.Context) error {
	schema := sqliteSchema
	if s.driver == DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage.migrate(): %w", err)
		}
	}
	return nil
}

// rebind rewrites "?" placeholders to "$n" for postgres. Queries in this
// package never contain a literal question mark.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// sqlite: SQLITE_CONSTRAINT_UNIQUE (2067), SQLITE_CONSTRAINT_PRIMARYKEY (1555)
// postgres: unique_violation (23505)
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == 2067 || sqliteErr.Code() == 1555
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
